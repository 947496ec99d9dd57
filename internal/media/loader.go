// Package media rewrites CDN asset URLs into width/quality-optimized delivery URLs.
package media

import (
	"strconv"
	"strings"
)

const (
	// DefaultHost is the media CDN whose URLs can be transformed.
	DefaultHost = "res.cloudinary.com"
	// DefaultQuality is used when no positive quality is requested.
	DefaultQuality = 75

	uploadMarker = "/upload/"
)

// Rewriter injects delivery transformations into URLs served by Host.
type Rewriter struct {
	Host string
}

// NewRewriter returns a Rewriter for host, or for DefaultHost when host is empty.
func NewRewriter(host string) Rewriter {
	if strings.TrimSpace(host) == "" {
		host = DefaultHost
	}
	return Rewriter{Host: host}
}

// Rewrite returns src with an auto-format, quality, width and no-upscale
// transformation segment. URLs outside the media host, or without exactly one
// upload marker, are returned unchanged.
func (r Rewriter) Rewrite(src string, width, quality int) string {
	host := r.Host
	if host == "" {
		host = DefaultHost
	}
	if !strings.Contains(src, host) {
		return src
	}
	if strings.Count(src, uploadMarker) != 1 {
		return src
	}

	prefix, asset, _ := strings.Cut(src, uploadMarker)
	return prefix + uploadMarker + Transformation(width, quality) + "/" + asset
}

// Owns reports whether src is served by the rewriter's media host.
func (r Rewriter) Owns(src string) bool {
	host := r.Host
	if host == "" {
		host = DefaultHost
	}
	return strings.HasPrefix(src, "https://"+host+"/") && len(src) > len("https://"+host+"/")
}

// Transformation renders the comma-joined transformation segment.
func Transformation(width, quality int) string {
	if quality <= 0 {
		quality = DefaultQuality
	}
	return strings.Join([]string{
		"f_auto",
		"q_" + strconv.Itoa(quality),
		"w_" + strconv.Itoa(width),
		"c_limit",
	}, ",")
}
