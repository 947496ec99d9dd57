package content

import (
	"errors"
	"regexp"
	"strings"

	"github.com/example/bhawani/internal/media"
)

var (
	ErrInvalidMediaURL = errors.New("invalid media URL")
	ErrInvalidLink     = errors.New("invalid URL")
	ErrEmptyText       = errors.New("text cannot be empty")
)

var linkPattern = regexp.MustCompile(`^https?://.+`)

// ValidateValue checks value against the shape rule of typ. Image and video
// values must be served by the media host of rw.
func ValidateValue(typ ItemType, value string, rw media.Rewriter) error {
	switch typ {
	case TypeImage, TypeVideo:
		if !rw.Owns(value) {
			return ErrInvalidMediaURL
		}
	case TypeLink:
		if !linkPattern.MatchString(value) {
			return ErrInvalidLink
		}
	case TypeText:
		if strings.TrimSpace(value) == "" {
			return ErrEmptyText
		}
	}
	return nil
}
