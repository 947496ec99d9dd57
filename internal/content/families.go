// Package content describes the editable content families and flattens them
// into the admin editing list.
package content

import (
	"sort"
	"strconv"
)

// ItemType decides how an editable value is validated and which editor the
// admin panel shows for it.
type ItemType string

const (
	TypeImage ItemType = "image"
	TypeVideo ItemType = "video"
	TypeText  ItemType = "text"
	TypeLink  ItemType = "link"
	TypeInfo  ItemType = "info"
)

// Scope tells how a mutation selects its target row.
type Scope int

const (
	// ScopeSingleton updates the active row of the family.
	ScopeSingleton Scope = iota
	// ScopeByID updates the row whose id is in the request path.
	ScopeByID
)

// Family is one editable content family and the rules its mutation endpoint enforces.
type Family struct {
	Key            string
	Table          string
	Scope          Scope
	Fields         map[string]ItemType
	ValueKey       string
	TouchUpdatedAt bool
	NotFound       string
}

const adminAPIPrefix = "/api/admin/"

var families = []Family{
	{
		Key:   "about",
		Table: "about_us_content",
		Scope: ScopeSingleton,
		Fields: map[string]ItemType{
			"hero_image_url":      TypeImage,
			"secondary_image_url": TypeImage,
			"accent_image_1_url":  TypeImage,
			"accent_image_2_url":  TypeImage,
		},
		ValueKey:       "url",
		TouchUpdatedAt: true,
		NotFound:       "No active about content found",
	},
	{
		Key:   "hero",
		Table: "hero_content",
		Scope: ScopeSingleton,
		Fields: map[string]ItemType{
			"hero_image_url": TypeImage,
			"hero_video_url": TypeVideo,
		},
		ValueKey:       "url",
		TouchUpdatedAt: true,
		NotFound:       "No active hero content found",
	},
	{
		Key:   "footer",
		Table: "footer_content",
		Scope: ScopeSingleton,
		Fields: map[string]ItemType{
			"company_tagline": TypeText,
			"copyright_text":  TypeText,
		},
		ValueKey:       "value",
		TouchUpdatedAt: true,
		NotFound:       "No active footer content found",
	},
	{
		Key:      "services",
		Table:    "services",
		Scope:    ScopeByID,
		Fields:   map[string]ItemType{"image_url": TypeImage},
		ValueKey: "url",
		NotFound: "Service not found",
	},
	{
		Key:      "clients",
		Table:    "clients",
		Scope:    ScopeByID,
		Fields:   map[string]ItemType{"logo_url": TypeImage},
		ValueKey: "url",
		NotFound: "Client not found",
	},
	{
		Key:   "projects",
		Table: "featured_projects",
		Scope: ScopeByID,
		Fields: map[string]ItemType{
			"image_url": TypeImage,
			"video_url": TypeVideo,
		},
		ValueKey: "url",
		NotFound: "Project not found",
	},
	{
		Key:      "social-links",
		Table:    "social_links",
		Scope:    ScopeByID,
		Fields:   map[string]ItemType{"url": TypeLink},
		ValueKey: "value",
		NotFound: "Social link not found",
	},
}

// Families returns every mutable family in registration order.
func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families)
	return out
}

// Lookup finds a family by its route key.
func Lookup(key string) (Family, bool) {
	for _, f := range families {
		if f.Key == key {
			return f, true
		}
	}
	return Family{}, false
}

// ByTable finds a family by its table name.
func ByTable(table string) (Family, bool) {
	for _, f := range families {
		if f.Table == table {
			return f, true
		}
	}
	return Family{}, false
}

// FieldType reports the type of field and whether the family allows editing it.
func (f Family) FieldType(field string) (ItemType, bool) {
	t, ok := f.Fields[field]
	return t, ok
}

// FieldNames lists the allowed fields in a stable order.
func (f Family) FieldNames() []string {
	names := make([]string, 0, len(f.Fields))
	for name := range f.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Endpoint is the PATCH path that edits rowID in this family.
func (f Family) Endpoint(rowID int64) string {
	if f.Scope == ScopeSingleton {
		return adminAPIPrefix + f.Key
	}
	return adminAPIPrefix + f.Key + "/" + strconv.FormatInt(rowID, 10)
}

// Route is the fiber path of this family relative to the admin API group.
func (f Family) Route() string {
	if f.Scope == ScopeSingleton {
		return "/" + f.Key
	}
	return "/" + f.Key + "/:id"
}
