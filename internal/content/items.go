package content

import (
	"github.com/example/bhawani/internal/models"
)

// HeroProjectSlots is how many leading featured projects rotate in the hero.
const HeroProjectSlots = 5

const (
	SectionHero     = "Hero Section"
	SectionAbout    = "About Us Section"
	SectionServices = "Services Section"
	SectionProjects = "Featured Projects Section"
	SectionClients  = "Clients Section"
	SectionFooter   = "Footer Section"
	SectionSocial   = "Social Links Section"

	heroInfoText = `Hero section displays the first 5 featured projects with rotating videos/images. Edit projects in "Featured Projects Section" below.`
)

// EditableItem is one value the admin panel can show or edit.
type EditableItem struct {
	ID         string   `json:"id"`
	Ref        Ref      `json:"ref"`
	Section    string   `json:"section"`
	Label      string   `json:"label"`
	CurrentURL *string  `json:"currentUrl"`
	Type       ItemType `json:"type"`
	Field      string   `json:"field"`
	Table      string   `json:"table"`
	Endpoint   string   `json:"endpoint,omitempty"`
}

// Snapshot is one read of every aggregated family.
type Snapshot struct {
	About       *models.AboutUsContent
	Services    []models.Service
	Projects    []models.FeaturedProject
	Clients     []models.Client
	Footer      *models.FooterContent
	SocialLinks []models.SocialLink
}

type itemList struct {
	items []EditableItem
}

// add appends an item unless a media value is empty. Text and link values are
// always editable, so they are emitted with an empty string instead.
func (l *itemList) add(ref Ref, section, label string, typ ItemType, field, table string, value *string) {
	switch typ {
	case TypeText, TypeLink:
		if value == nil {
			empty := ""
			value = &empty
		}
	case TypeImage, TypeVideo:
		if value == nil || *value == "" {
			return
		}
	}

	item := EditableItem{
		ID:         ref.String(),
		Ref:        ref,
		Section:    section,
		Label:      label,
		CurrentURL: value,
		Type:       typ,
		Field:      field,
		Table:      table,
	}
	if fam, ok := ByTable(table); ok {
		item.Endpoint = fam.Endpoint(ref.RowID)
	}
	l.items = append(l.items, item)
}

// Flatten turns a snapshot into the ordered editing list.
func Flatten(s Snapshot) []EditableItem {
	list := &itemList{}

	info := heroInfoText
	list.items = append(list.items, EditableItem{
		ID:         "hero-info",
		Ref:        SyntheticRef("hero-info"),
		Section:    SectionHero,
		Label:      "Hero Background Content",
		CurrentURL: &info,
		Type:       TypeInfo,
		Field:      "info",
		Table:      "none",
	})

	if about := s.About; about != nil {
		const table = "about_us_content"
		for _, f := range []struct {
			field string
			label string
			value *string
		}{
			{"hero_image_url", "Hero Image", about.HeroImageURL},
			{"secondary_image_url", "Secondary Image", about.SecondaryImageURL},
			{"accent_image_1_url", "Accent Image 1", about.AccentImage1URL},
			{"accent_image_2_url", "Accent Image 2", about.AccentImage2URL},
		} {
			list.add(FieldRef(table, about.ID, f.field), SectionAbout, f.label, TypeImage, f.field, table, f.value)
		}
	}

	for _, svc := range s.Services {
		list.add(RowRef("services", svc.ID), SectionServices, svc.Title+" - Image", TypeImage, "image_url", "services", svc.ImageURL)
	}

	for i, project := range s.Projects {
		suffix := ""
		if i < HeroProjectSlots {
			suffix = " (Used in Hero)"
		}
		list.add(RowRef("featured_projects", project.ID), SectionProjects,
			project.Name+" - Image"+suffix, TypeImage, "image_url", "featured_projects", project.ImageURL)
		list.add(FieldRef("featured_projects", project.ID, "video_url"), SectionProjects,
			project.Name+" - Video"+suffix, TypeVideo, "video_url", "featured_projects", project.VideoURL)
	}

	for _, client := range s.Clients {
		list.add(RowRef("clients", client.ID), SectionClients, client.Name+" - Logo", TypeImage, "logo_url", "clients", client.LogoURL)
	}

	if footer := s.Footer; footer != nil {
		const table = "footer_content"
		list.add(FieldRef(table, footer.ID, "company_tagline"), SectionFooter, "Company Tagline", TypeText, "company_tagline", table, footer.CompanyTagline)
		list.add(FieldRef(table, footer.ID, "copyright_text"), SectionFooter, "Copyright Text", TypeText, "copyright_text", table, footer.CopyrightText)
	}

	for _, social := range s.SocialLinks {
		url := social.URL
		list.add(RowRef("social_links", social.ID), SectionSocial, social.Platform+" - URL", TypeLink, "url", "social_links", &url)
	}

	return list.items
}
