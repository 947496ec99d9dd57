package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/bhawani/internal/models"
)

func strPtr(s string) *string { return &s }

func itemsOfType(items []EditableItem, typ ItemType, table string) []EditableItem {
	var out []EditableItem
	for _, item := range items {
		if item.Type == typ && item.Table == table {
			out = append(out, item)
		}
	}
	return out
}

func TestFlattenAlwaysStartsWithHeroInfo(t *testing.T) {
	items := Flatten(Snapshot{})
	require.Len(t, items, 1)
	assert.Equal(t, TypeInfo, items[0].Type)
	assert.Equal(t, SectionHero, items[0].Section)
	assert.Equal(t, RefSynthetic, items[0].Ref.Kind)
	assert.Empty(t, items[0].Endpoint)
}

func TestFlattenAboutSkipsNullImages(t *testing.T) {
	about := &models.AboutUsContent{
		HeroImageURL:    strPtr("https://res.cloudinary.com/demo/image/upload/hero.jpg"),
		AccentImage2URL: strPtr("https://res.cloudinary.com/demo/image/upload/accent2.jpg"),
	}
	about.ID = 3

	items := itemsOfType(Flatten(Snapshot{About: about}), TypeImage, "about_us_content")
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)
	assert.Equal(t, "hero_image_url", items[0].Field)
	assert.Equal(t, "accent_image_2_url", items[1].Field)
	assert.Equal(t, RefField, items[0].Ref.Kind)
	assert.Equal(t, int64(3), items[0].Ref.RowID)
	assert.Equal(t, "/api/admin/about", items[0].Endpoint)
}

func TestFlattenProjectYieldsImageAndVideo(t *testing.T) {
	projects := make([]models.FeaturedProject, 6)
	for i := range projects {
		projects[i].ID = int64(i + 1)
		projects[i].Name = "Bridge"
		projects[i].ImageURL = strPtr("https://res.cloudinary.com/demo/image/upload/p.jpg")
	}
	projects[0].VideoURL = strPtr("https://res.cloudinary.com/demo/video/upload/p.mp4")

	items := Flatten(Snapshot{Projects: projects})
	images := itemsOfType(items, TypeImage, "featured_projects")
	videos := itemsOfType(items, TypeVideo, "featured_projects")
	require.Len(t, images, 6)
	require.Len(t, videos, 1)

	assert.NotEqual(t, images[0].ID, videos[0].ID)
	assert.Equal(t, images[0].Ref.RowID, videos[0].Ref.RowID)
	assert.Equal(t, "/api/admin/projects/1", videos[0].Endpoint)
	assert.Equal(t, "Bridge - Video (Used in Hero)", videos[0].Label)
	assert.Equal(t, "Bridge - Image (Used in Hero)", images[4].Label)
	assert.Equal(t, "Bridge - Image", images[5].Label)
}

func TestFlattenTextAndLinksAlwaysEmitted(t *testing.T) {
	footer := &models.FooterContent{CompanyTagline: strPtr("Excellence in construction")}
	footer.ID = 1
	links := []models.SocialLink{{Platform: "Facebook"}}
	links[0].ID = 1

	items := Flatten(Snapshot{Footer: footer, SocialLinks: links})
	texts := itemsOfType(items, TypeText, "footer_content")
	require.Len(t, texts, 2)
	require.NotNil(t, texts[1].CurrentURL)
	assert.Equal(t, "", *texts[1].CurrentURL)

	socials := itemsOfType(items, TypeLink, "social_links")
	require.Len(t, socials, 1)
	assert.Equal(t, "/api/admin/social-links/1", socials[0].Endpoint)
}

func TestFlattenIDsUniqueAcrossTables(t *testing.T) {
	img := strPtr("https://res.cloudinary.com/demo/image/upload/x.jpg")
	svc := models.Service{Title: "Roads", ImageURL: img}
	svc.ID = 1
	client := models.Client{Name: "Acme", LogoURL: img}
	client.ID = 1
	project := models.FeaturedProject{Name: "Tower", ImageURL: img, VideoURL: img}
	project.ID = 1

	items := Flatten(Snapshot{
		Services: []models.Service{svc},
		Clients:  []models.Client{client},
		Projects: []models.FeaturedProject{project},
	})

	seen := map[string]bool{}
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
	assert.Len(t, items, 5)
}

func TestFlattenSkipsEmptyMedia(t *testing.T) {
	svc := models.Service{Title: "Roads", ImageURL: strPtr("")}
	svc.ID = 9
	items := Flatten(Snapshot{Services: []models.Service{svc}})
	assert.Len(t, items, 1)
}
