package models

// HeroContent is the singleton row behind the landing hero.
type HeroContent struct {
	BaseModel
	Title        string  `json:"title"`
	Subtitle     string  `json:"subtitle"`
	CtaText      string  `json:"cta_text"`
	CtaLink      string  `json:"cta_link"`
	HeroImageURL *string `json:"hero_image_url"`
	HeroVideoURL *string `json:"hero_video_url"`
	Active       bool    `gorm:"not null;default:true;index" json:"active"`
}

func (HeroContent) TableName() string { return "hero_content" }
