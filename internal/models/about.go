package models

// AboutUsContent is the singleton row behind the about section.
type AboutUsContent struct {
	BaseModel
	SectionTitle      string  `json:"section_title"`
	Tagline           string  `json:"tagline"`
	MainHeading       string  `json:"main_heading"`
	Description       string  `json:"description"`
	HeroImageURL      *string `json:"hero_image_url"`
	SecondaryImageURL *string `json:"secondary_image_url"`
	AccentImage1URL   *string `gorm:"column:accent_image_1_url" json:"accent_image_1_url"`
	AccentImage2URL   *string `gorm:"column:accent_image_2_url" json:"accent_image_2_url"`
	Active            bool    `gorm:"not null;default:true;index" json:"active"`
}

func (AboutUsContent) TableName() string { return "about_us_content" }

type AboutStatistic struct {
	BaseModel
	Ordered
	StatValue string `json:"stat_value"`
	StatLabel string `json:"stat_label"`
}

func (AboutStatistic) TableName() string { return "about_statistics" }
