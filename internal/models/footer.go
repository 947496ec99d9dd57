package models

// FooterContent stores footer copy managed via the admin panel.
// There should be only one active row (singleton pattern).
type FooterContent struct {
	BaseModel
	CompanyTagline *string `json:"company_tagline"`
	CopyrightText  *string `json:"copyright_text"`
	Active         bool    `gorm:"not null;default:true;index" json:"active"`
}

func (FooterContent) TableName() string { return "footer_content" }

type SocialLink struct {
	BaseModel
	Ordered
	Platform string `json:"platform"`
	URL      string `json:"url"`
	IconName string `json:"icon_name"`
}

func (SocialLink) TableName() string { return "social_links" }
