package models

// ServicesContent holds the heading copy of the services section.
type ServicesContent struct {
	BaseModel
	SectionTitle string `json:"section_title"`
	Tagline      string `json:"tagline"`
	Active       bool   `gorm:"not null;default:true;index" json:"active"`
}

func (ServicesContent) TableName() string { return "services_content" }

type Service struct {
	BaseModel
	Ordered
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	IconName    string  `json:"icon_name"`
	ImageURL    *string `json:"image_url"`
}

func (Service) TableName() string { return "services" }
