package models

type FeaturedProject struct {
	BaseModel
	Ordered
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Location string  `json:"location"`
	ImageURL *string `json:"image_url"`
	VideoURL *string `json:"video_url"`
}

func (FeaturedProject) TableName() string { return "featured_projects" }
