package models

type Client struct {
	BaseModel
	Ordered
	Name    string  `json:"name"`
	LogoURL *string `json:"logo_url"`
}

func (Client) TableName() string { return "clients" }

type Testimonial struct {
	BaseModel
	Ordered
	Quote          string `json:"quote"`
	AuthorName     string `json:"author_name"`
	AuthorPosition string `json:"author_position"`
}

func (Testimonial) TableName() string { return "testimonials" }
