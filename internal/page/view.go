// Package page assembles the public marketing page from active content.
package page

// Page is everything the home template renders.
type Page struct {
	Hero     HeroSection
	About    AboutSection
	Services ServicesSection
	Projects []Project
	Clients  ClientsSection
	Contact  ContactSection
	Footer   FooterSection
}

type HeroSection struct {
	Title    string
	Subtitle string
	CtaText  string
	CtaLink  string
	Projects []Project
}

type Project struct {
	ID       int64
	Name     string
	Category string
	Location string
	ImageURL string
	VideoURL string
}

type AboutSection struct {
	SectionTitle    string
	Tagline         string
	MainHeading     string
	Description     string
	MainImageURL    string
	AccentImage1URL string
	AccentImage2URL string
	Statistics      []Statistic
}

type Statistic struct {
	ID    int64
	Value string
	Label string
}

type ServicesSection struct {
	SectionTitle string
	Tagline      string
	Services     []Service
}

type Service struct {
	ID          int64
	Title       string
	Slug        string
	Description string
	IconName    string
	ImageURL    string
}

type ClientsSection struct {
	Clients      []Client
	Testimonials []Testimonial
}

type Client struct {
	ID      int64
	Name    string
	LogoURL string
}

type Testimonial struct {
	ID             int64
	Quote          string
	AuthorName     string
	AuthorPosition string
}

type ContactSection struct {
	Title               string
	Subtitle            string
	ContactInfoTitle    string
	ContactInfoSubtitle string
	Details             []ContactDetail
	WorkingHours        []WorkingHour
}

type ContactDetail struct {
	ID    int64
	Type  string
	Label string
	Value string
}

type WorkingHour struct {
	ID       int64
	DayLabel string
	Hours    string
}

type FooterSection struct {
	Services       []Service
	ContactDetails []ContactDetail
	SocialLinks    []SocialLink
	CompanyTagline string
	CopyrightText  string
}

type SocialLink struct {
	ID       int64
	Platform string
	URL      string
	IconName string
}
