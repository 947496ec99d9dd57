package page

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/example/bhawani/internal/content"
	"github.com/example/bhawani/internal/metrics"
	"github.com/example/bhawani/internal/models"
)

// Reader is the read side of the content store used by the public page.
type Reader interface {
	ActiveHero(ctx context.Context) (*models.HeroContent, error)
	ActiveAbout(ctx context.Context) (*models.AboutUsContent, error)
	AboutStatistics(ctx context.Context) ([]models.AboutStatistic, error)
	ActiveServicesContent(ctx context.Context) (*models.ServicesContent, error)
	Services(ctx context.Context) ([]models.Service, error)
	FeaturedProjects(ctx context.Context) ([]models.FeaturedProject, error)
	Clients(ctx context.Context) ([]models.Client, error)
	Testimonials(ctx context.Context) ([]models.Testimonial, error)
	ActiveContactContent(ctx context.Context) (*models.ContactContent, error)
	ContactDetails(ctx context.Context) ([]models.ContactDetail, error)
	WorkingHours(ctx context.Context) ([]models.WorkingHours, error)
	ActiveFooter(ctx context.Context) (*models.FooterContent, error)
	SocialLinks(ctx context.Context) ([]models.SocialLink, error)
}

// Assembler builds the public page. Every section is fetched concurrently and
// falls back to its hardcoded defaults on failure without affecting the others.
type Assembler struct {
	src Reader
	log *zap.Logger
}

// NewAssembler constructs an Assembler.
func NewAssembler(src Reader, log *zap.Logger) *Assembler {
	return &Assembler{src: src, log: log}
}

// Build reads all sections and returns the page. It never fails.
func (a *Assembler) Build(ctx context.Context) Page {
	var (
		p  Page
		wg sync.WaitGroup
	)

	section := func(name string, fetch func() error, fallback func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				a.log.Error("page section fallback", zap.String("section", name), zap.Error(err))
				metrics.SectionFallbacks.WithLabelValues(name).Inc()
				fallback()
			}
		}()
	}

	section("hero",
		func() (err error) { p.Hero, err = a.hero(ctx); return err },
		func() { p.Hero = defaultHero() })
	section("projects",
		func() (err error) { p.Projects, err = a.projects(ctx); return err },
		func() { p.Projects = nil })
	section("about",
		func() (err error) { p.About, err = a.about(ctx); return err },
		func() { p.About = defaultAbout() })
	section("services",
		func() (err error) { p.Services, err = a.services(ctx); return err },
		func() { p.Services = defaultServices() })
	section("clients",
		func() (err error) { p.Clients, err = a.clients(ctx); return err },
		func() { p.Clients = ClientsSection{} })
	section("contact",
		func() (err error) { p.Contact, err = a.contact(ctx); return err },
		func() { p.Contact = defaultContact() })
	section("footer",
		func() (err error) { p.Footer, err = a.footer(ctx); return err },
		func() { p.Footer = FooterSection{} })

	wg.Wait()

	n := len(p.Projects)
	if n > content.HeroProjectSlots {
		n = content.HeroProjectSlots
	}
	p.Hero.Projects = p.Projects[:n]
	return p
}

func (a *Assembler) hero(ctx context.Context) (HeroSection, error) {
	row, err := a.src.ActiveHero(ctx)
	if err != nil {
		return HeroSection{}, err
	}
	if row == nil {
		return defaultHero(), nil
	}
	return HeroSection{
		Title:    row.Title,
		Subtitle: row.Subtitle,
		CtaText:  row.CtaText,
		CtaLink:  row.CtaLink,
	}, nil
}

func (a *Assembler) projects(ctx context.Context) ([]Project, error) {
	rows, err := a.src.FeaturedProjects(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Project, 0, len(rows))
	for _, row := range rows {
		image := deref(row.ImageURL)
		video := deref(row.VideoURL)
		if video == "" {
			video = image
		}
		out = append(out, Project{
			ID:       row.ID,
			Name:     row.Name,
			Category: row.Category,
			Location: row.Location,
			ImageURL: image,
			VideoURL: video,
		})
	}
	return out, nil
}

func (a *Assembler) about(ctx context.Context) (AboutSection, error) {
	var (
		row   *models.AboutUsContent
		stats []models.AboutStatistic
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { row, err = a.src.ActiveAbout(gctx); return err })
	g.Go(func() (err error) { stats, err = a.src.AboutStatistics(gctx); return err })
	if err := g.Wait(); err != nil {
		return AboutSection{}, err
	}

	if row == nil {
		return defaultAbout(), nil
	}

	section := AboutSection{
		SectionTitle:    row.SectionTitle,
		Tagline:         row.Tagline,
		MainHeading:     row.MainHeading,
		Description:     row.Description,
		MainImageURL:    deref(row.HeroImageURL),
		AccentImage1URL: deref(row.AccentImage1URL),
		AccentImage2URL: deref(row.AccentImage2URL),
	}
	for _, stat := range stats {
		section.Statistics = append(section.Statistics, Statistic{ID: stat.ID, Value: stat.StatValue, Label: stat.StatLabel})
	}
	return section, nil
}

func (a *Assembler) services(ctx context.Context) (ServicesSection, error) {
	var (
		head *models.ServicesContent
		rows []models.Service
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { head, err = a.src.ActiveServicesContent(gctx); return err })
	g.Go(func() (err error) { rows, err = a.src.Services(gctx); return err })
	if err := g.Wait(); err != nil {
		return ServicesSection{}, err
	}

	section := defaultServices()
	if head != nil {
		section.SectionTitle = head.SectionTitle
		section.Tagline = head.Tagline
	}
	section.Services = toServices(rows)
	return section, nil
}

func (a *Assembler) clients(ctx context.Context) (ClientsSection, error) {
	var (
		clients      []models.Client
		testimonials []models.Testimonial
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { clients, err = a.src.Clients(gctx); return err })
	g.Go(func() (err error) { testimonials, err = a.src.Testimonials(gctx); return err })
	if err := g.Wait(); err != nil {
		return ClientsSection{}, err
	}

	var section ClientsSection
	for _, c := range clients {
		section.Clients = append(section.Clients, Client{ID: c.ID, Name: c.Name, LogoURL: deref(c.LogoURL)})
	}
	for _, t := range testimonials {
		section.Testimonials = append(section.Testimonials, Testimonial{
			ID:             t.ID,
			Quote:          t.Quote,
			AuthorName:     t.AuthorName,
			AuthorPosition: t.AuthorPosition,
		})
	}
	return section, nil
}

func (a *Assembler) contact(ctx context.Context) (ContactSection, error) {
	var (
		head    *models.ContactContent
		details []models.ContactDetail
		hours   []models.WorkingHours
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { head, err = a.src.ActiveContactContent(gctx); return err })
	g.Go(func() (err error) { details, err = a.src.ContactDetails(gctx); return err })
	g.Go(func() (err error) { hours, err = a.src.WorkingHours(gctx); return err })
	if err := g.Wait(); err != nil {
		return ContactSection{}, err
	}

	section := defaultContact()
	if head != nil {
		section.Title = head.Title
		section.Subtitle = head.Subtitle
		section.ContactInfoTitle = head.ContactInfoTitle
		section.ContactInfoSubtitle = head.ContactInfoSubtitle
	}
	section.Details = toContactDetails(details)
	for _, h := range hours {
		section.WorkingHours = append(section.WorkingHours, WorkingHour{ID: h.ID, DayLabel: h.DayLabel, Hours: h.Hours})
	}
	return section, nil
}

func (a *Assembler) footer(ctx context.Context) (FooterSection, error) {
	var (
		services []models.Service
		details  []models.ContactDetail
		socials  []models.SocialLink
		row      *models.FooterContent
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { services, err = a.src.Services(gctx); return err })
	g.Go(func() (err error) { details, err = a.src.ContactDetails(gctx); return err })
	g.Go(func() (err error) { socials, err = a.src.SocialLinks(gctx); return err })
	g.Go(func() (err error) { row, err = a.src.ActiveFooter(gctx); return err })
	if err := g.Wait(); err != nil {
		return FooterSection{}, err
	}

	section := defaultFooter()
	if row != nil {
		section.CompanyTagline = deref(row.CompanyTagline)
		section.CopyrightText = deref(row.CopyrightText)
	}
	section.Services = toServices(services)
	section.ContactDetails = toContactDetails(details)
	for _, s := range socials {
		section.SocialLinks = append(section.SocialLinks, SocialLink{ID: s.ID, Platform: s.Platform, URL: s.URL, IconName: s.IconName})
	}
	return section, nil
}

func toServices(rows []models.Service) []Service {
	out := make([]Service, 0, len(rows))
	for _, row := range rows {
		out = append(out, Service{
			ID:          row.ID,
			Title:       row.Title,
			Slug:        row.Slug,
			Description: row.Description,
			IconName:    row.IconName,
			ImageURL:    deref(row.ImageURL),
		})
	}
	return out
}

func toContactDetails(rows []models.ContactDetail) []ContactDetail {
	out := make([]ContactDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, ContactDetail{ID: row.ID, Type: row.Type, Label: row.Label, Value: row.Value})
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
