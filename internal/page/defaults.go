package page

const (
	defaultHeroTitle    = "BHAWANI CONSTRUCTION"
	defaultHeroSubtitle = "Building Tomorrow's Infrastructure Today"
	defaultHeroCtaText  = "Explore Our Projects"
	defaultHeroCtaLink  = "#projects"

	defaultServicesTitle   = "Our Services"
	defaultServicesTagline = "We offer a wide range of construction solutions"

	defaultAboutTitle       = "About Us"
	defaultAboutTagline     = "Building excellence since 2014"
	defaultAboutHeading     = "Your Trusted Partner in Construction Excellence"
	defaultAboutDescription = "BHAWANI CONSTRUCTION has been at the forefront of the construction industry for over a decade."

	defaultContactTitle        = "Get in Touch"
	defaultContactSubtitle     = "Contact us for a free consultation"
	defaultContactInfoTitle    = "Contact Information"
	defaultContactInfoSubtitle = "Feel free to reach out to us"

	defaultFooterTagline   = "Excellence in construction"
	defaultFooterCopyright = "© Bhawani Construction. All rights reserved."
)

func defaultHero() HeroSection {
	return HeroSection{
		Title:    defaultHeroTitle,
		Subtitle: defaultHeroSubtitle,
		CtaText:  defaultHeroCtaText,
		CtaLink:  defaultHeroCtaLink,
	}
}

func defaultAbout() AboutSection {
	return AboutSection{
		SectionTitle: defaultAboutTitle,
		Tagline:      defaultAboutTagline,
		MainHeading:  defaultAboutHeading,
		Description:  defaultAboutDescription,
	}
}

func defaultServices() ServicesSection {
	return ServicesSection{
		SectionTitle: defaultServicesTitle,
		Tagline:      defaultServicesTagline,
	}
}

func defaultContact() ContactSection {
	return ContactSection{
		Title:               defaultContactTitle,
		Subtitle:            defaultContactSubtitle,
		ContactInfoTitle:    defaultContactInfoTitle,
		ContactInfoSubtitle: defaultContactInfoSubtitle,
	}
}

func defaultFooter() FooterSection {
	return FooterSection{
		CompanyTagline: defaultFooterTagline,
		CopyrightText:  defaultFooterCopyright,
	}
}

// Fallback is the page rendered when no content could be read at all.
func Fallback() Page {
	return Page{
		Hero:     defaultHero(),
		About:    defaultAbout(),
		Services: defaultServices(),
		Contact:  defaultContact(),
		Footer:   defaultFooter(),
	}
}
