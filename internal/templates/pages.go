package templates

import (
	"sitegen-workers/internal/models"
	"sitegen-workers/internal/sections"
)

// pageSpec describes a page built from the shared page shapes below.
type pageSpec struct {
	id       string
	display  string
	pageType models.PageType
	path     string
	// title of the main content section.
	heading string
	// items used when the fixture page has none.
	defaults []models.ContentItem
	build    func(spec pageSpec, c models.PageContent, f *models.BusinessFixture, o PageOptions) []models.Section
}

func newPage(spec pageSpec) PageTemplate {
	return PageTemplate{
		ID:          spec.id,
		DisplayName: spec.display,
		PageType:    spec.pageType,
		Path:        spec.path,
		Generate: func(f *models.BusinessFixture, o PageOptions) models.Page {
			c := f.Page(spec.id)
			return models.Page{
				Title:    spec.display + " | " + f.Business.Name,
				Sections: spec.build(spec, c, f, o),
			}
		},
	}
}

func (s pageSpec) items(c models.PageContent) []models.ContentItem {
	if len(c.Items) > 0 {
		return c.Items
	}
	return s.defaults
}

func heroFor(c models.PageContent, o PageOptions) models.Section {
	return sections.GetHeroVariant(o.HeroStyle)(sections.HeroFromContent(c, o.Business), o.Colors, o.Business)
}

// subHero gives inner pages a headline of their own when the fixture has none.
func subHero(spec pageSpec, c models.PageContent, o PageOptions) models.Section {
	if c.Headline == "" {
		c.Headline = spec.display
	}
	return heroFor(c, o)
}

func ctaFor(c models.PageContent, o PageOptions) models.Section {
	cta := models.CTA{Label: "Contact Us", Href: "/contact"}
	if c.PrimaryCTA != nil {
		cta = *c.PrimaryCTA
	}
	return sections.CallToAction("Ready to get started?", cta, o.Colors)
}

func buildHome(spec pageSpec, c models.PageContent, f *models.BusinessFixture, o PageOptions) []models.Section {
	out := []models.Section{
		heroFor(c, o),
		sections.Features(spec.heading, spec.items(c), o.Colors),
	}
	if c.Body != "" {
		out = append(out, sections.Text("", c.Body))
	}
	if t := f.Page("testimonials"); len(t.Items) > 0 {
		out = append(out, sections.Testimonials(t.Items, o.Colors))
	}
	if len(f.Business.Hours) > 0 {
		out = append(out, sections.Hours(f.Business.Hours))
	}
	return append(out, ctaFor(c, o))
}

func buildAbout(spec pageSpec, c models.PageContent, f *models.BusinessFixture, o PageOptions) []models.Section {
	body := c.Body
	if body == "" {
		body = f.Business.Name + " proudly serves " + locationOr(f.Business, "our community") + "."
	}
	out := []models.Section{subHero(spec, c, o), sections.Text(spec.heading, body)}
	if len(c.Items) > 0 {
		out = append(out, sections.Team("Meet the Team", c.Items))
	}
	return out
}

func buildServices(spec pageSpec, c models.PageContent, _ *models.BusinessFixture, o PageOptions) []models.Section {
	return []models.Section{
		subHero(spec, c, o),
		sections.Features(spec.heading, spec.items(c), o.Colors),
		ctaFor(c, o),
	}
}

func buildMenu(spec pageSpec, c models.PageContent, _ *models.BusinessFixture, o PageOptions) []models.Section {
	return []models.Section{
		subHero(spec, c, o),
		sections.Menu(spec.heading, spec.items(c), o.Colors),
		ctaFor(c, o),
	}
}

func buildGallery(spec pageSpec, c models.PageContent, _ *models.BusinessFixture, o PageOptions) []models.Section {
	return []models.Section{subHero(spec, c, o), sections.Gallery(spec.heading, spec.items(c))}
}

func buildPricing(spec pageSpec, c models.PageContent, _ *models.BusinessFixture, o PageOptions) []models.Section {
	return []models.Section{
		subHero(spec, c, o),
		sections.Pricing(spec.heading, spec.items(c), o.Colors),
		ctaFor(c, o),
	}
}

func buildTeam(spec pageSpec, c models.PageContent, _ *models.BusinessFixture, o PageOptions) []models.Section {
	return []models.Section{subHero(spec, c, o), sections.Team(spec.heading, spec.items(c))}
}

func buildContact(spec pageSpec, c models.PageContent, f *models.BusinessFixture, o PageOptions) []models.Section {
	out := []models.Section{subHero(spec, c, o), sections.Contact(o.Business, o.Colors)}
	if len(f.Business.Hours) > 0 {
		out = append(out, sections.Hours(f.Business.Hours))
	}
	return out
}

func buildBooking(spec pageSpec, c models.PageContent, f *models.BusinessFixture, o PageOptions) []models.Section {
	body := c.Body
	if body == "" {
		body = "Call us or send a message to book your visit."
	}
	out := []models.Section{
		subHero(spec, c, o),
		sections.Text(spec.heading, body),
		sections.Contact(o.Business, o.Colors),
	}
	if len(f.Business.Hours) > 0 {
		out = append(out, sections.Hours(f.Business.Hours))
	}
	return out
}

func locationOr(b models.Business, fallback string) string {
	if b.Location != "" {
		return b.Location
	}
	return fallback
}

func homePage(heading string, highlights ...models.ContentItem) PageTemplate {
	return newPage(pageSpec{id: "home", display: "Home", pageType: models.PageHome, path: "/",
		heading: heading, defaults: highlights, build: buildHome})
}

func aboutPage(heading string) PageTemplate {
	return newPage(pageSpec{id: "about", display: "About", pageType: models.PageAbout, path: "/about",
		heading: heading, build: buildAbout})
}

func servicesPage(display, heading string, items ...models.ContentItem) PageTemplate {
	return newPage(pageSpec{id: "services", display: display, pageType: models.PageServices, path: "/services",
		heading: heading, defaults: items, build: buildServices})
}

func menuPage(items ...models.ContentItem) PageTemplate {
	return newPage(pageSpec{id: "menu", display: "Menu", pageType: models.PageMenu, path: "/menu",
		heading: "Our Menu", defaults: items, build: buildMenu})
}

func galleryPage(items ...models.ContentItem) PageTemplate {
	return newPage(pageSpec{id: "gallery", display: "Gallery", pageType: models.PageGallery, path: "/gallery",
		heading: "Gallery", defaults: items, build: buildGallery})
}

func pricingPage(display string, items ...models.ContentItem) PageTemplate {
	return newPage(pageSpec{id: "pricing", display: display, pageType: models.PagePricing, path: "/pricing",
		heading: display, defaults: items, build: buildPricing})
}

func teamPage(display string, items ...models.ContentItem) PageTemplate {
	return newPage(pageSpec{id: "team", display: display, pageType: models.PageTeam, path: "/team",
		heading: display, defaults: items, build: buildTeam})
}

func contactPage() PageTemplate {
	return newPage(pageSpec{id: "contact", display: "Contact", pageType: models.PageContact, path: "/contact",
		heading: "Contact", build: buildContact})
}

func bookingPage() PageTemplate {
	return newPage(pageSpec{id: "booking", display: "Book Now", pageType: models.PageBooking, path: "/booking",
		heading: "Book an Appointment", build: buildBooking})
}

func item(title, description string) models.ContentItem {
	return models.ContentItem{Title: title, Description: description}
}

func priced(title, description, price string) models.ContentItem {
	return models.ContentItem{Title: title, Description: description, Price: price}
}
