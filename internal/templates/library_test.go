package templates

import (
	"testing"

	"sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/layout"
	"sitegen-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generalFixture() *models.BusinessFixture {
	return &models.BusinessFixture{
		Business: models.Business{Name: "Acme Widgets", Industry: "widgets", Phone: "555-0199"},
	}
}

func sectionKinds(p models.Page) []models.SectionKind {
	out := make([]models.SectionKind, len(p.Sections))
	for i, s := range p.Sections {
		out[i] = s.Kind
	}
	return out
}

func TestRegistryCompleteness(t *testing.T) {
	for _, industry := range Default.Industries() {
		t.Run(industry, func(t *testing.T) {
			reg := Default.Lookup(industry)
			require.Equal(t, industry, reg.Industry)
			require.NotEmpty(t, reg.Pages)
			c := reg.DefaultColors
			for _, token := range []string{c.Primary, c.Secondary, c.Accent, c.Background, c.Text} {
				assert.NotEmpty(t, token)
			}

			ids := map[string]bool{}
			names := map[string]bool{}
			paths := map[string]bool{}
			for _, p := range reg.Pages {
				assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
				assert.False(t, names[p.PageName()], "duplicate name %s", p.PageName())
				assert.False(t, paths[p.Path], "duplicate path %s", p.Path)
				ids[p.ID], names[p.PageName()], paths[p.Path] = true, true, true

				assert.True(t, models.ValidPageType(p.PageType), p.ID)
				assert.NotNil(t, p.Generate, p.ID)
			}
			assert.True(t, ids["home"], "home page required")
			assert.True(t, ids["contact"], "contact page required")

			f := &models.BusinessFixture{Business: models.Business{Name: "Test Co", Industry: industry}}
			site, err := Default.GenerateSite(f, Options{})
			require.NoError(t, err)
			assert.Len(t, site.Pages, len(reg.Pages))
			assert.Len(t, site.App.Navigation, len(reg.Pages))
			for _, r := range site.App.Routes {
				_, ok := site.Pages[r.PageName]
				assert.True(t, ok, "route %s has no page", r.Path)
			}
		})
	}
}

func TestEveryLayoutKeepsHeroFirst(t *testing.T) {
	for _, l := range layout.Available() {
		for _, industry := range Default.Industries() {
			f := &models.BusinessFixture{Business: models.Business{
				Name:     "Test Co",
				Industry: industry,
				Hours:    []models.HoursEntry{{Days: "Mon", Hours: "9-5"}},
			}}
			site, err := GenerateSite(f, Options{LayoutID: l.ID})
			require.NoError(t, err)
			for name, p := range site.Pages {
				require.NotEmpty(t, p.Sections, name)
				assert.Equal(t, models.SectionHero, p.Sections[0].Kind, "%s/%s/%s", l.ID, industry, name)
			}
		}
	}
}

func TestLookup_AliasesAndFallback(t *testing.T) {
	assert.Equal(t, "professional", Default.Lookup("Law Firm").Industry)
	assert.Equal(t, "homeservices", Default.Lookup("Plumbing").Industry)
	assert.Equal(t, "restaurant", Default.Lookup("coffee-shop").Industry)
	assert.Equal(t, GeneralIndustry, Default.Lookup("quantum widgets").Industry)
	assert.Equal(t, GeneralIndustry, Default.Lookup("").Industry)
}

func TestGenerateSite_CompositionReferencesEveryPage(t *testing.T) {
	site, err := GenerateSite(generalFixture(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"HomePage", "AboutPage", "ServicesPage", "ContactPage"}, site.PageNames())
	assert.Equal(t, "Acme Widgets", site.App.Name)
	assert.Equal(t, models.NavLink{Label: "Home", Path: "/", PageName: "HomePage"}, site.App.Navigation[0])

	home := site.Pages["HomePage"]
	assert.Equal(t, "home", home.ID)
	assert.Equal(t, models.PageHome, home.PageType)
	assert.Equal(t, "Home | Acme Widgets", home.Title)
}

func TestGenerateSite_LayoutOrdersSections(t *testing.T) {
	site, err := GenerateSite(generalFixture(), Options{})
	require.NoError(t, err)
	assert.Equal(t, layout.DefaultID, site.Layout.ID)
	assert.Equal(t, []models.SectionKind{models.SectionHero, models.SectionFeatures, models.SectionCTA},
		sectionKinds(site.Pages["HomePage"]))

	site, err = GenerateSite(generalFixture(), Options{LayoutID: "bold"})
	require.NoError(t, err)
	assert.Equal(t, "bold", site.Layout.ID)
	assert.Equal(t, []models.SectionKind{models.SectionHero, models.SectionCTA, models.SectionFeatures},
		sectionKinds(site.Pages["HomePage"]))
}

func TestGenerateSite_HeroStyle(t *testing.T) {
	f := &models.BusinessFixture{Business: models.Business{Name: "Bella Cucina", Industry: "restaurant"}}

	site, err := GenerateSite(f, Options{})
	require.NoError(t, err)
	assert.Equal(t, "warm", site.Layout.ID)
	assert.Equal(t, "split", site.Pages["HomePage"].Sections[0].Variant)

	site, err = GenerateSite(f, Options{HeroStyle: "minimal"})
	require.NoError(t, err)
	assert.Equal(t, "minimal", site.Pages["HomePage"].Sections[0].Variant)

	site, err = GenerateSite(f, Options{HeroStyle: "does-not-exist"})
	require.NoError(t, err)
	assert.Equal(t, "centered", site.Pages["HomePage"].Sections[0].Variant)
}

func TestGenerateSite_ColorPrecedence(t *testing.T) {
	defaults := Default.Lookup("general").DefaultColors
	theme := &models.ColorTokens{Primary: "#111111", Accent: "#222222"}
	override := &models.ColorTokens{Primary: "#AAAAAA"}

	f := generalFixture()
	site, err := GenerateSite(f, Options{})
	require.NoError(t, err)
	assert.Equal(t, defaults, site.Colors)

	f.Theme.Colors = theme
	site, err = GenerateSite(f, Options{})
	require.NoError(t, err)
	assert.Equal(t, "#111111", site.Colors.Primary)
	assert.Equal(t, "#222222", site.Colors.Accent)
	assert.Equal(t, defaults.Background, site.Colors.Background)

	site, err = GenerateSite(f, Options{Colors: override})
	require.NoError(t, err)
	assert.Equal(t, "#AAAAAA", site.Colors.Primary)
	assert.Equal(t, defaults.Accent, site.Colors.Accent, "theme does not leak into an override")

	site, err = GenerateSite(f, Options{Colors: &models.ColorTokens{}})
	require.NoError(t, err)
	assert.Equal(t, "#111111", site.Colors.Primary, "empty override is skipped")
	assert.Contains(t, site.CSS, "--color-primary: #111111;")
}

func TestGenerateSite_PageFilter(t *testing.T) {
	site, err := GenerateSite(generalFixture(), Options{Pages: []string{"Contact", " home "}})
	require.NoError(t, err)
	assert.Equal(t, []string{"HomePage", "ContactPage"}, site.PageNames())

	_, err = GenerateSite(generalFixture(), Options{Pages: []string{"menu"}})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestGenerateSite_Errors(t *testing.T) {
	_, err := GenerateSite(nil, Options{})
	assert.True(t, errors.IsValidation(err))

	_, err = GenerateSite(&models.BusinessFixture{}, Options{})
	assert.True(t, errors.IsValidation(err))
}

func TestGenerateSite_FixtureContentAndImmutability(t *testing.T) {
	f := &models.BusinessFixture{
		Business: models.Business{
			Name:     "Bella Cucina",
			Industry: "restaurant",
			Hours:    []models.HoursEntry{{Days: "Tue-Sun", Hours: "5pm-10pm"}},
		},
		Theme: models.Theme{Colors: &models.ColorTokens{Primary: "#000000"}},
		Pages: map[string]models.PageContent{
			"menu": {Items: []models.ContentItem{{Title: "Lasagna", Price: "$21"}}},
		},
	}
	before := *f
	beforeTheme := *f.Theme.Colors

	site, err := GenerateSite(f, Options{})
	require.NoError(t, err)

	menu := site.Pages["MenuPage"]
	var found bool
	for _, s := range menu.Sections {
		if s.Kind == models.SectionMenu {
			found = true
			assert.Equal(t, []models.ContentItem{{Title: "Lasagna", Price: "$21"}}, s.Items)
		}
	}
	assert.True(t, found)

	assert.Equal(t, before.Business, f.Business)
	assert.Equal(t, beforeTheme, *f.Theme.Colors)
	assert.Len(t, f.Pages, 1)
}

func TestGenerateSite_Deterministic(t *testing.T) {
	a, err := GenerateSite(generalFixture(), Options{LayoutID: "classic"})
	require.NoError(t, err)
	b, err := GenerateSite(generalFixture(), Options{LayoutID: "classic"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPageName(t *testing.T) {
	assert.Equal(t, "HomePage", PageName("Home"))
	assert.Equal(t, "BookNowPage", PageName("Book Now"))
	assert.Equal(t, "AboutTheFirmPage", PageName("About the Firm"))
	assert.Equal(t, "PracticeAreasPage", PageName("practice-areas"))
}

func TestNewLibrary_FirstRegistrationWins(t *testing.T) {
	lib := NewLibrary(
		IndustryRegistry{Industry: "a", Aliases: []string{"shared"}},
		IndustryRegistry{Industry: "b", Aliases: []string{"shared"}},
	)
	assert.Equal(t, "a", lib.Lookup("shared").Industry)
	assert.Equal(t, []string{"a", "b"}, lib.Industries())
	assert.Equal(t, GeneralIndustry, lib.Lookup("other").Industry)
}
