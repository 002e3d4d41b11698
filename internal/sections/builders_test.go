package sections

import (
	"testing"

	"sitegen-workers/internal/models"

	"github.com/stretchr/testify/assert"
)

func kinds(secs []models.Section) []models.SectionKind {
	out := make([]models.SectionKind, len(secs))
	for i, s := range secs {
		out[i] = s.Kind
	}
	return out
}

func TestReorder(t *testing.T) {
	secs := []models.Section{
		{Kind: models.SectionHero},
		{Kind: models.SectionFeatures},
		{Kind: models.SectionTestimonials},
		{Kind: models.SectionCTA},
		{Kind: models.SectionHours},
	}

	got := Reorder(secs, []models.SectionKind{models.SectionHero, models.SectionCTA, models.SectionFeatures})

	assert.Equal(t, []models.SectionKind{
		models.SectionHero, models.SectionCTA, models.SectionFeatures, models.SectionTestimonials, models.SectionHours,
	}, kinds(got))
	assert.Equal(t, models.SectionFeatures, secs[1].Kind, "input must not change")
}

func TestReorder_EmptyOrderKeepsInput(t *testing.T) {
	secs := []models.Section{{Kind: models.SectionText}, {Kind: models.SectionHero}}
	assert.Equal(t, secs, Reorder(secs, nil))
}

func TestReorder_IgnoresKindsNotPresent(t *testing.T) {
	secs := []models.Section{{Kind: models.SectionText}, {Kind: models.SectionContact}}
	got := Reorder(secs, []models.SectionKind{models.SectionMenu, models.SectionContact})
	assert.Equal(t, []models.SectionKind{models.SectionContact, models.SectionText}, kinds(got))
}

func TestHours(t *testing.T) {
	sec := Hours([]models.HoursEntry{{Days: "Mon-Fri", Hours: "9am-5pm"}})

	assert.Equal(t, models.SectionHours, sec.Kind)
	assert.Equal(t, []models.ContentItem{{Title: "Mon-Fri", Description: "9am-5pm"}}, sec.Items)
}

func TestBuilders_CopyItems(t *testing.T) {
	items := []models.ContentItem{{Title: "Margherita", Price: "$14"}}
	sec := Menu("Menu", items, testColors)
	items[0].Title = "changed"

	assert.Equal(t, "Margherita", sec.Items[0].Title)
	assert.Equal(t, testColors.Primary, sec.Style["priceColor"])
}

func TestContactAndCTA(t *testing.T) {
	c := Contact(testBiz, testColors)
	assert.Equal(t, "555-0100", c.Props["phone"])

	cta := CallToAction("Book today", models.CTA{Label: "Book", Href: "/booking"}, testColors)
	assert.Equal(t, models.SectionCTA, cta.Kind)
	assert.Equal(t, "/booking", cta.Props["href"])

	txt := Text("About", "We **love** pasta")
	assert.Equal(t, "We **love** pasta", txt.Props["body"])
}
