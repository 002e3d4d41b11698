package sections

import (
	"sitegen-workers/internal/models"
)

func copyItems(items []models.ContentItem) []models.ContentItem {
	if len(items) == 0 {
		return nil
	}
	return append([]models.ContentItem(nil), items...)
}

func Features(title string, items []models.ContentItem, colors models.ColorTokens) models.Section {
	return models.Section{
		Kind:  models.SectionFeatures,
		Props: map[string]string{"title": title},
		Items: copyItems(items),
		Style: map[string]string{"iconColor": colors.Accent, "color": colors.Text},
	}
}

// Menu groups nothing itself; items carry their Category and renderers group by it.
func Menu(title string, items []models.ContentItem, colors models.ColorTokens) models.Section {
	return models.Section{
		Kind:  models.SectionMenu,
		Props: map[string]string{"title": title},
		Items: copyItems(items),
		Style: map[string]string{"priceColor": colors.Primary, "color": colors.Text},
	}
}

func Gallery(title string, items []models.ContentItem) models.Section {
	return models.Section{
		Kind:  models.SectionGallery,
		Props: map[string]string{"title": title},
		Items: copyItems(items),
	}
}

func Testimonials(items []models.ContentItem, colors models.ColorTokens) models.Section {
	return models.Section{
		Kind:  models.SectionTestimonials,
		Props: map[string]string{"title": "What Our Customers Say"},
		Items: copyItems(items),
		Style: map[string]string{"quoteColor": colors.Secondary},
	}
}

func Pricing(title string, items []models.ContentItem, colors models.ColorTokens) models.Section {
	return models.Section{
		Kind:  models.SectionPricing,
		Props: map[string]string{"title": title},
		Items: copyItems(items),
		Style: map[string]string{"highlightColor": colors.Accent, "priceColor": colors.Primary},
	}
}

func Team(title string, items []models.ContentItem) models.Section {
	return models.Section{
		Kind:  models.SectionTeam,
		Props: map[string]string{"title": title},
		Items: copyItems(items),
	}
}

// Hours turns opening hours into items titled by day range.
func Hours(hours []models.HoursEntry) models.Section {
	items := make([]models.ContentItem, 0, len(hours))
	for _, h := range hours {
		items = append(items, models.ContentItem{Title: h.Days, Description: h.Hours})
	}
	return models.Section{
		Kind:  models.SectionHours,
		Props: map[string]string{"title": "Hours"},
		Items: items,
	}
}

func Contact(biz BusinessContext, colors models.ColorTokens) models.Section {
	return models.Section{
		Kind: models.SectionContact,
		Props: map[string]string{
			"title":        "Get in Touch",
			"businessName": biz.Name,
			"phone":        biz.Phone,
			"email":        biz.Email,
			"address":      biz.Address,
			"location":     biz.Location,
		},
		Style: map[string]string{"linkColor": colors.Primary},
	}
}

func CallToAction(headline string, cta models.CTA, colors models.ColorTokens) models.Section {
	return models.Section{
		Kind: models.SectionCTA,
		Props: map[string]string{
			"headline": headline,
			"label":    cta.Label,
			"href":     cta.Href,
		},
		Style: map[string]string{
			"background":  colors.Secondary,
			"color":       colors.Background,
			"buttonColor": colors.Accent,
		},
	}
}

// Text carries a markdown body; renderers convert it.
func Text(title, markdown string) models.Section {
	return models.Section{
		Kind:  models.SectionText,
		Props: map[string]string{"title": title, "body": markdown},
	}
}

// Reorder moves sections whose kind appears in order to the front, in that order.
// Sections not named keep their relative position after them. Input is not modified.
func Reorder(secs []models.Section, order []models.SectionKind) []models.Section {
	if len(order) == 0 {
		return append([]models.Section(nil), secs...)
	}
	out := make([]models.Section, 0, len(secs))
	used := make([]bool, len(secs))
	for _, kind := range order {
		for i, s := range secs {
			if !used[i] && s.Kind == kind {
				out = append(out, s)
				used[i] = true
			}
		}
	}
	for i, s := range secs {
		if !used[i] {
			out = append(out, s)
		}
	}
	return out
}
