package templates

import "sitegen-workers/internal/models"

// builtinRegistries returns one registry per supported industry. Adding a page to an
// industry is adding an entry to its Pages slice.
func builtinRegistries() []IndustryRegistry {
	return []IndustryRegistry{
		{
			Industry: "restaurant",
			Aliases:  []string{"cafe", "bakery", "bistro", "coffee shop", "bar", "food"},
			DefaultColors: models.ColorTokens{
				Primary: "#8B2E16", Secondary: "#3E2723", Accent: "#F4A259", Background: "#FFF8F0", Text: "#2B2B2B",
			},
			Pages: []PageTemplate{
				homePage("Why Guests Love Us",
					item("Fresh Ingredients", "Sourced from local farms every morning."),
					item("Cozy Atmosphere", "A warm room for family dinners and date nights."),
					item("Catering", "Bring our kitchen to your next event."),
				),
				menuPage(
					models.ContentItem{Title: "Seasonal Soup", Description: "Ask your server", Price: "$8", Category: "Starters"},
					models.ContentItem{Title: "House Pasta", Description: "Made fresh daily", Price: "$18", Category: "Mains"},
					models.ContentItem{Title: "Chef's Dessert", Description: "Changes weekly", Price: "$9", Category: "Desserts"},
				),
				aboutPage("Our Story"),
				galleryPage(),
				contactPage(),
			},
		},
		{
			Industry: "salon",
			Aliases:  []string{"spa", "beauty", "barber", "barbershop", "nails", "hair"},
			DefaultColors: models.ColorTokens{
				Primary: "#6D4C6F", Secondary: "#2F2235", Accent: "#E8B4B8", Background: "#FDF9FA", Text: "#333333",
			},
			Pages: []PageTemplate{
				homePage("Treat Yourself",
					item("Expert Stylists", "Trained in the latest cuts and color."),
					item("Relaxing Space", "Unwind from the moment you arrive."),
					item("Premium Products", "Only salon-grade care for your hair and skin."),
				),
				servicesPage("Services", "Our Services",
					item("Cut & Style", "Consultation, wash, cut and finish."),
					item("Color", "Full color, highlights and balayage."),
					item("Treatments", "Deep conditioning and scalp care."),
				),
				pricingPage("Pricing",
					priced("Cut & Style", "", "$55"),
					priced("Color", "Starting price", "$95"),
					priced("Treatment", "", "$40"),
				),
				galleryPage(),
				bookingPage(),
				contactPage(),
			},
		},
		{
			Industry: "fitness",
			Aliases:  []string{"gym", "yoga", "crossfit", "pilates", "personal training"},
			DefaultColors: models.ColorTokens{
				Primary: "#D7263D", Secondary: "#1B1B1E", Accent: "#F46036", Background: "#FFFFFF", Text: "#1B1B1E",
			},
			Pages: []PageTemplate{
				homePage("Train With Us",
					item("Open 7 Days", "Work out on your schedule."),
					item("Group Classes", "HIIT, strength, spin and more."),
					item("Coaching", "Certified trainers who track your progress."),
				),
				servicesPage("Classes", "Class Schedule",
					item("HIIT", "45 minutes of high intensity intervals."),
					item("Strength", "Barbell fundamentals for every level."),
					item("Mobility", "Recover and move better."),
				),
				pricingPage("Memberships",
					priced("Basic", "Gym floor access", "$29/mo"),
					priced("Unlimited", "Gym plus all classes", "$59/mo"),
					priced("Coaching", "Unlimited plus 4 personal sessions", "$149/mo"),
				),
				teamPage("Trainers"),
				contactPage(),
			},
		},
		{
			Industry: "professional",
			Aliases:  []string{"law", "law firm", "legal", "attorney", "accounting", "consulting", "finance"},
			DefaultColors: models.ColorTokens{
				Primary: "#1F3A5F", Secondary: "#0F1C2E", Accent: "#C9A227", Background: "#FFFFFF", Text: "#222222",
			},
			Pages: []PageTemplate{
				homePage("How We Help",
					item("Experience", "Decades of combined practice."),
					item("Personal Attention", "You work directly with a senior advisor."),
					item("Clear Fees", "No surprises on your invoice."),
				),
				servicesPage("Practice Areas", "Practice Areas",
					item("Business", "Formation, contracts and compliance."),
					item("Individuals", "Planning and representation."),
					item("Advisory", "Ongoing counsel for growing companies."),
				),
				aboutPage("About the Firm"),
				teamPage("Our Team"),
				contactPage(),
			},
		},
		{
			Industry: "homeservices",
			Aliases:  []string{"home services", "plumbing", "plumber", "electrical", "electrician", "cleaning", "hvac", "roofing", "construction", "landscaping"},
			DefaultColors: models.ColorTokens{
				Primary: "#0B6E4F", Secondary: "#073B3A", Accent: "#FFB400", Background: "#FFFFFF", Text: "#1D1D1D",
			},
			Pages: []PageTemplate{
				homePage("Why Homeowners Call Us",
					item("Licensed & Insured", "Work done to code, guaranteed."),
					item("Fast Response", "Same-day appointments available."),
					item("Upfront Pricing", "A quote before any work begins."),
				),
				servicesPage("Services", "What We Do",
					item("Repairs", "Diagnosis and repair of common issues."),
					item("Installations", "New fixtures and systems."),
					item("Maintenance", "Seasonal checkups to prevent breakdowns."),
				),
				aboutPage("About Us"),
				contactPage(),
			},
		},
		{
			Industry: GeneralIndustry,
			DefaultColors: models.ColorTokens{
				Primary: "#2563EB", Secondary: "#1E293B", Accent: "#F59E0B", Background: "#FFFFFF", Text: "#111827",
			},
			Pages: []PageTemplate{
				homePage("What We Offer",
					item("Quality", "Work we are proud to put our name on."),
					item("Service", "Friendly people who answer the phone."),
					item("Value", "Fair prices for every customer."),
				),
				aboutPage("About Us"),
				servicesPage("Services", "Our Services"),
				contactPage(),
			},
		},
	}
}
