package handlers

import (
	"html/template"

	"ovies_landing_go/models"
	"ovies_landing_go/templates/components"
)

const ogImagePath = "/static/images/favicon.svg"

type pageMeta struct {
	Title       string
	Description string
	Keywords    string
	TwitterCard string
}

// pageSEO holds the per-page copy; URLs are filled in from the base URL
var pageSEO = map[string]pageMeta{
	"landing": {
		Title:       "Free Landing Page Mini-Audit | Ovies Landing",
		Description: "Premium, conversion-first landing pages that turn clicks into booked calls. Get a free mini-audit with 5 conversion fixes tailored to your offer.",
		Keywords:    "landing page, conversion rate optimization, lead capture, landing page audit, marketing funnel",
		TwitterCard: "summary_large_image",
	},
	"booking": {
		Title:       "Book a Free Call | Ovies Landing",
		Description: "Pick a time for a free call about your offer, your audience and the quickest conversion wins for your landing page.",
		Keywords:    "book a call, landing page consultation, conversion audit",
		TwitterCard: "summary",
	},
}

// pagePaths maps pages to their canonical paths
var pagePaths = map[string]string{
	"landing": "/",
	"booking": "/book",
}

// GetSEO returns the SEO configuration for a page rooted at baseURL
func GetSEO(page, baseURL string) *models.SEO {
	meta, ok := pageSEO[page]
	if !ok {
		seo := models.NewSEO("Ovies Landing", "", baseURL, "/")
		seo.NoIndex = true
		return seo
	}

	seo := models.NewSEO(meta.Title, meta.Description, baseURL, pagePaths[page])
	seo.Keywords = meta.Keywords
	seo.TwitterCard = meta.TwitterCard
	seo.OGImage = baseURL + ogImagePath
	return seo
}

// landingStructuredData describes the business and its FAQ for search engines
func landingStructuredData(content *models.LandingContent, baseURL string) template.JS {
	faq := make([]map[string]any, 0, len(content.FAQ))
	for _, item := range content.FAQ {
		faq = append(faq, map[string]any{
			"@type": "Question",
			"name":  item.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  item.Answer,
			},
		})
	}

	return components.JSONLD(map[string]any{
		"@context": "https://schema.org",
		"@graph": []map[string]any{
			{
				"@type":       "ProfessionalService",
				"name":        content.Brand.Name,
				"description": content.Brand.Tagline,
				"url":         baseURL + "/",
			},
			{
				"@type":      "FAQPage",
				"mainEntity": faq,
			},
		},
	})
}
