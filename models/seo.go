package models

// SEO is the per-page metadata rendered into the document head
type SEO struct {
	Title       string
	Description string // 150-160 chars reads best in results
	Keywords    string // Comma-separated
	Canonical   string // Absolute URL
	OGTitle     string // Falls back to Title
	OGDesc      string // Falls back to Description
	OGImage     string
	OGType      string
	TwitterCard string // summary, summary_large_image
	NoIndex     bool
}

// NewSEO builds metadata for the page at path on the site rooted at baseURL
func NewSEO(title, description, baseURL, path string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		Canonical:   baseURL + path,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	}
}

// GetOGTitle returns OGTitle or falls back to Title
func (s *SEO) GetOGTitle() string {
	if s.OGTitle != "" {
		return s.OGTitle
	}
	return s.Title
}

// GetOGDesc returns OGDesc or falls back to Description
func (s *SEO) GetOGDesc() string {
	if s.OGDesc != "" {
		return s.OGDesc
	}
	return s.Description
}

// Robots is the content of the robots meta tag
func (s *SEO) Robots() string {
	if s.NoIndex {
		return "noindex, nofollow"
	}
	return "index, follow"
}
