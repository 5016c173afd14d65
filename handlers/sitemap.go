package handlers

import (
	"encoding/xml"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

var sitemapPriority = map[string]float32{
	"landing": 1.0,
	"booking": 0.8,
}

// GetSitemapHandler generates the XML sitemap of the public pages
func GetSitemapHandler(c echo.Context) error {
	base := baseURL(c)

	pages := make([]string, 0, len(pagePaths))
	for page := range pagePaths {
		pages = append(pages, page)
	}
	sort.Slice(pages, func(i, j int) bool { return sitemapPriority[pages[i]] > sitemapPriority[pages[j]] })

	urls := make([]SitemapURL, 0, len(pages))
	for _, page := range pages {
		urls = append(urls, SitemapURL{
			Loc:        base + pagePaths[page],
			ChangeFreq: "weekly",
			Priority:   sitemapPriority[page],
		})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// RobotsHandler serves robots.txt pointing crawlers at the sitemap
func RobotsHandler(c echo.Context) error {
	body := "User-agent: *\nAllow: /\nDisallow: /lead/\nDisallow: /api/\n\nSitemap: " + baseURL(c) + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}
