package services

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"ovies_landing_go/models"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

//go:embed content/landing.yaml
var defaultLandingContent []byte

var markdownPolicy = bluemonday.UGCPolicy()

// LoadLandingContent parses the landing copy shipped with the binary
func LoadLandingContent() (*models.LandingContent, error) {
	return ParseLandingContent(defaultLandingContent)
}

// ParseLandingContent decodes landing copy from YAML and renders the FAQ
// answers from Markdown. Unknown keys are rejected so typos in the copy file
// surface at startup.
func ParseLandingContent(data []byte) (*models.LandingContent, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var content models.LandingContent
	if err := dec.Decode(&content); err != nil {
		return nil, fmt.Errorf("failed to parse landing content: %w", err)
	}

	if content.Brand.Name == "" {
		return nil, fmt.Errorf("landing content is missing brand.name")
	}

	for i := range content.FAQ {
		html, err := RenderMarkdown(content.FAQ[i].Answer)
		if err != nil {
			return nil, fmt.Errorf("failed to render answer to %q: %w", content.FAQ[i].Question, err)
		}
		content.FAQ[i].AnswerHTML = html
	}

	return &content, nil
}

// RenderMarkdown converts Markdown to sanitized HTML
func RenderMarkdown(input string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(input), &buf); err != nil {
		return "", err
	}
	return template.HTML(markdownPolicy.SanitizeBytes(buf.Bytes())), nil
}
