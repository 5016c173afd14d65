package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLandingContent(t *testing.T) {
	content, err := LoadLandingContent()
	require.NoError(t, err)

	assert.Equal(t, "Ovies Landing", content.Brand.Name)
	assert.Len(t, content.Hero.Stats, 4)
	assert.Len(t, content.Features, 6)
	assert.Len(t, content.Steps, 3)
	assert.Len(t, content.Testimonials, 2)
	assert.Equal(t, "Send Me the Audit", content.Offer.SubmitLabel)

	require.NotEmpty(t, content.FAQ)
	for _, item := range content.FAQ {
		assert.True(t, strings.HasPrefix(string(item.AnswerHTML), "<p>"), item.Question)
	}
	assert.Contains(t, string(content.FAQ[1].AnswerHTML), "<code>LEAD_SUBMITTER</code>")
}

func TestParseLandingContentRejectsUnknownKeys(t *testing.T) {
	_, err := ParseLandingContent([]byte("brand:\n  name: X\n  colour: red\n"))
	assert.Error(t, err)
}

func TestParseLandingContentRequiresBrand(t *testing.T) {
	_, err := ParseLandingContent([]byte("hero:\n  eyebrow: hi\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "brand.name")
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	html, err := RenderMarkdown("Hello **there** [x](javascript:alert(1))")
	require.NoError(t, err)
	assert.Contains(t, string(html), "<strong>there</strong>")
	assert.NotContains(t, string(html), "javascript:")
}
