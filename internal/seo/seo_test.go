package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageSlug(t *testing.T) {
	cases := []struct {
		service, city, state, want string
	}{
		{"Tax Preparation", "San Jose", "CA", "tax-preparation-san-jose-ca"},
		{"Tax Preparation", "San José", "CA", "tax-preparation-san-jose-ca"},
		{"IRS Audit Help", "Coeur d'Alene", "ID", "irs-audit-help-coeur-d-alene-id"},
		{"  Bookkeeping ", "St. Louis", "mo", "bookkeeping-st-louis-mo"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PageSlug(tc.service, tc.city, tc.state))
	}
}

func TestTranslatedSlug(t *testing.T) {
	assert.Equal(t, "tax-preparation-austin-tx-es", TranslatedSlug("tax-preparation-austin-tx", "ES"))
}

func TestTargetSlug(t *testing.T) {
	assert.Equal(t, "tax-preparation-austin-tx", Target{City: "Austin", State: "TX", Service: "Tax Preparation"}.Slug())
}

func TestSanitizeHTML(t *testing.T) {
	in := `<h2 onclick="x()">Hello</h2><script>alert(1)</script><p>Visit <a href="https://example.com">us</a></p>`
	out := SanitizeHTML(in)
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, "<h2>Hello</h2>")
	assert.Contains(t, out, `rel="nofollow"`)
}

func TestPageContentClean(t *testing.T) {
	c := PageContent{
		Title:           "<b>Tax help</b> in Austin",
		MetaDescription: strings.Repeat("x", 400),
		H1:              "Austin Tax Help",
		ContentHTML:     "<p>ok</p><iframe src=x></iframe>",
	}.Clean()

	assert.Equal(t, "Tax help in Austin", c.Title)
	assert.Len(t, c.MetaDescription, 320)
	assert.Equal(t, "<p>ok</p>", c.ContentHTML)
	assert.True(t, c.Valid())
	assert.False(t, PageContent{Title: "t"}.Valid())
}

func TestPrompts(t *testing.T) {
	target := Target{City: "Austin", State: "tx", Service: "Tax Preparation"}
	assert.Contains(t, PagePrompt(target), "Austin, TX")
	assert.Contains(t, PagePrompt(target), "content_html")
	assert.Contains(t, ImagePrompt(target), "no text")
	assert.Contains(t, CampaignPrompt("all_contacts", "extension deadline"), "all contacts")
}

func TestStripTagsKeepsPunctuation(t *testing.T) {
	assert.Equal(t, "Coeur d'Alene & Post Falls", StripTags("<i>Coeur d'Alene</i> &amp; Post Falls"))
}
