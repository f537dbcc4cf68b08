package seo

import (
	"fmt"
	"strings"
)

// Target is one city/service pair to generate a landing page for
type Target struct {
	City    string `json:"city" yaml:"city" validate:"required,max=100"`
	State   string `json:"state" yaml:"state" validate:"required,len=2,alpha"`
	Service string `json:"service" yaml:"service" validate:"required,max=100"`
}

// Slug returns the landing page slug for the target
func (t Target) Slug() string {
	return PageSlug(t.Service, t.City, t.State)
}

// PageContent is the structured copy the model returns for a landing page
type PageContent struct {
	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
	H1              string `json:"h1"`
	ContentHTML     string `json:"content_html"`
}

const (
	maxTitleLen = 200
	maxMetaLen  = 320
)

// Clean sanitizes every field and enforces column lengths
func (c PageContent) Clean() PageContent {
	return PageContent{
		Title:           truncate(StripTags(c.Title), maxTitleLen),
		MetaDescription: truncate(StripTags(c.MetaDescription), maxMetaLen),
		H1:              truncate(StripTags(c.H1), maxTitleLen),
		ContentHTML:     SanitizeHTML(c.ContentHTML),
	}
}

// Valid reports whether the content has everything a page needs
func (c PageContent) Valid() bool {
	return c.Title != "" && c.H1 != "" && c.ContentHTML != ""
}

// PagePrompt builds the generation prompt for a target
func PagePrompt(t Target) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a local SEO landing page for a professional %s business serving %s, %s.\n", t.Service, t.City, strings.ToUpper(t.State))
	b.WriteString("Audience: individuals and small businesses looking for help with their taxes.\n")
	b.WriteString("Mention the city naturally, include a short FAQ section and a call to action to book a consultation.\n")
	b.WriteString("Do not invent prices, phone numbers, addresses or reviews.\n")
	b.WriteString("Respond with a single JSON object with string fields: ")
	b.WriteString(`"title" (max 60 chars), "meta_description" (max 155 chars), "h1", "content_html" (semantic HTML using h2, h3, p, ul, li only).`)
	return b.String()
}

// ImagePrompt builds the hero image prompt for a target
func ImagePrompt(t Target) string {
	return fmt.Sprintf("Professional, friendly photo for a %s office in %s, %s. Bright natural light, no text, no logos.", t.Service, t.City, strings.ToUpper(t.State))
}

// CampaignContent is the structured copy the model returns for a campaign email
type CampaignContent struct {
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
}

// CampaignPrompt builds the generation prompt for a campaign email
func CampaignPrompt(audience, brief string) string {
	return fmt.Sprintf(
		"Write a marketing email for a tax preparation firm. Audience: %s. Brief: %s\n"+
			"Keep it under 200 words, friendly and compliant, with one clear call to action.\n"+
			`Respond with a single JSON object with string fields "subject" and "body_html" (HTML using p, ul, li, a, strong only).`,
		strings.ReplaceAll(audience, "_", " "), brief,
	)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
