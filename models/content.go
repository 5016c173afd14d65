package models

import "html/template"

// LandingContent is the marketing copy of the landing page
type LandingContent struct {
	Brand        Brand         `yaml:"brand"`
	Hero         Hero          `yaml:"hero"`
	Offer        Offer         `yaml:"offer"`
	Benefits     Section       `yaml:"benefits"`
	Features     []Feature     `yaml:"features"`
	SocialProof  SocialProof   `yaml:"social_proof"`
	Process      Section       `yaml:"process"`
	Steps        []Step        `yaml:"steps"`
	FAQIntro     Section       `yaml:"faq"`
	FAQ          []FAQItem     `yaml:"faq_items"`
	Testimonials []Testimonial `yaml:"testimonials"`
	Booking      Booking       `yaml:"booking"`
	Contact      Contact       `yaml:"contact"`
}

type Brand struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
}

type Hero struct {
	Eyebrow      string   `yaml:"eyebrow"`
	HeadlineLead string   `yaml:"headline_lead"`
	Highlight    string   `yaml:"highlight"`
	HeadlineTail string   `yaml:"headline_tail"`
	Subheadline  string   `yaml:"subheadline"`
	PrimaryCTA   string   `yaml:"primary_cta"`
	SecondaryCTA string   `yaml:"secondary_cta"`
	Stats        []Stat   `yaml:"stats"`
	Badges       []string `yaml:"badges"`
}

type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Offer is the copy around the lead form card
type Offer struct {
	Title       string      `yaml:"title"`
	Subtitle    string      `yaml:"subtitle"`
	Turnaround  string      `yaml:"turnaround"`
	SubmitLabel string      `yaml:"submit_label"`
	Disclaimer  string      `yaml:"disclaimer"`
	MiniProofs  []Feature   `yaml:"mini_proofs"`
	Fields      OfferFields `yaml:"fields"`
	ThankYou    ThankYou    `yaml:"thank_you"`
}

type OfferFields struct {
	FullName FieldCopy `yaml:"full_name"`
	Email    FieldCopy `yaml:"email"`
	Company  FieldCopy `yaml:"company"`
	Goal     FieldCopy `yaml:"goal"`
}

type FieldCopy struct {
	Label       string `yaml:"label"`
	Placeholder string `yaml:"placeholder"`
}

type ThankYou struct {
	Eyebrow  string `yaml:"eyebrow"`
	Title    string `yaml:"title"`
	Body     string `yaml:"body"`
	BackCTA  string `yaml:"back_cta"`
	ExtraCTA string `yaml:"extra_cta"`
	ExtraURL string `yaml:"extra_url"`
}

// Section is a heading with an intro paragraph
type Section struct {
	Title string `yaml:"title"`
	Intro string `yaml:"intro"`
	CTA   string `yaml:"cta"`
}

type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type SocialProof struct {
	Title      string   `yaml:"title"`
	Intro      string   `yaml:"intro"`
	Badges     []string `yaml:"badges"`
	Disclaimer string   `yaml:"disclaimer"`
}

type Testimonial struct {
	Quote string `yaml:"quote"`
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
}

type Step struct {
	Number      string `yaml:"number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// FAQItem holds a question and its Markdown answer. AnswerHTML is filled in
// when the content is loaded.
type FAQItem struct {
	Question   string        `yaml:"question"`
	Answer     string        `yaml:"answer"`
	AnswerHTML template.HTML `yaml:"-"`
}

type Booking struct {
	Title    string `yaml:"title"`
	Intro    string `yaml:"intro"`
	Calendar string `yaml:"calendar_url"`
	BackCTA  string `yaml:"back_cta"`
}

type Contact struct {
	WhatsAppLabel string `yaml:"whatsapp_label"`
	WhatsAppURL   string `yaml:"whatsapp_url"`
}
