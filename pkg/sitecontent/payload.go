package sitecontent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Per-section payload shapes. Each section type declares its own field
// set; ValidatePayload enforces the shape at the API boundary so the
// store never holds a payload its section type cannot render.

// Link is a labelled href used by navigation and footer payloads.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Logo is a named image reference used by client/partner strips.
type Logo struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// NavbarPayload is the content shape for the navbar section.
type NavbarPayload struct {
	LogoURL string `json:"logo_url,omitempty"`
	Links   []Link `json:"links,omitempty"`
}

// HeroPayload is the content shape for the hero section.
type HeroPayload struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline,omitempty"`
	CTALabel    string `json:"cta_label,omitempty"`
	CTAHref     string `json:"cta_href,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// AboutPayload is the content shape for the about section.
type AboutPayload struct {
	Heading  string `json:"heading,omitempty"`
	Body     string `json:"body,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// ServiceItem is one offering card in the services section.
type ServiceItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
}

// ServicesPayload is the content shape for the services section.
type ServicesPayload struct {
	Heading string        `json:"heading,omitempty"`
	Items   []ServiceItem `json:"items,omitempty"`
}

// PortfolioProject is one case-study card in the portfolio section.
type PortfolioProject struct {
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Href     string `json:"href,omitempty"`
}

// PortfolioPayload is the content shape for the portfolio section.
type PortfolioPayload struct {
	Heading  string             `json:"heading,omitempty"`
	Projects []PortfolioProject `json:"projects,omitempty"`
}

// MarqueeClientsPayload is the content shape for the scrolling client strip.
type MarqueeClientsPayload struct {
	Logos []Logo `json:"logos,omitempty"`
}

// DigitalPartnersPayload is the content shape for the partners section.
type DigitalPartnersPayload struct {
	Heading  string `json:"heading,omitempty"`
	Partners []Logo `json:"partners,omitempty"`
}

// CTAPayload is the content shape for the call-to-action banner.
type CTAPayload struct {
	Heading     string `json:"heading,omitempty"`
	ButtonLabel string `json:"button_label,omitempty"`
	ButtonHref  string `json:"button_href,omitempty"`
}

// FooterPayload is the content shape for the footer section.
type FooterPayload struct {
	Tagline   string `json:"tagline,omitempty"`
	Email     string `json:"email,omitempty"`
	Socials   []Link `json:"socials,omitempty"`
	Copyright string `json:"copyright,omitempty"`
}

// payloadPrototype returns an empty payload value for the given type.
func payloadPrototype(t SectionType) interface{} {
	switch t {
	case SectionNavbar:
		return &NavbarPayload{}
	case SectionHero:
		return &HeroPayload{}
	case SectionAbout:
		return &AboutPayload{}
	case SectionServices:
		return &ServicesPayload{}
	case SectionPortfolio:
		return &PortfolioPayload{}
	case SectionMarqueeClients:
		return &MarqueeClientsPayload{}
	case SectionDigitalPartners:
		return &DigitalPartnersPayload{}
	case SectionCTA:
		return &CTAPayload{}
	case SectionFooter:
		return &FooterPayload{}
	default:
		return nil
	}
}

// ValidatePayload checks that raw decodes into the payload shape
// declared for the section type. Unknown fields and type mismatches
// are rejected with ErrInvalidPayload; an unrecognized section type is
// rejected with ErrUnknownSectionType.
func ValidatePayload(t SectionType, raw json.RawMessage) error {
	proto := payloadPrototype(t)
	if proto == nil {
		return fmt.Errorf("%w: %q", ErrUnknownSectionType, t)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(proto); err != nil {
		return fmt.Errorf("%w for %s: %v", ErrInvalidPayload, t, err)
	}
	// Reject trailing garbage after the payload object.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("%w for %s: trailing data", ErrInvalidPayload, t)
	}

	return nil
}
