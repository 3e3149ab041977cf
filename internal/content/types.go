package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Document is the root content record for a page. Every top-level field
// is optional; renderers for absent fields simply do not run. Unknown
// fields in the payload are ignored for forward compatibility.
type Document struct {
	Meta         *Meta         `json:"meta,omitempty"`
	Header       *Header       `json:"header,omitempty"`
	Sections     []Section     `json:"sections,omitempty"`
	Footer       *Footer       `json:"footer,omitempty"`
	Modals       []Modal       `json:"modals,omitempty"`
	CookieNotice *CookieNotice `json:"cookieNotice,omitempty"`
}

// Meta carries the page's descriptive metadata.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Header describes the page masthead.
type Header struct {
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle,omitempty"`
	Logo        string       `json:"logo,omitempty"`
	SocialLinks []SocialLink `json:"socialLinks,omitempty"`
}

// SocialLink is a single masthead link. An empty URL means the entry is
// hidden and renders nothing.
type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon,omitempty"`
}

// Section is a titled group of items, rendered in document order.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items,omitempty"`
}

// Item is one entry within a section. An item with neither heading nor
// text still occupies its slot so the layout stays consistent.
type Item struct {
	Heading  string     `json:"heading,omitempty"`
	Text     Paragraphs `json:"text,omitempty"`
	Image    string     `json:"image,omitempty"`
	SteamURL string     `json:"steamUrl,omitempty"`
}

// Footer describes the page footer. Year is either a literal string or
// "auto", meaning the current year is computed at render time.
type Footer struct {
	CompanyName    string       `json:"companyName"`
	Year           string       `json:"year,omitempty"`
	AdditionalText string       `json:"additionalText,omitempty"`
	Links          []FooterLink `json:"links,omitempty"`
}

// FooterLink is a single footer link. Fragment URLs ("#id") address
// modals; everything else is a plain web link.
type FooterLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Modal is a dialog addressable by its id, which doubles as the URL
// fragment used for deep linking.
type Modal struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Content Paragraphs `json:"content,omitempty"`
}

// CookieNotice configures the one-time dismissible notice banner.
type CookieNotice struct {
	Enabled    bool   `json:"enabled"`
	Message    string `json:"message"`
	MoreText   string `json:"moreText,omitempty"`
	MoreLink   string `json:"moreLink,omitempty"`
	ButtonText string `json:"buttonText,omitempty"`
}

// Paragraphs is a list of paragraph strings. The JSON form is either an
// array of strings or a single string whose embedded newlines delimit
// paragraphs; both decode to the same value.
type Paragraphs []string

// UnmarshalJSON implements json.Unmarshaler.
func (p *Paragraphs) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*p = splitParagraphs(single)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("text must be a string or a list of strings: %w", err)
	}
	*p = Paragraphs(many)
	return nil
}

func splitParagraphs(s string) Paragraphs {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return Paragraphs(strings.Split(s, "\n"))
}

// Modal returns the modal with the given id, or nil when no such modal
// exists. When ids collide the first one wins.
func (d *Document) Modal(id string) *Modal {
	if d == nil || id == "" {
		return nil
	}
	for i := range d.Modals {
		if d.Modals[i].ID == id {
			return &d.Modals[i]
		}
	}
	return nil
}
