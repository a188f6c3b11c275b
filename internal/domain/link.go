package domain

import "strings"

// LinkType classifies a custom link and decides how its href is built.
type LinkType string

const (
	LinkURL     LinkType = "url"
	LinkEmail   LinkType = "email"
	LinkPhone   LinkType = "phone"
	LinkPayment LinkType = "payment"
	LinkSocial  LinkType = "social"
)

func (t LinkType) Valid() bool {
	switch t {
	case LinkURL, LinkEmail, LinkPhone, LinkPayment, LinkSocial:
		return true
	}
	return false
}

// Icon tags understood by the page renderer.
const (
	IconInstagram = "instagram"
	IconFacebook  = "facebook"
	IconTwitter   = "twitter"
	IconYouTube   = "youtube"
	IconLinkedIn  = "linkedin"
	IconTikTok    = "tiktok"
	IconWhatsApp  = "whatsapp"
	IconGlobe     = "globe"
)

// CustomLink is a user-defined button on the page. List order is display order.
type CustomLink struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	URL     string   `json:"url"`
	Type    LinkType `json:"type"`
	Icon    string   `json:"icon"`
	Visible bool     `json:"visible"`
}

// Href returns the navigable target for the link given its type.
func (l CustomLink) Href() string {
	target := strings.TrimSpace(l.URL)
	if target == "" {
		return ""
	}
	switch l.Type {
	case LinkEmail:
		if !strings.HasPrefix(target, "mailto:") {
			return "mailto:" + target
		}
		return target
	case LinkPhone:
		if !strings.HasPrefix(target, "tel:") {
			return "tel:" + target
		}
		return target
	}
	lower := strings.ToLower(target)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return target
	}
	return "https://" + target
}
