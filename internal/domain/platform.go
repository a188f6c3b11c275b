package domain

import "strings"

// Platform is a social or contact channel offered by the create wizard.
type Platform struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	prefix string
}

var platforms = []Platform{
	{ID: "instagram", Label: "Instagram", Icon: IconInstagram, prefix: "https://instagram.com/"},
	{ID: "tiktok", Label: "TikTok", Icon: IconTikTok, prefix: "https://tiktok.com/@"},
	{ID: "facebook", Label: "Facebook", Icon: IconFacebook, prefix: "https://facebook.com/"},
	{ID: "youtube", Label: "YouTube", Icon: IconYouTube, prefix: "https://youtube.com/@"},
	{ID: "twitter", Label: "Twitter", Icon: IconTwitter, prefix: "https://twitter.com/"},
	{ID: "linkedin", Label: "LinkedIn", Icon: IconLinkedIn, prefix: "https://linkedin.com/in/"},
	{ID: "whatsapp", Label: "WhatsApp", Icon: IconWhatsApp},
	{ID: "website", Label: "Website", Icon: IconGlobe},
}

// Platforms lists the wizard platforms in display order.
func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

// PlatformByID looks a platform up by id.
func PlatformByID(id string) (Platform, bool) {
	for _, p := range platforms {
		if p.ID == id {
			return p, true
		}
	}
	return Platform{}, false
}

// URL turns a handle into the platform link. WhatsApp handles are numbers,
// website handles are addresses.
func (p Platform) URL(handle string) string {
	switch p.ID {
	case "whatsapp":
		return ChatURL(handle)
	case "website":
		return CustomLink{URL: handle, Type: LinkURL}.Href()
	}
	return p.prefix + NormalizeHandle(handle)
}

// Link builds the visible social link for handle.
func (p Platform) Link(id, handle string) CustomLink {
	typ := LinkSocial
	if p.ID == "website" {
		typ = LinkURL
	}
	return CustomLink{ID: id, Title: p.Label, URL: p.URL(handle), Type: typ, Icon: p.Icon, Visible: true}
}

// ValidHandle reports whether handle is usable for the platform.
func (p Platform) ValidHandle(handle string) bool {
	switch p.ID {
	case "whatsapp":
		return ValidWhatsApp(handle)
	case "website":
		h := strings.TrimSpace(handle)
		return h != "" && !strings.ContainsAny(h, " \t\n")
	}
	return NormalizeHandle(handle) != ""
}
