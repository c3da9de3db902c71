package editor

import (
	"github.com/joelraetz/folio"
)

// ProfileTextField addresses one of the profile's localized fields.
type ProfileTextField string

const (
	FieldTagline ProfileTextField = "tagline"
	FieldBio     ProfileTextField = "bio"
)

// SocialField addresses one field of a social link.
type SocialField string

const (
	SocialPlatform SocialField = "platform"
	SocialURL      SocialField = "url"
	SocialIcon     SocialField = "iconName"
)

// ProfilePatch carries a partial profile update; nil fields are left
// alone. Tagline and bio go through UpdateProfileLocalized.
type ProfilePatch struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// UpdateProfile shallow-merges the patch into the profile.
func UpdateProfile(d folio.SiteData, patch ProfilePatch) folio.SiteData {
	if patch.Name != nil {
		d.Profile.Name = *patch.Name
	}
	if patch.Location != nil {
		d.Profile.Location = *patch.Location
	}
	if patch.Avatar != nil {
		d.Profile.Avatar = *patch.Avatar
	}
	return d
}

// UpdateProfileLocalized sets one language variant of the tagline or
// bio. An unknown field is a no-op.
func UpdateProfileLocalized(d folio.SiteData, field ProfileTextField, lang folio.Language, value string) folio.SiteData {
	switch field {
	case FieldTagline:
		d.Profile.Tagline = d.Profile.Tagline.With(lang, value)
	case FieldBio:
		d.Profile.Bio = d.Profile.Bio.With(lang, value)
	}
	return d
}

// AddSocial appends a placeholder social link.
func AddSocial(d folio.SiteData) folio.SiteData {
	socials := make([]folio.SocialLink, 0, len(d.Profile.Socials)+1)
	socials = append(socials, d.Profile.Socials...)
	socials = append(socials, folio.SocialLink{
		Platform: "New Platform",
		URL:      "https://",
		IconName: folio.IconGlobe,
	})
	d.Profile.Socials = socials
	return d
}

// UpdateSocial sets one field of the link at index. Links are
// index-addressed: this is only safe within one synchronous edit
// session with no structural change in between. Out-of-range indices
// and unknown fields are a no-op.
func UpdateSocial(d folio.SiteData, index int, field SocialField, value string) folio.SiteData {
	if index < 0 || index >= len(d.Profile.Socials) {
		return d
	}

	socials := append([]folio.SocialLink(nil), d.Profile.Socials...)
	switch field {
	case SocialPlatform:
		socials[index].Platform = value
	case SocialURL:
		socials[index].URL = value
	case SocialIcon:
		socials[index].IconName = folio.Icon(value)
	default:
		return d
	}
	d.Profile.Socials = socials
	return d
}

// RemoveSocial drops the link at index; out-of-range is a no-op.
func RemoveSocial(d folio.SiteData, index int) folio.SiteData {
	if index < 0 || index >= len(d.Profile.Socials) {
		return d
	}

	socials := make([]folio.SocialLink, 0, len(d.Profile.Socials)-1)
	socials = append(socials, d.Profile.Socials[:index]...)
	socials = append(socials, d.Profile.Socials[index+1:]...)
	d.Profile.Socials = socials
	return d
}

// SetSkills replaces the skill lists wholesale.
func SetSkills(d folio.SiteData, skills folio.Skills) folio.SiteData {
	d.Skills = folio.Skills{
		Languages:      append([]folio.LocalizedString(nil), skills.Languages...),
		Tech:           append([]string(nil), skills.Tech...),
		Certifications: append([]folio.LocalizedString(nil), skills.Certifications...),
	}
	return d
}
