package folio

import (
	"time"
)

// Language is the closed set of languages the site content carries.
type Language string

const (
	LangDE Language = "DE"
	LangFR Language = "FR"
	LangEN Language = "EN"
)

// Languages lists every supported language.
var Languages = []Language{LangDE, LangFR, LangEN}

// Next returns the language the UI cycles to: DE -> EN -> FR -> DE.
func (l Language) Next() Language {
	switch l {
	case LangDE:
		return LangEN
	case LangEN:
		return LangFR
	default:
		return LangDE
	}
}

// LocalizedString carries one variant per supported language. All three
// variants are always present; an empty string is a deliberate value,
// not a missing translation.
type LocalizedString struct {
	DE string `json:"DE"`
	FR string `json:"FR"`
	EN string `json:"EN"`
}

// Get returns the variant for lang, falling back to English for an
// unknown language code.
func (s LocalizedString) Get(lang Language) string {
	switch lang {
	case LangDE:
		return s.DE
	case LangFR:
		return s.FR
	default:
		return s.EN
	}
}

// With returns a copy with only the variant for lang replaced. An
// unknown lang returns the value unchanged.
func (s LocalizedString) With(lang Language, value string) LocalizedString {
	switch lang {
	case LangDE:
		s.DE = value
	case LangFR:
		s.FR = value
	case LangEN:
		s.EN = value
	}
	return s
}

// Uniform builds a LocalizedString carrying the same value in all
// three languages.
func Uniform(value string) LocalizedString {
	return LocalizedString{DE: value, FR: value, EN: value}
}

// FontStyle is the closed set of fonts the theme can select.
type FontStyle string

const (
	FontInter    FontStyle = "Inter"
	FontPlayfair FontStyle = "Playfair Display"
	FontGrotesk  FontStyle = "Space Grotesk"
)

// Fonts lists the selectable fonts in display order.
var Fonts = []FontStyle{FontInter, FontPlayfair, FontGrotesk}

// Icon is an identifier from the closed icon set shared between the
// editing surface and the renderer. Unrecognized identifiers render as
// IconBriefcase rather than failing.
type Icon string

const (
	IconInstagram Icon = "Instagram"
	IconLinkedin  Icon = "Linkedin"
	IconVideo     Icon = "Video"
	IconTwitter   Icon = "Twitter"
	IconFacebook  Icon = "Facebook"
	IconYoutube   Icon = "Youtube"
	IconGithub    Icon = "Github"
	IconMail      Icon = "Mail"
	IconGlobe     Icon = "Globe"
	IconMic       Icon = "Mic"
	IconGamepad   Icon = "Gamepad2"
	IconPlane     Icon = "Plane"
	IconBriefcase Icon = "Briefcase"
)

// SocialIcons are the options offered for social links.
var SocialIcons = []Icon{
	IconInstagram, IconLinkedin, IconVideo, IconTwitter, IconFacebook,
	IconYoutube, IconGithub, IconMail, IconGlobe,
}

// TimelineIcons are the options offered for experience entries.
var TimelineIcons = []Icon{IconMic, IconGamepad, IconPlane, IconBriefcase}

// ThemeConfig holds presentation preferences. It is edited in the same
// staging session as SiteData and committed together with it.
type ThemeConfig struct {
	PrimaryColor      string    `json:"primaryColor"`
	BackgroundColor   string    `json:"backgroundColor"`
	FontPrimary       FontStyle `json:"fontPrimary"`
	IsDarkMode        bool      `json:"isDarkMode"`
	CompanyNameTarget string    `json:"companyNameTarget,omitempty"`
}

// SocialLink is one entry of the profile's ordered social list. The
// list is index-addressed; links carry no identity of their own.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	IconName Icon   `json:"iconName"`
}

// CaseDetail is the optional evidence block of a BusinessCase. Every
// field tolerates absence.
type CaseDetail struct {
	Testimonial       string   `json:"testimonial,omitempty"`
	TestimonialAuthor string   `json:"testimonialAuthor,omitempty"`
	Images            []string `json:"images,omitempty"`
	VideoURL          string   `json:"videoUrl,omitempty"`
	AudioURL          string   `json:"audioUrl,omitempty"`
	ResultMetric      string   `json:"resultMetric,omitempty"`
}

// BusinessCase is one project entry. Image is the primary thumbnail
// URL; it usually points at a member of Details.Images but the model
// never enforces that, and removing the referenced gallery entry does
// not retract it.
type BusinessCase struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Client      string          `json:"client"`
	Role        LocalizedString `json:"role"`
	Description LocalizedString `json:"description"`
	Image       string          `json:"image"`
	Tags        []string        `json:"tags"`
	Details     *CaseDetail     `json:"details,omitempty"`
}

// ExperienceItem is one entry of the chronological timeline. Order is
// meaningful and never re-sorted.
type ExperienceItem struct {
	ID          string          `json:"id"`
	Period      string          `json:"period"`
	Company     string          `json:"company"`
	Role        LocalizedString `json:"role"`
	Description LocalizedString `json:"description"`
	IconName    Icon            `json:"iconName,omitempty"`
}

// Skills groups the skill lists. Tech entries are not localized.
type Skills struct {
	Languages      []LocalizedString `json:"languages"`
	Tech           []string          `json:"tech"`
	Certifications []LocalizedString `json:"certifications"`
}

// Profile holds the owner's identity block.
type Profile struct {
	Name     string          `json:"name"`
	Tagline  LocalizedString `json:"tagline"`
	Bio      LocalizedString `json:"bio"`
	Avatar   string          `json:"avatar"`
	Location string          `json:"location"`
	Socials  []SocialLink    `json:"socials"`
}

// SiteData is the aggregate root of the content model. It is the unit
// of load and save: editing happens on a full copy and commit replaces
// the whole root atomically.
type SiteData struct {
	Profile    Profile          `json:"profile"`
	Cases      []BusinessCase   `json:"cases"`
	Experience []ExperienceItem `json:"experience"`
	Skills     Skills           `json:"skills"`
}

// Event is pushed to connected renderers when staged state is
// committed to the live site.
type Event struct {
	Type  string      `json:"type"`
	Data  SiteData    `json:"data"`
	Theme ThemeConfig `json:"theme"`
	At    time.Time   `json:"at"`
}

const EventCommit = "commit"

// Clone returns a deep copy of the detail block.
func (d *CaseDetail) Clone() *CaseDetail {
	if d == nil {
		return nil
	}
	out := *d
	out.Images = append([]string(nil), d.Images...)
	return &out
}

// Clone returns a deep copy of the case.
func (c BusinessCase) Clone() BusinessCase {
	c.Tags = append([]string(nil), c.Tags...)
	c.Details = c.Details.Clone()
	return c
}

// Clone returns a deep copy of the aggregate, safe to edit without
// affecting the receiver.
func (d SiteData) Clone() SiteData {
	out := d

	out.Profile.Socials = append([]SocialLink(nil), d.Profile.Socials...)

	out.Cases = make([]BusinessCase, len(d.Cases))
	for i, c := range d.Cases {
		out.Cases[i] = c.Clone()
	}

	out.Experience = append([]ExperienceItem(nil), d.Experience...)

	out.Skills.Languages = append([]LocalizedString(nil), d.Skills.Languages...)
	out.Skills.Tech = append([]string(nil), d.Skills.Tech...)
	out.Skills.Certifications = append([]LocalizedString(nil), d.Skills.Certifications...)

	return out
}

// FindCase returns the case with the given id, or nil.
func (d SiteData) FindCase(id string) *BusinessCase {
	for i := range d.Cases {
		if d.Cases[i].ID == id {
			return &d.Cases[i]
		}
	}
	return nil
}

// FindExperience returns the experience item with the given id, or nil.
func (d SiteData) FindExperience(id string) *ExperienceItem {
	for i := range d.Experience {
		if d.Experience[i].ID == id {
			return &d.Experience[i]
		}
	}
	return nil
}
