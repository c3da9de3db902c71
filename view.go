package folio

// The *View types are the per-language handoff to the renderer: the
// same tree as SiteData with every LocalizedString resolved to a plain
// string. Detail blocks pass through untouched since none of their
// fields are localized.

type ProfileView struct {
	Name     string       `json:"name"`
	Tagline  string       `json:"tagline"`
	Bio      string       `json:"bio"`
	Avatar   string       `json:"avatar"`
	Location string       `json:"location"`
	Socials  []SocialLink `json:"socials"`
}

type CaseView struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Client      string      `json:"client"`
	Role        string      `json:"role"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Tags        []string    `json:"tags"`
	Details     *CaseDetail `json:"details,omitempty"`
}

type ExperienceView struct {
	ID          string `json:"id"`
	Period      string `json:"period"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Description string `json:"description"`
	IconName    Icon   `json:"iconName"`
}

type SkillsView struct {
	Languages      []string `json:"languages"`
	Tech           []string `json:"tech"`
	Certifications []string `json:"certifications"`
}

type SiteView struct {
	Lang       Language         `json:"lang"`
	Profile    ProfileView      `json:"profile"`
	Cases      []CaseView       `json:"cases"`
	Experience []ExperienceView `json:"experience"`
	Skills     SkillsView       `json:"skills"`
}

// Resolve flattens the aggregate for a single language. Experience
// icons are normalized through the fallback here so the renderer never
// sees an identifier outside the closed set.
func (d SiteData) Resolve(lang Language) SiteView {
	view := SiteView{
		Lang: lang,
		Profile: ProfileView{
			Name:     d.Profile.Name,
			Tagline:  d.Profile.Tagline.Get(lang),
			Bio:      d.Profile.Bio.Get(lang),
			Avatar:   d.Profile.Avatar,
			Location: d.Profile.Location,
			Socials:  append([]SocialLink(nil), d.Profile.Socials...),
		},
	}

	view.Cases = make([]CaseView, len(d.Cases))
	for i, c := range d.Cases {
		view.Cases[i] = CaseView{
			ID:          c.ID,
			Title:       c.Title,
			Client:      c.Client,
			Role:        c.Role.Get(lang),
			Description: c.Description.Get(lang),
			Image:       c.Image,
			Tags:        append([]string(nil), c.Tags...),
			Details:     c.Details.Clone(),
		}
	}

	view.Experience = make([]ExperienceView, len(d.Experience))
	for i, e := range d.Experience {
		view.Experience[i] = ExperienceView{
			ID:          e.ID,
			Period:      e.Period,
			Company:     e.Company,
			Role:        e.Role.Get(lang),
			Description: e.Description.Get(lang),
			IconName:    e.IconName.OrDefault(),
		}
	}

	view.Skills.Languages = make([]string, len(d.Skills.Languages))
	for i, s := range d.Skills.Languages {
		view.Skills.Languages[i] = s.Get(lang)
	}
	view.Skills.Tech = append([]string(nil), d.Skills.Tech...)
	view.Skills.Certifications = make([]string, len(d.Skills.Certifications))
	for i, s := range d.Skills.Certifications {
		view.Skills.Certifications[i] = s.Get(lang)
	}

	return view
}
