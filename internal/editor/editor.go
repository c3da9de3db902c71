// Package editor implements the editing operations of the admin
// surface as pure functions: every operation takes a SiteData value
// and returns a new one, sharing untouched structure with the input.
// Operations never fail; unknown ids are a silent no-op and indices
// are clamped.
package editor

import (
	"github.com/joelraetz/folio"
)

// CaseTextField addresses one of a case's localized fields.
type CaseTextField string

const (
	FieldRole        CaseTextField = "role"
	FieldDescription CaseTextField = "description"
)

// DetailField addresses one of the plain-string fields of the detail
// block. Images are managed by the gallery operations instead.
type DetailField string

const (
	DetailTestimonial       DetailField = "testimonial"
	DetailTestimonialAuthor DetailField = "testimonialAuthor"
	DetailVideoURL          DetailField = "videoUrl"
	DetailAudioURL          DetailField = "audioUrl"
	DetailResultMetric      DetailField = "resultMetric"
)

// Direction moves a gallery image towards the front or the back.
type Direction string

const (
	MoveLeft  Direction = "left"
	MoveRight Direction = "right"
)

// CasePatch carries a partial case update; nil fields are left alone.
// Role and description go through UpdateCaseLocalized instead.
type CasePatch struct {
	Title  *string   `json:"title,omitempty"`
	Client *string   `json:"client,omitempty"`
	Image  *string   `json:"image,omitempty"`
	Tags   *[]string `json:"tags,omitempty"`
}

// mapCase replaces the case with the given id by fn's result, copying
// the case list. Unknown ids return d unchanged.
func mapCase(d folio.SiteData, id string, fn func(folio.BusinessCase) folio.BusinessCase) folio.SiteData {
	found := false
	for i := range d.Cases {
		if d.Cases[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		return d
	}

	cases := make([]folio.BusinessCase, len(d.Cases))
	for i, c := range d.Cases {
		if c.ID == id {
			cases[i] = fn(c)
		} else {
			cases[i] = c
		}
	}
	d.Cases = cases
	return d
}

// AddCase prepends a fresh placeholder case and returns it alongside
// the new model. The id is unique for the lifetime of the process.
func AddCase(d folio.SiteData) (folio.SiteData, folio.BusinessCase) {
	next := folio.BusinessCase{
		ID:          NewCaseID(),
		Title:       "New Project",
		Client:      "Client Name",
		Image:       "https://picsum.photos/600/400",
		Role:        folio.LocalizedString{DE: "Rolle", FR: "Rôle", EN: "Role"},
		Description: folio.LocalizedString{DE: "Beschreibung", FR: "Description", EN: "Description"},
		Tags:        []string{"Tag1"},
		Details:     &folio.CaseDetail{Images: []string{}},
	}

	cases := make([]folio.BusinessCase, 0, len(d.Cases)+1)
	cases = append(cases, next)
	cases = append(cases, d.Cases...)
	d.Cases = cases
	return d, next
}

// UpdateCase shallow-merges the patch into the case with the given id.
func UpdateCase(d folio.SiteData, id string, patch CasePatch) folio.SiteData {
	return mapCase(d, id, func(c folio.BusinessCase) folio.BusinessCase {
		if patch.Title != nil {
			c.Title = *patch.Title
		}
		if patch.Client != nil {
			c.Client = *patch.Client
		}
		if patch.Image != nil {
			c.Image = *patch.Image
		}
		if patch.Tags != nil {
			c.Tags = append([]string(nil), (*patch.Tags)...)
		}
		return c
	})
}

// RemoveCase drops the case with the given id from the list.
func RemoveCase(d folio.SiteData, id string) folio.SiteData {
	idx := -1
	for i := range d.Cases {
		if d.Cases[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return d
	}

	cases := make([]folio.BusinessCase, 0, len(d.Cases)-1)
	cases = append(cases, d.Cases[:idx]...)
	cases = append(cases, d.Cases[idx+1:]...)
	d.Cases = cases
	return d
}

// UpdateCaseDetail sets one plain field of the detail block, creating
// the block when absent. An unknown field is a no-op.
func UpdateCaseDetail(d folio.SiteData, id string, field DetailField, value string) folio.SiteData {
	switch field {
	case DetailTestimonial, DetailTestimonialAuthor, DetailVideoURL, DetailAudioURL, DetailResultMetric:
	default:
		return d
	}

	return mapCase(d, id, func(c folio.BusinessCase) folio.BusinessCase {
		detail := c.Details.Clone()
		if detail == nil {
			detail = &folio.CaseDetail{}
		}
		switch field {
		case DetailTestimonial:
			detail.Testimonial = value
		case DetailTestimonialAuthor:
			detail.TestimonialAuthor = value
		case DetailVideoURL:
			detail.VideoURL = value
		case DetailAudioURL:
			detail.AudioURL = value
		case DetailResultMetric:
			detail.ResultMetric = value
		}
		c.Details = detail
		return c
	})
}

// UpdateCaseLocalized sets one language variant of a case's role or
// description. An unknown field is a no-op.
func UpdateCaseLocalized(d folio.SiteData, id string, field CaseTextField, lang folio.Language, value string) folio.SiteData {
	return mapCase(d, id, func(c folio.BusinessCase) folio.BusinessCase {
		switch field {
		case FieldRole:
			c.Role = c.Role.With(lang, value)
		case FieldDescription:
			c.Description = c.Description.With(lang, value)
		}
		return c
	})
}

// MoveImage swaps the gallery entry at index with its neighbor.
// Moving the first entry left or the last entry right is a no-op.
func MoveImage(d folio.SiteData, caseID string, index int, dir Direction) folio.SiteData {
	return mapCase(d, caseID, func(c folio.BusinessCase) folio.BusinessCase {
		if c.Details == nil || len(c.Details.Images) == 0 {
			return c
		}

		images := c.Details.Images
		target := -1
		switch dir {
		case MoveLeft:
			if index > 0 && index < len(images) {
				target = index - 1
			}
		case MoveRight:
			if index >= 0 && index < len(images)-1 {
				target = index + 1
			}
		}
		if target < 0 {
			return c
		}

		detail := c.Details.Clone()
		detail.Images[index], detail.Images[target] = detail.Images[target], detail.Images[index]
		c.Details = detail
		return c
	})
}

// SetPrimaryImage copies url into the case's primary image slot. The
// url is taken as-is; membership in the gallery is not checked.
func SetPrimaryImage(d folio.SiteData, caseID string, url string) folio.SiteData {
	return mapCase(d, caseID, func(c folio.BusinessCase) folio.BusinessCase {
		c.Image = url
		return c
	})
}

// RemoveImage drops the gallery entry at index. The primary image is
// left untouched even when it pointed at the removed entry.
func RemoveImage(d folio.SiteData, caseID string, index int) folio.SiteData {
	return mapCase(d, caseID, func(c folio.BusinessCase) folio.BusinessCase {
		if c.Details == nil || index < 0 || index >= len(c.Details.Images) {
			return c
		}

		detail := c.Details.Clone()
		detail.Images = append(detail.Images[:index], detail.Images[index+1:]...)
		c.Details = detail
		return c
	})
}

// AppendImages adds urls to the end of the gallery, preserving the
// existing order and the relative order of the new entries.
func AppendImages(d folio.SiteData, caseID string, urls []string) folio.SiteData {
	if len(urls) == 0 {
		return d
	}
	return mapCase(d, caseID, func(c folio.BusinessCase) folio.BusinessCase {
		detail := c.Details.Clone()
		if detail == nil {
			detail = &folio.CaseDetail{}
		}
		detail.Images = append(detail.Images, urls...)
		c.Details = detail
		return c
	})
}
