package editor

import (
	"github.com/joelraetz/folio"
)

// ExperiencePatch carries a partial timeline-entry update; nil fields
// are left alone.
type ExperiencePatch struct {
	Period   *string     `json:"period,omitempty"`
	Company  *string     `json:"company,omitempty"`
	IconName *folio.Icon `json:"iconName,omitempty"`
}

func mapExperience(d folio.SiteData, id string, fn func(folio.ExperienceItem) folio.ExperienceItem) folio.SiteData {
	found := false
	for i := range d.Experience {
		if d.Experience[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		return d
	}

	items := make([]folio.ExperienceItem, len(d.Experience))
	for i, item := range d.Experience {
		if item.ID == id {
			items[i] = fn(item)
		} else {
			items[i] = item
		}
	}
	d.Experience = items
	return d
}

// AddExperience appends a fresh placeholder timeline entry and returns
// it alongside the new model. Entries are appended, not prepended: the
// timeline keeps whatever order the owner arranges.
func AddExperience(d folio.SiteData) (folio.SiteData, folio.ExperienceItem) {
	next := folio.ExperienceItem{
		ID:          NewExperienceID(),
		Period:      "Period",
		Company:     "Company",
		Role:        folio.LocalizedString{DE: "Rolle", FR: "Rôle", EN: "Role"},
		Description: folio.LocalizedString{DE: "Beschreibung", FR: "Description", EN: "Description"},
		IconName:    folio.IconBriefcase,
	}

	items := make([]folio.ExperienceItem, 0, len(d.Experience)+1)
	items = append(items, d.Experience...)
	items = append(items, next)
	d.Experience = items
	return d, next
}

// UpdateExperience shallow-merges the patch into the entry with the
// given id.
func UpdateExperience(d folio.SiteData, id string, patch ExperiencePatch) folio.SiteData {
	return mapExperience(d, id, func(item folio.ExperienceItem) folio.ExperienceItem {
		if patch.Period != nil {
			item.Period = *patch.Period
		}
		if patch.Company != nil {
			item.Company = *patch.Company
		}
		if patch.IconName != nil {
			item.IconName = *patch.IconName
		}
		return item
	})
}

// RemoveExperience drops the entry with the given id.
func RemoveExperience(d folio.SiteData, id string) folio.SiteData {
	idx := -1
	for i := range d.Experience {
		if d.Experience[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return d
	}

	items := make([]folio.ExperienceItem, 0, len(d.Experience)-1)
	items = append(items, d.Experience[:idx]...)
	items = append(items, d.Experience[idx+1:]...)
	d.Experience = items
	return d
}

// UpdateExperienceLocalized sets one language variant of an entry's
// role or description.
func UpdateExperienceLocalized(d folio.SiteData, id string, field CaseTextField, lang folio.Language, value string) folio.SiteData {
	return mapExperience(d, id, func(item folio.ExperienceItem) folio.ExperienceItem {
		switch field {
		case FieldRole:
			item.Role = item.Role.With(lang, value)
		case FieldDescription:
			item.Description = item.Description.With(lang, value)
		}
		return item
	})
}
