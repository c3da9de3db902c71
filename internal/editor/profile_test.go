package editor

import (
	"reflect"
	"testing"

	"github.com/joelraetz/folio"
)

func profileFixture() folio.SiteData {
	return folio.SiteData{
		Profile: folio.Profile{
			Name: "Owner",
			Socials: []folio.SocialLink{
				{Platform: "Instagram", URL: "https://instagram.com/x", IconName: folio.IconInstagram},
				{Platform: "LinkedIn", URL: "https://linkedin.com/in/x", IconName: folio.IconLinkedin},
			},
		},
	}
}

func TestAddSocialAppendsPlaceholder(t *testing.T) {
	d := profileFixture()
	next := AddSocial(d)

	if len(next.Profile.Socials) != 3 {
		t.Fatalf("expected 3 links, got %d", len(next.Profile.Socials))
	}
	added := next.Profile.Socials[2]
	if added.Platform != "New Platform" || added.URL != "https://" || added.IconName != folio.IconGlobe {
		t.Fatalf("unexpected placeholder: %+v", added)
	}
	if len(d.Profile.Socials) != 2 {
		t.Fatalf("input was mutated")
	}
}

func TestUpdateSocialByIndex(t *testing.T) {
	d := profileFixture()
	next := UpdateSocial(d, 1, SocialURL, "https://example.com")

	if next.Profile.Socials[1].URL != "https://example.com" {
		t.Fatalf("url not applied")
	}
	if next.Profile.Socials[0].URL != "https://instagram.com/x" {
		t.Fatalf("wrong link touched")
	}
	if d.Profile.Socials[1].URL != "https://linkedin.com/in/x" {
		t.Fatalf("input was mutated")
	}
}

func TestUpdateSocialOutOfRangeIsNoop(t *testing.T) {
	d := profileFixture()

	if next := UpdateSocial(d, 5, SocialURL, "x"); !reflect.DeepEqual(d, next) {
		t.Fatalf("out of range index must be a no-op")
	}
	if next := UpdateSocial(d, -1, SocialURL, "x"); !reflect.DeepEqual(d, next) {
		t.Fatalf("negative index must be a no-op")
	}
	if next := UpdateSocial(d, 0, SocialField("bogus"), "x"); !reflect.DeepEqual(d, next) {
		t.Fatalf("unknown field must be a no-op")
	}
}

func TestRemoveSocialShiftsIndices(t *testing.T) {
	d := profileFixture()
	next := RemoveSocial(d, 0)

	if len(next.Profile.Socials) != 1 {
		t.Fatalf("expected 1 link, got %d", len(next.Profile.Socials))
	}
	if next.Profile.Socials[0].Platform != "LinkedIn" {
		t.Fatalf("wrong link removed: %+v", next.Profile.Socials)
	}
}

func TestAddRemoveSocialRoundtrip(t *testing.T) {
	d := profileFixture()
	next := AddSocial(d)
	next = RemoveSocial(next, len(next.Profile.Socials)-1)

	if !reflect.DeepEqual(d, next) {
		t.Fatalf("add then remove must restore the list")
	}

	empty := folio.SiteData{Profile: folio.Profile{Socials: []folio.SocialLink{}}}
	next = RemoveSocial(AddSocial(empty), 0)
	if len(next.Profile.Socials) != 0 {
		t.Fatalf("expected empty list, got %+v", next.Profile.Socials)
	}
}

func TestUpdateProfileLocalized(t *testing.T) {
	d := profileFixture()
	next := UpdateProfileLocalized(d, FieldTagline, folio.LangDE, "Macher")

	if next.Profile.Tagline.DE != "Macher" {
		t.Fatalf("DE variant not set")
	}
	if next.Profile.Tagline.EN != "" || next.Profile.Tagline.FR != "" {
		t.Fatalf("other variants changed: %+v", next.Profile.Tagline)
	}
}

func TestSetSkillsReplacesWholesale(t *testing.T) {
	d := profileFixture()
	d.Skills = folio.Skills{Tech: []string{"old"}}

	next := SetSkills(d, folio.Skills{Tech: []string{"new1", "new2"}})

	if !reflect.DeepEqual(next.Skills.Tech, []string{"new1", "new2"}) {
		t.Fatalf("skills not replaced: %v", next.Skills.Tech)
	}
	if !reflect.DeepEqual(d.Skills.Tech, []string{"old"}) {
		t.Fatalf("input was mutated")
	}
}

func TestAddExperienceAppends(t *testing.T) {
	d := folio.SiteData{
		Experience: []folio.ExperienceItem{{ID: "e1"}},
	}
	next, created := AddExperience(d)

	if len(next.Experience) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(next.Experience))
	}
	if next.Experience[1].ID != created.ID {
		t.Fatalf("expected new entry at the end")
	}
	if created.IconName != folio.IconBriefcase {
		t.Fatalf("unexpected placeholder icon: %s", created.IconName)
	}
}

func TestUpdateExperiencePatch(t *testing.T) {
	d := folio.SiteData{
		Experience: []folio.ExperienceItem{{ID: "e1", Company: "Old"}},
	}
	company := "New"
	icon := folio.IconPlane
	next := UpdateExperience(d, "e1", ExperiencePatch{Company: &company, IconName: &icon})

	if next.Experience[0].Company != "New" || next.Experience[0].IconName != folio.IconPlane {
		t.Fatalf("patch not applied: %+v", next.Experience[0])
	}
	if d.Experience[0].Company != "Old" {
		t.Fatalf("input was mutated")
	}
}

func TestRemoveExperienceUnknownIDIsNoop(t *testing.T) {
	d := folio.SiteData{
		Experience: []folio.ExperienceItem{{ID: "e1"}},
	}
	next := RemoveExperience(d, "nope")

	if !reflect.DeepEqual(d, next) {
		t.Fatalf("unknown id must leave the model unchanged")
	}
}
