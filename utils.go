package folio

// ParseLanguage validates a language code. The second return is false
// for anything outside the closed set.
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case LangDE, LangFR, LangEN:
		return Language(s), true
	}
	return "", false
}

// LanguageOr returns the parsed language or the given fallback.
func LanguageOr(s string, fallback Language) Language {
	if lang, ok := ParseLanguage(s); ok {
		return lang
	}
	return fallback
}

// OrDefault maps unknown icon identifiers to the generic fallback.
func (i Icon) OrDefault() Icon {
	switch i {
	case IconInstagram, IconLinkedin, IconVideo, IconTwitter, IconFacebook,
		IconYoutube, IconGithub, IconMail, IconGlobe,
		IconMic, IconGamepad, IconPlane, IconBriefcase:
		return i
	}
	return IconBriefcase
}

// ParseFont validates a font name, falling back to FontInter for
// anything outside the closed set.
func ParseFont(s string) FontStyle {
	switch FontStyle(s) {
	case FontInter, FontPlayfair, FontGrotesk:
		return FontStyle(s)
	}
	return FontInter
}
