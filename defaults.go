package folio

// DefaultTheme is the presentation configuration the site starts with.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		PrimaryColor:    "#3b82f6",
		BackgroundColor: "#ffffff",
		FontPrimary:     FontInter,
		IsDarkMode:      false,
	}
}

// ThemeColors is the preset palette offered by the editing surface.
// Any other color value is still accepted.
var ThemeColors = []string{
	"#3b82f6", "#ef4444", "#10b981", "#f59e0b", "#8b5cf6", "#ec4899", "#000000",
}

// SeedData is the built-in dataset the live site starts from. There is
// no external load step; editing sessions replace it wholesale.
func SeedData() SiteData {
	return SiteData{
		Profile: Profile{
			Name: "Joel Rätz",
			Tagline: LocalizedString{
				DE: "Creator x Producer x Strategist",
				FR: "Créateur x Producteur x Stratège",
				EN: "Creator x Producer x Strategist",
			},
			Bio: LocalizedString{
				DE: "Mediamatiker EFZ (PostFinance) & Creator. Ich verbinde Creator-Speed mit Corporate-Qualität. Erwähnt im Digital Commerce Blog der Schweizerischen Post (13.05.2022) für Social Commerce. Hybrid aus Produktion, Storytelling und Strategie.",
				FR: "Médiamaticien CFC (PostFinance) & Créateur. J'allie la rapidité d'un créateur à la qualité corporate. Mentionné dans le blog Digital Commerce de la Poste Suisse (13.05.2022). Hybride de production et stratégie.",
				EN: "Mediamatiker EFZ (PostFinance) & Creator. I combine creator speed with corporate quality. Featured in the Swiss Post Digital Commerce Blog (13.05.2022) for Social Commerce. A hybrid of production, storytelling, and strategy.",
			},
			Avatar:   "https://picsum.photos/400/400?grayscale",
			Location: "Fribourg / Bern, Switzerland",
			Socials: []SocialLink{
				{Platform: "Instagram", URL: "https://instagram.com/widrluege_", IconName: IconInstagram},
				{Platform: "TikTok", URL: "https://tiktok.com/@widrluege", IconName: IconVideo},
				{Platform: "LinkedIn", URL: "#", IconName: IconLinkedin},
			},
		},
		Cases: []BusinessCase{
			{
				ID:     "c1",
				Title:  "Social Commerce @NIKIN",
				Client: "NIKIN / Swiss Post Feature",
				Role: LocalizedString{
					DE: "Creator & Producer",
					FR: "Créateur & Producteur",
					EN: "Creator & Producer",
				},
				Description: LocalizedString{
					DE: "Produktion von TikTok-First Content für NIKIN. Von der Schweizerischen Post (Digital Commerce Blog, 13.05.2022) als Best Practice für Social Commerce und authentisches Storytelling hervorgehoben.",
					FR: "Production de contenu TikTok-First pour NIKIN. Mis en avant par la Poste Suisse (Blog Digital Commerce, 13.05.2022) comme exemple de réussite en commerce social.",
					EN: "Production of TikTok-First content for NIKIN. Highlighted by Swiss Post (Digital Commerce Blog, 13.05.2022) as a best practice for social commerce and authentic storytelling.",
				},
				Image: "https://picsum.photos/600/400?random=1",
				Tags:  []string{"Social Commerce", "TikTok", "Brand Storytelling"},
				Details: &CaseDetail{
					ResultMetric:      "Best Practice",
					Testimonial:       "Erwähnt im Artikel: 'Score! Social Commerce und Nachhaltigkeit' (digital-commerce.post.ch)",
					TestimonialAuthor: "Schweizerische Post, Digital Commerce Blog",
				},
			},
			{
				ID:     "c3",
				Title:  "RadioFr. Matinale",
				Client: "RadioFr.",
				Role: LocalizedString{
					DE: "Host Morgenshow",
					FR: "Animateur Matinale",
					EN: "Morning Show Host",
				},
				Description: LocalizedString{
					DE: "Host der Primetime-Morgenshow. Presseerwähnung in La Liberté (25.01.2023) zum neuen Team. Entwicklung von On-Air Inhalten und begleitenden Video-Kampagnen (YouTube).",
					FR: "Animateur de la matinale. Mention presse dans La Liberté (25.01.2023). Développement de contenus à l'antenne et campagnes vidéo (YouTube).",
					EN: "Host of the primetime Morning Show. Press mention in La Liberté (25.01.2023) regarding the new team. Development of on-air content and video campaigns.",
				},
				Image: "https://picsum.photos/600/400?random=3",
				Tags:  []string{"Broadcast", "Live Host", "Press Feature"},
				Details: &CaseDetail{
					ResultMetric:      "Primetime Host",
					Testimonial:       "Das Morgenshow-Team wurde von La Liberté (25.01.2023) und in Sender-Kampagnen porträtiert.",
					TestimonialAuthor: "La Liberté / RadioFr.",
				},
			},
			{
				ID:     "c2",
				Title:  "SplashMC Network",
				Client: "Self-Founded",
				Role: LocalizedString{
					DE: "Founder & Project Lead",
					FR: "Fondateur & Chef de projet",
					EN: "Founder & Project Lead",
				},
				Description: LocalizedString{
					DE: "Aufbau eines Minecraft Minigames-Netzwerks während der Pandemie. Community Management und technische Administration.",
					FR: "Création d'un réseau de mini-jeux Minecraft pendant la pandémie. Gestion de communauté et administration technique.",
					EN: "Building a Minecraft minigames network during the pandemic. Community management and technical administration.",
				},
				Image: "https://picsum.photos/600/400?random=2",
				Tags:  []string{"Entrepreneurship", "Gaming", "Management"},
			},
		},
		Experience: []ExperienceItem{
			{
				ID:      "e1",
				Period:  "Present",
				Company: "RadioFr. Freiburg",
				Role: LocalizedString{
					DE: "Radio Host & Redakteur",
					FR: "Animateur Radio & Rédacteur",
					EN: "Radio Host & Editor",
				},
				Description: LocalizedString{
					DE: "On-Air & On-Platform: Host der Morgenshow (belegt via La Liberté 25.01.2023) und Produktion von Video-Content für Social Media Kanäle.",
					FR: "On-Air & On-Platform : Animateur de la matinale (mention La Liberté 25.01.2023) et production de contenu vidéo.",
					EN: "On-Air & On-Platform: Morning Show Host (referenced in La Liberté 25.01.2023) and video content production.",
				},
				IconName: IconMic,
			},
			{
				ID:      "e_edu",
				Period:  "Foundation",
				Company: "PostFinance",
				Role: LocalizedString{
					DE: "Mediamatiker EFZ",
					FR: "Médiamaticien CFC",
					EN: "Mediamatiker EFZ",
				},
				Description: LocalizedString{
					DE: "Solides Fundament in Corporate Communications, Video und Design. Schnittstelle zwischen Technik und Marketing. Porträtiert auf Whatchado.",
					FR: "Solides bases en communication d'entreprise, vidéo et design. Interface entre technique et marketing. Portrait sur Whatchado.",
					EN: "Solid foundation in corporate communications, video, and design. Intersection of tech and marketing. Featured on Whatchado.",
				},
				IconName: IconBriefcase,
			},
			{
				ID:      "e3",
				Period:  "2019 - 2020",
				Company: "Los Angeles",
				Role: LocalizedString{
					DE: "Education & Language",
					FR: "Éducation & Langue",
					EN: "Education & Language",
				},
				Description: LocalizedString{
					DE: "Ein Jahr in den USA zur Perfektionierung der Englischkenntnisse (C2 Proficiency). Kultureller Austausch und Content Creation Mindset.",
					FR: "Une année aux USA pour perfectionner l'anglais (C2 Proficiency). Échange culturel et mindset de création de contenu.",
					EN: "One year in the USA to perfect English skills (C2 Proficiency). Cultural exchange and content creation mindset.",
				},
				IconName: IconPlane,
			},
		},
		Skills: Skills{
			Languages: []LocalizedString{
				{DE: "Deutsch (Muttersprache)", FR: "Allemand (Langue maternelle)", EN: "German (Native)"},
				{DE: "Französisch (Fliessend)", FR: "Français (Courant)", EN: "French (Fluent)"},
				{DE: "Englisch (C2 Proficiency)", FR: "Anglais (C2 Proficiency)", EN: "English (C2 Proficiency)"},
			},
			Tech: []string{
				"Adobe Creative Cloud", "Social Media Strategy", "Audio/Video Production",
				"CMS & Web Basics", "Community Management",
			},
			Certifications: []LocalizedString{
				{DE: "Mediamatiker EFZ (PostFinance)", FR: "Médiamaticien CFC (PostFinance)", EN: "Mediamatiker EFZ (PostFinance)"},
				{DE: "EC English C2 Proficiency", FR: "EC English C2 Proficiency", EN: "EC English C2 Proficiency"},
			},
		},
	}
}

// Translations groups the fixed UI strings the renderer needs. They
// are served with the site payload and are not editable.
type Translations struct {
	Nav      map[string]LocalizedString `json:"nav"`
	Headings map[string]LocalizedString `json:"headings"`
	Actions  map[string]LocalizedString `json:"actions"`
}

// UITranslations is the navigation/heading/action string table.
var UITranslations = Translations{
	Nav: map[string]LocalizedString{
		"home":    {DE: "Start", FR: "Accueil", EN: "Home"},
		"work":    {DE: "Projekte", FR: "Projets", EN: "Work"},
		"cv":      {DE: "Werdegang", FR: "Parcours", EN: "CV"},
		"contact": {DE: "Kontakt", FR: "Contact", EN: "Contact"},
	},
	Headings: map[string]LocalizedString{
		"featuredCases": {DE: "Business Cases & Erwähnungen", FR: "Business Cases & Mentions", EN: "Business Cases & Mentions"},
		"experience":    {DE: "Mein Werdegang", FR: "Mon Parcours", EN: "My Journey"},
		"skills":        {DE: "Kompetenzen", FR: "Compétences", EN: "Skills"},
		"personalize":   {DE: "Für Sie personalisiert", FR: "Personnalisé pour vous", EN: "Personalized for you"},
	},
	Actions: map[string]LocalizedString{
		"viewDetails": {DE: "Details & Belege", FR: "Détails & Preuves", EN: "Details & Proof"},
		"close":       {DE: "Schließen", FR: "Fermer", EN: "Close"},
		"contactMe":   {DE: "Kontaktieren Sie mich", FR: "Contactez-moi", EN: "Contact Me"},
	},
}
