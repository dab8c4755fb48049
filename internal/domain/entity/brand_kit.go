package entity

// BrandKit is the AI-generated branding bundle stored on an artisan's profile.
type BrandKit struct {
	MissionStatement string         `firestore:"missionStatement" json:"missionStatement"`
	Tagline          string         `firestore:"tagline" json:"tagline"`
	ColorPalette     []PaletteColor `firestore:"colorPalette" json:"colorPalette"`
	FontPairing      FontPairing    `firestore:"fontPairing" json:"fontPairing"`
	LogoIdeas        []string       `firestore:"logoIdeas" json:"logoIdeas"`
}

// PaletteColor is one named color in the brand palette.
type PaletteColor struct {
	Name string `firestore:"name" json:"name"`
	Hex  string `firestore:"hex" json:"hex"`
}

// FontPairing names the headline and body fonts of the kit.
type FontPairing struct {
	Headline FontChoice `firestore:"headline" json:"headline"`
	Body     FontChoice `firestore:"body" json:"body"`
}

// FontChoice is a single font recommendation.
type FontChoice struct {
	Name   string `firestore:"name" json:"name"`
	Weight string `firestore:"weight" json:"weight"`
}
