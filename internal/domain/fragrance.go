package domain

import (
	"strings"
)

// Season is the inferred or curated wearing season of a fragrance
type Season string

const (
	SeasonSpring  Season = "Spring"
	SeasonSummer  Season = "Summer"
	SeasonFall    Season = "Fall"
	SeasonWinter  Season = "Winter"
	SeasonAllYear Season = "All Year"
)

// Occasion is the setting a fragrance suits best
type Occasion string

const (
	OccasionDateNight Occasion = "Date Night"
	OccasionOffice    Occasion = "Office / Daytime"
	OccasionEvening   Occasion = "Evening / Special"
	OccasionEveryday  Occasion = "Everyday / Casual"
)

// Intensity approximates projection and sillage
type Intensity string

const (
	IntensityLight    Intensity = "Light"
	IntensityModerate Intensity = "Moderate"
	IntensityStrong   Intensity = "Strong"
)

// Rank maps the intensity onto Light < Moderate < Strong. Unknown values rank 0.
func (i Intensity) Rank() int {
	switch strings.ToLower(strings.TrimSpace(string(i))) {
	case "light":
		return 1
	case "moderate":
		return 2
	case "strong":
		return 3
	}
	return 0
}

// Longevity approximates how long a fragrance stays perceptible
type Longevity string

const (
	LongevityShort       Longevity = "Short"
	LongevityModerate    Longevity = "Moderate"
	LongevityLongLasting Longevity = "Long Lasting"
)

// Rank maps the longevity onto Short < Moderate < Long Lasting. Unknown values rank 0.
func (l Longevity) Rank() int {
	switch strings.ToLower(strings.TrimSpace(string(l))) {
	case "short":
		return 1
	case "moderate":
		return 2
	case "long lasting":
		return 3
	}
	return 0
}

// UnknownValue is substituted for absent presentation fields
const UnknownValue = "Unknown"

// MaxAccords is the number of main accords kept per fragrance
const MaxAccords = 5

// MaxNotes is the number of notes kept when notes are built from the pyramid
const MaxNotes = 5

// Fragrance is a fully normalized catalog entry. It is only produced by the
// catalog normalizer and is treated as read-only afterwards.
type Fragrance struct {
	ID            ItemID     `json:"id"`
	Slug          string     `json:"slug"`
	Name          string     `json:"name"`
	Brand         string     `json:"brand"`
	Type          string     `json:"type"` // concentration, e.g. "Eau de Parfum"
	Country       string     `json:"country"`
	ScentFamily   string     `json:"scentFamily"`
	GenderProfile string     `json:"genderProfile"`
	Notes         []string   `json:"notes"`
	Accords       []string   `json:"accords"` // most dominant first
	Season        []Season   `json:"season"`
	Occasion      []Occasion `json:"occasion"`
	Intensity     Intensity  `json:"intensity"`
	Longevity     Longevity  `json:"longevity"`
	Image         string     `json:"image"`
	PriceRange    string     `json:"priceRange"`
	Rating        float64    `json:"rating"`
	RatingCount   int        `json:"ratingCount"`
	Year          string     `json:"year"`
	Perfumer      string     `json:"perfumer"`
	Description   string     `json:"description"`
}

// GenderTokens splits the gender profile on whitespace, slash, comma and ampersand
func (f Fragrance) GenderTokens() []string {
	return strings.FieldsFunc(f.GenderProfile, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '/', ',', '&':
			return true
		}
		return false
	})
}

// RawRecord is a catalog record as it arrives from a CSV row or a JSON
// catalog file. Every field is optional; the normalizer is the only place
// that turns it into a Fragrance.
type RawRecord struct {
	ID            ItemID     `json:"id,omitempty"`
	Slug          string     `json:"slug,omitempty"`
	Name          string     `json:"name,omitempty"`
	Brand         string     `json:"brand,omitempty"`
	Type          string     `json:"type,omitempty"`
	Country       string     `json:"country,omitempty"`
	ScentFamily   string     `json:"scentFamily,omitempty"`
	GenderProfile string     `json:"genderProfile,omitempty"`
	Gender        string     `json:"gender,omitempty"`
	Notes         []string   `json:"notes,omitempty"`
	Top           string     `json:"top,omitempty"`
	Middle        string     `json:"middle,omitempty"`
	Base          string     `json:"base,omitempty"`
	Accords       []string   `json:"accords,omitempty"`
	MainAccord1   string     `json:"mainaccord1,omitempty"`
	MainAccord2   string     `json:"mainaccord2,omitempty"`
	MainAccord3   string     `json:"mainaccord3,omitempty"`
	MainAccord4   string     `json:"mainaccord4,omitempty"`
	MainAccord5   string     `json:"mainaccord5,omitempty"`
	Season        StringList `json:"season,omitempty"`
	Occasion      StringList `json:"occasion,omitempty"`
	Intensity     string     `json:"intensity,omitempty"`
	Longevity     string     `json:"longevity,omitempty"`
	Image         string     `json:"image,omitempty"`
	PriceRange    string     `json:"priceRange,omitempty"`
	Rating        FlexFloat  `json:"rating,omitempty"`
	RatingCount   FlexInt    `json:"ratingCount,omitempty"`
	Year          FlexString `json:"year,omitempty"`
	Perfumer      string     `json:"perfumer,omitempty"`
	Perfumer1     string     `json:"perfumer1,omitempty"`
	Perfumer2     string     `json:"perfumer2,omitempty"`
	Description   string     `json:"description,omitempty"`
}

// MainAccords returns the five positional accord columns in dominance order
func (r RawRecord) MainAccords() []string {
	return []string{r.MainAccord1, r.MainAccord2, r.MainAccord3, r.MainAccord4, r.MainAccord5}
}
