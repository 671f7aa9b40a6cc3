package usecase

import (
	"strconv"

	"github.com/scentlens/backend/internal/domain"
	"github.com/scentlens/backend/internal/textutil"
)

type fixture struct {
	name, brand, family, gender string
	notes, accords              []string
	seasons                     []domain.Season
	occasions                   []domain.Occasion
	intensity                   domain.Intensity
	longevity                   domain.Longevity
	rating                      float64
	votes                       int
}

var (
	spring = domain.SeasonSpring
	summer = domain.SeasonSummer
	fall   = domain.SeasonFall
	winter = domain.SeasonWinter

	dateNight = domain.OccasionDateNight
	office    = domain.OccasionOffice
	evening   = domain.OccasionEvening
	everyday  = domain.OccasionEveryday

	light    = domain.IntensityLight
	moderate = domain.IntensityModerate
	strong   = domain.IntensityStrong

	short       = domain.LongevityShort
	medium      = domain.LongevityModerate
	longLasting = domain.LongevityLongLasting
)

func strs(v ...string) []string                  { return v }
func seasons(v ...domain.Season) []domain.Season { return v }
func occasions(v ...domain.Occasion) []domain.Occasion {
	return v
}

// referenceFixtures is a curated 25 item catalog in display order
var referenceFixtures = []fixture{
	{"Bleu de Chanel", "Chanel", "Woody", "Men", strs("grapefruit", "incense", "ginger", "sandalwood", "cedar"), strs("citrus", "woody", "aromatic"), seasons(spring, fall), occasions(office, evening), moderate, longLasting, 4.3, 18000},
	{"Acqua di Gio", "Giorgio Armani", "Aquatic", "Men", strs("bergamot", "marine notes", "rosemary", "patchouli", "white musk"), strs("aquatic", "citrus", "fresh"), seasons(summer, spring), occasions(office, everyday), light, medium, 4.1, 25000},
	{"Light Blue", "Dolce & Gabbana", "Citrus", "Women", strs("sicilian lemon", "apple", "bamboo", "jasmine", "cedar"), strs("citrus", "fresh", "woody"), seasons(summer), occasions(everyday), light, short, 3.9, 15000},
	{"Black Opium", "Yves Saint Laurent", "Gourmand", "Women", strs("coffee", "vanilla", "pink pepper", "white flowers", "patchouli"), strs("sweet", "vanilla", "coffee"), seasons(fall, winter), occasions(dateNight), strong, longLasting, 4.0, 20000},
	{"Coco Mademoiselle", "Chanel", "Chypre", "Women", strs("orange", "rose", "jasmine", "patchouli", "vetiver"), strs("citrus", "rose", "patchouli"), seasons(spring, fall), occasions(office, dateNight), moderate, longLasting, 4.2, 22000},
	{"Sauvage", "Dior", "Aromatic", "Men", strs("bergamot", "pepper", "ambroxan", "lavender", "elemi"), strs("fresh spicy", "amber", "citrus"), seasons(summer, spring, fall), occasions(everyday, dateNight), strong, longLasting, 4.0, 30000},
	{"Aventus", "Creed", "Fruity", "Men", strs("pineapple", "birch", "blackcurrant", "oakmoss", "musk"), strs("fruity", "leather", "woody"), seasons(spring, summer), occasions(evening), strong, longLasting, 4.4, 17000},
	{"Baccarat Rouge 540", "Maison Francis Kurkdjian", "Amber", "Unisex", strs("saffron", "jasmine", "amberwood", "ambergris", "fir resin"), strs("amber", "woody", "warm spicy"), seasons(fall, winter), occasions(evening, dateNight), strong, longLasting, 4.2, 16000},
	{"La Vie Est Belle", "Lancôme", "Gourmand", "Women", strs("iris", "praline", "vanilla", "patchouli", "pear"), strs("sweet", "vanilla", "powdery"), seasons(fall, winter), occasions(dateNight), strong, longLasting, 3.9, 19000},
	{"Chance Eau Tendre", "Chanel", "Floral", "Women", strs("grapefruit", "quince", "jasmine", "white musk", "iris"), strs("floral", "fruity", "fresh"), seasons(spring, summer), occasions(everyday), light, medium, 4.1, 12000},
	{"Terre d'Hermès", "Hermès", "Woody", "Men", strs("orange", "grapefruit", "pepper", "flint", "vetiver"), strs("citrus", "woody", "earthy"), seasons(spring, fall), occasions(office), moderate, longLasting, 4.3, 14000},
	{"Tobacco Vanille", "Tom Ford", "Oriental", "Unisex", strs("tobacco leaf", "spices", "vanilla", "tonka bean", "cacao"), strs("tobacco", "vanilla", "sweet"), seasons(winter), occasions(evening), strong, longLasting, 4.3, 13000},
	{"Wood Sage & Sea Salt", "Jo Malone", "Aromatic", "Unisex", strs("ambrette", "sea salt", "sage", "grapefruit"), strs("aromatic", "fresh", "salty"), seasons(spring, summer), occasions(everyday), light, short, 3.8, 6000},
	{"Shalimar", "Guerlain", "Oriental", "Women", strs("bergamot", "iris", "vanilla", "tonka bean", "opoponax"), strs("vanilla", "amber", "powdery"), seasons(fall, winter), occasions(evening), strong, longLasting, 4.1, 9000},
	{"Flowerbomb", "Viktor&Rolf", "Floral", "Women", strs("tea", "bergamot", "jasmine", "rose", "patchouli"), strs("floral", "sweet", "powdery"), seasons(spring, fall), occasions(dateNight), moderate, longLasting, 3.9, 14000},
	{"Santal 33", "Le Labo", "Woody", "Unisex", strs("cardamom", "iris", "violet", "sandalwood", "leather"), strs("woody", "leather", "powdery"), seasons(fall), occasions(everyday), moderate, longLasting, 4.0, 11000},
	{"Dior Homme Intense", "Dior", "Floral", "Men", strs("lavender", "iris", "ambrette", "pear", "vetiver"), strs("powdery", "iris", "woody"), seasons(fall, winter), occasions(evening, dateNight), moderate, longLasting, 4.4, 12000},
	{"Cool Water", "Davidoff", "Aquatic", "Men", strs("sea water", "mint", "lavender", "jasmine", "musk"), strs("aquatic", "fresh", "aromatic"), seasons(summer), occasions(everyday), moderate, medium, 3.7, 15000},
	{"Spicebomb", "Viktor&Rolf", "Spicy", "Men", strs("pink pepper", "cinnamon", "saffron", "tobacco", "leather"), strs("warm spicy", "tobacco", "leather"), seasons(winter), occasions(evening), strong, longLasting, 4.0, 10000},
	{"Neroli Portofino", "Tom Ford", "Citrus", "Unisex", strs("bergamot", "lemon", "neroli", "orange blossom", "amber"), strs("citrus", "aromatic", "fresh"), seasons(summer), occasions(office), light, short, 4.0, 7000},
	{"Angel", "Mugler", "Gourmand", "Women", strs("cotton candy", "melon", "honey", "patchouli", "chocolate"), strs("sweet", "patchouli", "vanilla"), seasons(winter), occasions(dateNight), strong, longLasting, 3.8, 13000},
	{"Chanel No 5", "Chanel", "Floral", "Women", strs("aldehydes", "ylang-ylang", "neroli", "rose", "sandalwood"), strs("aldehydic", "floral", "powdery"), seasons(spring, fall), occasions(evening), moderate, longLasting, 4.0, 16000},
	{"Oud Wood", "Tom Ford", "Woody", "Unisex", strs("oud", "rosewood", "cardamom", "sandalwood", "vetiver"), strs("oud", "woody", "warm spicy"), seasons(fall, winter), occasions(evening), moderate, longLasting, 4.2, 12000},
	{"Versace Pour Homme", "Versace", "Aromatic", "Men", strs("neroli", "bergamot", "clary sage", "cedar", "tonka bean"), strs("citrus", "aromatic", "fresh"), seasons(spring, summer), occasions(office), light, short, 4.0, 9000},
	{"Mon Guerlain", "Guerlain", "Amber", "Women", strs("lavender", "vanilla", "sandalwood", "tonka bean", "coumarin"), strs("vanilla", "lavender", "amber"), seasons(fall, winter), occasions(dateNight), moderate, longLasting, 4.0, 8000},
}

// referenceCatalog builds the curated catalog with ids 1..25
func referenceCatalog() []domain.Fragrance {
	items := make([]domain.Fragrance, len(referenceFixtures))
	for i, f := range referenceFixtures {
		items[i] = domain.Fragrance{
			ID:            domain.ItemID(strconv.Itoa(i + 1)),
			Slug:          textutil.Slugify(f.name),
			Name:          f.name,
			Brand:         f.brand,
			Type:          "Eau de Parfum",
			Country:       domain.UnknownValue,
			ScentFamily:   f.family,
			GenderProfile: f.gender,
			Notes:         f.notes,
			Accords:       f.accords,
			Season:        f.seasons,
			Occasion:      f.occasions,
			Intensity:     f.intensity,
			Longevity:     f.longevity,
			Image:         domain.UnknownValue,
			PriceRange:    domain.UnknownValue,
			Rating:        f.rating,
			RatingCount:   f.votes,
			Year:          domain.UnknownValue,
			Perfumer:      domain.UnknownValue,
			Description:   domain.UnknownValue,
		}
	}
	return items
}

// ids lists item ids in order, for compact assertions
func ids(items []domain.Fragrance) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = string(item.ID)
	}
	return out
}
