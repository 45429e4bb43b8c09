package domain

import "encoding/json"

// Known category keys. Sources map 1:1 onto these; unknown categories are
// preserved in the merged catalog but have no browsing route.
const (
	CategoryAlimentacao = "alimentacao"
	CategoryInfantil    = "infantil"
	CategoryBeleza      = "beleza"
	CategoryLazer       = "lazer"
	CategoryPets        = "pets"
)

// KnownCategories lists the closed category set in declaration order.
var KnownCategories = []string{
	CategoryAlimentacao,
	CategoryInfantil,
	CategoryBeleza,
	CategoryLazer,
	CategoryPets,
}

// IsKnownCategory reports whether key is one of the five browsable
// categories. The key must already be normalized.
func IsKnownCategory(key string) bool {
	for _, c := range KnownCategories {
		if c == key {
			return true
		}
	}
	return false
}

// Coordinates is a complete latitude/longitude pair. Partial pairs in
// source payloads are normalized to absent at decode time.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is a single point-of-interest record ("local"). Instances are
// created once per catalog load and never mutated afterwards; per-request
// annotations live on RankedEntry instead.
type Place struct {
	ID               string       `json:"id"`
	Name             string       `json:"nome"`
	Category         string       `json:"categoria"`
	ShortDescription string       `json:"descricao_curta,omitempty"`
	Description      string       `json:"descricao,omitempty"`
	Tags             []string     `json:"tags,omitempty"`
	Rating           *float64     `json:"estrelas,omitempty"`
	ReviewsCount     int          `json:"avaliacoes,omitempty"`
	Images           []string     `json:"imagens,omitempty"`
	Coordinates      *Coordinates `json:"coordenadas,omitempty"`
	LocationText     string       `json:"localizacao,omitempty"`
	Address          string       `json:"endereco,omitempty"`
	Phone            string       `json:"telefone,omitempty"`
	Website          string       `json:"site,omitempty"`
}

// UnmarshalJSON decodes a source record and drops half-complete coordinate
// pairs, so consumers only ever see a full pair or nil.
func (p *Place) UnmarshalJSON(data []byte) error {
	type alias Place
	aux := struct {
		*alias
		Coordinates *struct {
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
		} `json:"coordenadas"`
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.Coordinates != nil && aux.Coordinates.Latitude != nil && aux.Coordinates.Longitude != nil {
		p.Coordinates = &Coordinates{
			Latitude:  *aux.Coordinates.Latitude,
			Longitude: *aux.Coordinates.Longitude,
		}
	} else {
		p.Coordinates = nil
	}

	return nil
}

// RatingOrZero applies the sort-time default for a missing rating. The
// stored record keeps the absence.
func (p *Place) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// RankedEntry is a Place augmented with a per-request computed distance.
// DistanceKm is nil when the user position or the place coordinates are
// unknown. Entries are derived fresh on every ranking request.
type RankedEntry struct {
	Place
	DistanceKm *float64 `json:"distance_km"`
	// DistanceText is the display form of DistanceKm, empty when unknown.
	DistanceText string `json:"distance_text,omitempty"`
}
