package api

import (
	"net/url"
	"strconv"
	"strings"
)

// Language is a closed enumeration of the languages the geography
// endpoints can localize to.
type Language string

const (
	LanguageEN Language = "en"
	LanguageFR Language = "fr"
	LanguageDE Language = "de"
	LanguageES Language = "es"
)

// ParseLanguage validates a user-supplied language code. The empty string
// is accepted and means "not specified".
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case "", LanguageEN, LanguageFR, LanguageDE, LanguageES:
		return Language(s), nil
	}
	return "", NewValidationError("unsupported language %q (expected one of: en, fr, de, es)", s)
}

// DistanceUnit is the unit for the distance endpoint.
type DistanceUnit string

const (
	DistanceKilometers DistanceUnit = "kms"
	DistanceMiles      DistanceUnit = "miles"
)

// ParseDistanceUnit validates a distance unit. Empty means the remote
// default (kms).
func ParseDistanceUnit(s string) (DistanceUnit, error) {
	switch DistanceUnit(s) {
	case "", DistanceKilometers, DistanceMiles:
		return DistanceUnit(s), nil
	}
	return "", NewValidationError("unsupported unit %q (expected kms or miles)", s)
}

// ElevationUnit is the unit for the elevation endpoint.
type ElevationUnit string

const (
	ElevationMeters ElevationUnit = "meters"
	ElevationFeet   ElevationUnit = "feet"
)

// ParseElevationUnit validates an elevation unit. Empty means the remote
// default (meters).
func ParseElevationUnit(s string) (ElevationUnit, error) {
	switch ElevationUnit(s) {
	case "", ElevationMeters, ElevationFeet:
		return ElevationUnit(s), nil
	}
	return "", NewValidationError("unsupported unit %q (expected meters or feet)", s)
}

// params accumulates query parameters for a request. A parameter is only
// serialized when it was explicitly set: absence is distinct from an
// empty value, which is never sent.
type params struct {
	values url.Values
}

func newParams() *params {
	return &params{values: url.Values{}}
}

// set adds a string parameter, skipping empty values.
func (p *params) set(key, value string) *params {
	if value != "" {
		p.values.Set(key, value)
	}
	return p
}

// setInt adds an integer parameter. Nil means "not supplied"; an explicit
// zero is a real value and is sent.
func (p *params) setInt(key string, value *int) *params {
	if value != nil {
		p.values.Set(key, strconv.Itoa(*value))
	}
	return p
}

// setBool adds a flag parameter only when the flag is raised.
func (p *params) setBool(key string, value bool) *params {
	if value {
		p.values.Set(key, "true")
	}
	return p
}

func (p *params) encode() string {
	return p.values.Encode()
}

// AirportSearchParams shapes an airport search. All fields are optional;
// a nil numeric field means the option was not supplied at all.
type AirportSearchParams struct {
	// Location is a "lat,long" pair to search around.
	Location string
	// Radius is the search radius in kilometers (remote caps at 500).
	Radius *int
	// CountryCode restricts results to one country.
	CountryCode string
	// TopAirports restricts results to major airports.
	TopAirports bool
	// Language overrides the client's default language.
	Language Language
}

// CitySearchParams shapes a free-text city search.
type CitySearchParams struct {
	// Query is the search text; the remote requires at least 3 characters.
	Query       string
	CountryCode string
	Language    Language
}

// NearbyCitiesParams shapes a proximity city search.
type NearbyCitiesParams struct {
	// Location is a "lat,long" pair; the dispatcher defaults it to Paris
	// when the user supplies nothing.
	Location    string
	Radius      *int // kilometers, remote caps at 200
	CountryCode string
	Limit       *int // remote caps at 50
	Language    Language
}

// SignificantCitiesParams shapes a significant-cities lookup.
type SignificantCitiesParams struct {
	// Population is a percentage threshold relative to the country.
	Population  *int
	Location    string
	CountryCode string
	Limit       *int
	Language    Language
}

// ContinentsParams shapes a continents lookup. An absent code lists all.
type ContinentsParams struct {
	Code     string
	Language Language
}

// CountriesParams shapes a countries lookup. An absent code lists all.
type CountriesParams struct {
	CountryCode string
	Language    Language
}

// ElevationParams shapes an elevation lookup.
type ElevationParams struct {
	// Locations are "lat,long" pairs, joined pipe-separated on the wire.
	// The remote caps the list at 20 entries.
	Locations []string
	Unit      ElevationUnit
}

// DistanceParams shapes a distance computation between two locations,
// each either a "lat,long" pair or an IATA airport code.
type DistanceParams struct {
	LocationA string
	LocationB string
	Unit      DistanceUnit
}

// SunParams shapes a sun-positions lookup.
type SunParams struct {
	// Location is a coordinate pair or IATA code.
	Location string
	// Date is an ISO "YYYY-MM-DD" day; absent means today.
	Date string
}

// TimezoneParams shapes a timezone lookup.
type TimezoneParams struct {
	Location string
}

func joinLocations(locations []string) string {
	return strings.Join(locations, "|")
}

func requireLocation(name, value string) error {
	if value == "" {
		return NewValidationError("%s is required", name)
	}
	return nil
}
