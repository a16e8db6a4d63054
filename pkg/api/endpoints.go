package api

import "context"

// Endpoint paths, one per remote capability.
const (
	pathAirports          = "/airports"
	pathCities            = "/cities"
	pathNearbyCities      = "/nearbyCities"
	pathSignificantCities = "/significantCities"
	pathContinents        = "/continents"
	pathCountries         = "/countries"
	pathElevation         = "/elevation"
	pathDistance          = "/distance"
	pathSunPositions      = "/sunPositions"
	pathTimezone          = "/timezone"
	pathPing              = "/ping"
)

// SearchAirports searches airports around a location, within a country,
// or the major airports worldwide.
func (c *Client) SearchAirports(ctx context.Context, p AirportSearchParams) (*Envelope, error) {
	q := newParams().
		set("location", p.Location).
		setInt("radius", p.Radius).
		set("countrycode", p.CountryCode).
		setBool("topAirports", p.TopAirports).
		set("language", string(c.effectiveLanguage(p.Language)))
	return c.get(ctx, pathAirports, q)
}

// SearchCities searches cities by free text. The remote rejects queries
// shorter than 3 characters, so that is checked here before any request.
func (c *Client) SearchCities(ctx context.Context, p CitySearchParams) (*Envelope, error) {
	if len(p.Query) < 3 {
		return nil, NewValidationError("query must be at least 3 characters")
	}

	q := newParams().
		set("query", p.Query).
		set("countrycode", p.CountryCode).
		set("language", string(c.effectiveLanguage(p.Language)))
	return c.get(ctx, pathCities, q)
}

// NearbyCities lists cities around a location.
func (c *Client) NearbyCities(ctx context.Context, p NearbyCitiesParams) (*Envelope, error) {
	q := newParams().
		set("location", p.Location).
		setInt("radius", p.Radius).
		set("countrycode", p.CountryCode).
		setInt("limit", p.Limit).
		set("language", string(c.effectiveLanguage(p.Language)))
	return c.get(ctx, pathNearbyCities, q)
}

// SignificantCities lists cities selected by a population-percentage
// threshold relative to their country.
func (c *Client) SignificantCities(ctx context.Context, p SignificantCitiesParams) (*Envelope, error) {
	q := newParams().
		setInt("population", p.Population).
		set("location", p.Location).
		set("countrycode", p.CountryCode).
		setInt("limit", p.Limit).
		set("language", string(c.effectiveLanguage(p.Language)))
	return c.get(ctx, pathSignificantCities, q)
}

// Continents lists all continents, or one when a code is given.
func (c *Client) Continents(ctx context.Context, p ContinentsParams) (*Envelope, error) {
	q := newParams().
		set("code", p.Code).
		set("language", string(c.effectiveLanguage(p.Language)))
	return c.get(ctx, pathContinents, q)
}

// Countries lists all countries, or one when a country code is given.
func (c *Client) Countries(ctx context.Context, p CountriesParams) (*Envelope, error) {
	q := newParams().
		set("countrycode", p.CountryCode).
		set("language", string(c.effectiveLanguage(p.Language)))
	return c.get(ctx, pathCountries, q)
}

// Elevation returns the elevation of up to 20 coordinate pairs. The cap
// is enforced remotely, not here.
func (c *Client) Elevation(ctx context.Context, p ElevationParams) (*Envelope, error) {
	if len(p.Locations) == 0 {
		return nil, NewValidationError("at least one location is required")
	}

	q := newParams().
		set("locations", joinLocations(p.Locations)).
		set("unit", string(p.Unit))
	return c.get(ctx, pathElevation, q)
}

// Distance computes the distance between two locations, each a "lat,long"
// pair or an IATA airport code.
func (c *Client) Distance(ctx context.Context, p DistanceParams) (*Envelope, error) {
	if err := requireLocation("locationA", p.LocationA); err != nil {
		return nil, err
	}
	if err := requireLocation("locationB", p.LocationB); err != nil {
		return nil, err
	}

	q := newParams().
		set("locationA", p.LocationA).
		set("locationB", p.LocationB).
		set("unit", string(p.Unit))
	return c.get(ctx, pathDistance, q)
}

// SunPositions returns sunrise and sunset times for a location.
func (c *Client) SunPositions(ctx context.Context, p SunParams) (*Envelope, error) {
	if err := requireLocation("location", p.Location); err != nil {
		return nil, err
	}

	q := newParams().
		set("location", p.Location).
		set("date", p.Date)
	return c.get(ctx, pathSunPositions, q)
}

// Timezone returns the timezone of a location.
func (c *Client) Timezone(ctx context.Context, p TimezoneParams) (*Envelope, error) {
	if err := requireLocation("location", p.Location); err != nil {
		return nil, err
	}

	q := newParams().
		set("location", p.Location)
	return c.get(ctx, pathTimezone, q)
}

// Ping checks that the API is reachable and the key is accepted.
func (c *Client) Ping(ctx context.Context) (*Envelope, error) {
	return c.get(ctx, pathPing, nil)
}
