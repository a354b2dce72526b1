package geoinfo

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/exchange-api/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

var ErrNoAddressFound = errors.New("no address found")

// Geocoder is the part of the google maps client used here
type Geocoder interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// AddressResolver turns the coordinates of a meeting place into a readable address
type AddressResolver struct {
	client Geocoder
}

// ResolveAddress returns the formatted address of the most precise result
// for a location, in the given language
func (g *AddressResolver) ResolveAddress(ctx context.Context, loc schema.Location, language string) (string, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    loc.Latitude,
		"lng":    loc.Longitude,
	}).Debug("query address")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		ResultType: []string{"street_address|premise|route"},
		Language:   language,
	})
	if err != nil {
		return "", err
	}

	for _, r := range results {
		if r.FormattedAddress != "" {
			return r.FormattedAddress, nil
		}
	}
	return "", ErrNoAddressFound
}

func NewAddressResolver(client Geocoder) *AddressResolver {
	return &AddressResolver{client: client}
}

// New - new AddressResolver backed by google maps
func New(apiKey string) (*AddressResolver, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return NewAddressResolver(client), nil
}
