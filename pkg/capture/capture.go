package capture

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"

	"arborlog/entities"
)

// The device primitives (camera/file picker, geolocation) live outside this
// process; these interfaces keep the core testable without either.

type PhotoSource interface {
	Encode(data []byte) (string, error)
}

type Locator interface {
	Locate() (entities.GeoLocation, error)
}

var (
	ErrEmptyPhoto    = errors.New("empty photo payload")
	ErrNoSample      = errors.New("no location sample")
	ErrPartialSample = errors.New("latitude and longitude must be provided together")
)

// DataURIPhotoSource embeds an uploaded image as a data-URI base64 string,
// content type sniffed from the payload. No resizing or compression.
type DataURIPhotoSource struct{}

func (DataURIPhotoSource) Encode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyPhoto
	}
	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// PairLocator wraps a coordinate pair already sampled on the client device.
// A half-set pair is a failure: location is set whole or not at all.
type PairLocator struct {
	lat, lng string
}

func NewPairLocator(lat, lng string) PairLocator {
	return PairLocator{lat: lat, lng: lng}
}

func (p PairLocator) Locate() (entities.GeoLocation, error) {
	if p.lat == "" && p.lng == "" {
		return entities.GeoLocation{}, ErrNoSample
	}
	if p.lat == "" || p.lng == "" {
		return entities.GeoLocation{}, ErrPartialSample
	}
	lat, err := strconv.ParseFloat(p.lat, 64)
	if err != nil {
		return entities.GeoLocation{}, ErrPartialSample
	}
	lng, err := strconv.ParseFloat(p.lng, 64)
	if err != nil {
		return entities.GeoLocation{}, ErrPartialSample
	}
	return entities.GeoLocation{Lat: lat, Lng: lng}, nil
}
