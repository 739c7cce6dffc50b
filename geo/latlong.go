package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrLatitude is returned for latitudes outside [-90, 90].
	ErrLatitude = errors.New("geo: latitude out of range")
	// ErrLongitude is returned for longitudes outside [-180, 180].
	ErrLongitude = errors.New("geo: longitude out of range")
	// ErrParse is returned when a coordinate string is malformed.
	ErrParse = errors.New("geo: cannot parse coordinates")
)

// LatLong is a WGS 84 coordinate in decimal degrees.
type LatLong struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewLatLong validates and returns a coordinate.
func NewLatLong(lat, lon float64) (LatLong, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return LatLong{}, fmt.Errorf("%w: %v", ErrLatitude, lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return LatLong{}, fmt.Errorf("%w: %v", ErrLongitude, lon)
	}
	return LatLong{Lat: lat, Lon: lon}, nil
}

// MustLatLong is NewLatLong for literals; it panics on error.
func MustLatLong(lat, lon float64) LatLong {
	p, err := NewLatLong(lat, lon)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseLatLong reads "lat,lon" (spaces allowed).
func ParseLatLong(s string) (LatLong, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return LatLong{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return LatLong{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return LatLong{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return NewLatLong(lat, lon)
}

// String formats as "lat,lon" with six decimals (about 0.1 m).
func (p LatLong) String() string {
	return strconv.FormatFloat(p.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(p.Lon, 'f', 6, 64)
}

func (p LatLong) radians() (lat, lon float64) {
	return p.Lat * math.Pi / 180, p.Lon * math.Pi / 180
}

func fromRadians(lat, lon float64) LatLong {
	lon = math.Mod(lon*180/math.Pi+540, 360) - 180
	return LatLong{Lat: lat * 180 / math.Pi, Lon: lon}
}
