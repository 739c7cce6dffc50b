package geo

import (
	"errors"
	"math"
)

// EarthRadius is the IUGG mean Earth radius in metres.
const EarthRadius = 6371008.8

// WGS 84 ellipsoid.
const (
	wgs84A = 6378137.0
	wgs84F = 1 / 298.257223563
	wgs84B = (1 - wgs84F) * wgs84A
)

// MaxIterations bounds the Vincenty iteration.
const MaxIterations = 200

// ErrNoConvergence is returned when Vincenty does not converge, which
// happens for nearly antipodal points.
var ErrNoConvergence = errors.New("geo: vincenty formula failed to converge")

// Haversine returns the great-circle distance between a and b.
func Haversine(a, b LatLong) Distance {
	lat1, lon1 := a.radians()
	lat2, lon2 := b.radians()
	sinLat := math.Sin((lat2 - lat1) / 2)
	sinLon := math.Sin((lon2 - lon1) / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	return metres(2 * EarthRadius * math.Asin(math.Min(1, math.Sqrt(h))))
}

// Vincenty returns the ellipsoidal distance between a and b.
func Vincenty(a, b LatLong) (Distance, error) {
	L := (b.Lon - a.Lon) * math.Pi / 180
	u1 := math.Atan((1 - wgs84F) * math.Tan(a.Lat*math.Pi/180))
	u2 := math.Atan((1 - wgs84F) * math.Tan(b.Lat*math.Pi/180))
	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	var sinSigma, cosSigma, sigma, cos2Alpha, cos2SigmaM float64
	lambda := L
	converged := false
	for i := 0; i < MaxIterations; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)
		x := cosU2 * sinLambda
		y := cosU1*sinU2 - sinU1*cosU2*cosLambda
		sinSigma = math.Sqrt(x*x + y*y)
		if sinSigma == 0 {
			return Distance{}, nil // coincident points
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cos2Alpha = 1 - sinAlpha*sinAlpha
		cos2SigmaM = 0
		if cos2Alpha != 0 { // equatorial line otherwise
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cos2Alpha
		}
		c := wgs84F / 16 * cos2Alpha * (4 + wgs84F*(4-3*cos2Alpha))
		prev := lambda
		lambda = L + (1-c)*wgs84F*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
		if math.Abs(lambda-prev) < 1e-12 {
			converged = true
			break
		}
	}
	if !converged {
		return Distance{}, ErrNoConvergence
	}

	uSq := cos2Alpha * (wgs84A*wgs84A - wgs84B*wgs84B) / (wgs84B * wgs84B)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
		B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
	return metres(wgs84B * A * (sigma - deltaSigma)), nil
}

// Bearing returns the initial great-circle bearing from a to b in
// degrees clockwise from north, in [0, 360).
func Bearing(a, b LatLong) float64 {
	lat1, lon1 := a.radians()
	lat2, lon2 := b.radians()
	y := math.Sin(lon2-lon1) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(lon2-lon1)
	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// Midpoint returns the point halfway along the great circle from a to b.
func Midpoint(a, b LatLong) LatLong {
	lat1, lon1 := a.radians()
	lat2, lon2 := b.radians()
	bx := math.Cos(lat2) * math.Cos(lon2-lon1)
	by := math.Cos(lat2) * math.Sin(lon2-lon1)
	lat := math.Atan2(math.Sin(lat1)+math.Sin(lat2), math.Sqrt((math.Cos(lat1)+bx)*(math.Cos(lat1)+bx)+by*by))
	lon := lon1 + math.Atan2(by, math.Cos(lat1)+bx)
	return fromRadians(lat, lon)
}

// Destination travels d from start along the given initial bearing
// (degrees) on a spherical Earth.
func Destination(start LatLong, bearing float64, d Distance) LatLong {
	lat1, lon1 := start.radians()
	theta := bearing * math.Pi / 180
	delta := d.Metres() / EarthRadius
	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) + math.Cos(lat1)*math.Sin(delta)*math.Cos(theta))
	lon2 := lon1 + math.Atan2(math.Sin(theta)*math.Sin(delta)*math.Cos(lat1), math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2))
	return fromRadians(lat2, lon2)
}

// Bounds is a latitude/longitude rectangle. When it crosses the
// antimeridian, Min.Lon > Max.Lon.
type Bounds struct {
	Min LatLong `json:"min"`
	Max LatLong `json:"max"`
}

// BoundingBox returns the smallest Bounds containing every point within
// radius of center. Near the poles the box spans all longitudes.
func BoundingBox(center LatLong, radius Distance) Bounds {
	lat, lon := center.radians()
	r := radius.Metres() / EarthRadius
	minLat, maxLat := lat-r, lat+r

	const halfPi = math.Pi / 2
	if minLat <= -halfPi || maxLat >= halfPi {
		return Bounds{
			Min: LatLong{Lat: math.Max(minLat, -halfPi) * 180 / math.Pi, Lon: -180},
			Max: LatLong{Lat: math.Min(maxLat, halfPi) * 180 / math.Pi, Lon: 180},
		}
	}
	dLon := math.Asin(math.Sin(r) / math.Cos(lat))
	return Bounds{
		Min: fromRadians(minLat, lon-dLon),
		Max: fromRadians(maxLat, lon+dLon),
	}
}

// Contains reports whether p lies inside b (edges included).
func (b Bounds) Contains(p LatLong) bool {
	if p.Lat < b.Min.Lat || p.Lat > b.Max.Lat {
		return false
	}
	if b.Min.Lon <= b.Max.Lon {
		return p.Lon >= b.Min.Lon && p.Lon <= b.Max.Lon
	}
	return p.Lon >= b.Min.Lon || p.Lon <= b.Max.Lon
}

// Within reports whether b is no farther than radius from a (haversine).
func Within(a, b LatLong, radius Distance) bool {
	return !radius.Less(Haversine(a, b))
}
