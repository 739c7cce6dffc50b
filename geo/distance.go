package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNegativeDistance is returned for negative or NaN lengths.
var ErrNegativeDistance = errors.New("geo: distance must be non-negative")

// ErrUnit is returned by ParseUnit for unknown unit names.
var ErrUnit = errors.New("geo: unknown unit")

// Unit is a length unit.
type Unit int

const (
	Metres Unit = iota
	Kilometres
	Miles
	NauticalMiles
	Feet
	Yards
)

// MilesPerKilometre is the statute miles in one kilometre.
const MilesPerKilometre = 0.621371192

var unitNames = map[Unit]string{
	Metres:        "m",
	Kilometres:    "km",
	Miles:         "mi",
	NauticalMiles: "nmi",
	Feet:          "ft",
	Yards:         "yd",
}

func (u Unit) String() string {
	if s, ok := unitNames[u]; ok {
		return s
	}
	return "Unit(" + strconv.Itoa(int(u)) + ")"
}

// ParseUnit accepts the short names printed by Unit.String plus a few
// spelled-out forms ("km", "kilometres", "miles", "nm", ...).
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "metre", "metres", "meter", "meters":
		return Metres, nil
	case "km", "kilometre", "kilometres", "kilometer", "kilometers":
		return Kilometres, nil
	case "mi", "mile", "miles":
		return Miles, nil
	case "nmi", "nm", "nautical", "nauticalmiles":
		return NauticalMiles, nil
	case "ft", "foot", "feet":
		return Feet, nil
	case "yd", "yard", "yards":
		return Yards, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnit, s)
}

// metres per unit
func (u Unit) factor() float64 {
	switch u {
	case Kilometres:
		return 1000
	case Miles:
		return 1000 / MilesPerKilometre
	case NauticalMiles:
		return 1852
	case Feet:
		return 0.3048
	case Yards:
		return 0.9144
	default:
		return 1
	}
}

// Distance is a non-negative length stored in metres.
type Distance struct {
	m float64
}

// NewDistance validates v in the given unit.
func NewDistance(v float64, u Unit) (Distance, error) {
	if math.IsNaN(v) || v < 0 {
		return Distance{}, fmt.Errorf("%w: %v %s", ErrNegativeDistance, v, u)
	}
	return Distance{m: v * u.factor()}, nil
}

func metres(m float64) Distance { return Distance{m: math.Abs(m)} }

func (d Distance) Metres() float64        { return d.m }
func (d Distance) Kilometres() float64    { return d.m / 1000 }
func (d Distance) Miles() float64         { return d.Kilometres() * MilesPerKilometre }
func (d Distance) NauticalMiles() float64 { return d.m / 1852 }
func (d Distance) Feet() float64          { return d.m / 0.3048 }
func (d Distance) Yards() float64         { return d.m / 0.9144 }

// In converts to any unit.
func (d Distance) In(u Unit) float64 {
	if u == Miles {
		return d.Miles()
	}
	return d.m / u.factor()
}

// Add returns the sum of two distances.
func (d Distance) Add(o Distance) Distance { return Distance{m: d.m + o.m} }

// Less reports whether d is shorter than o.
func (d Distance) Less(o Distance) bool { return d.m < o.m }

// String picks metres below one kilometre, kilometres above.
func (d Distance) String() string {
	if d.m < 1000 {
		return strconv.FormatFloat(d.m, 'f', 0, 64) + " m"
	}
	return strconv.FormatFloat(d.Kilometres(), 'f', 2, 64) + " km"
}
