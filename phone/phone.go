package phone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	// ErrParse is returned when the input cannot be read as a number.
	ErrParse = errors.New("phone: cannot parse number")
	// ErrInvalid is returned for numbers that parse but are not assigned
	// to any numbering plan.
	ErrInvalid = errors.New("phone: invalid number")
)

// Format selects an output style.
type Format int

const (
	E164          Format = iota // +442070313000
	International               // +44 20 7031 3000
	National                    // 020 7031 3000
	RFC3966                     // tel:+44-20-7031-3000
)

// Type classifies a number.
type Type string

const (
	FixedLine         Type = "fixed_line"
	Mobile            Type = "mobile"
	FixedLineOrMobile Type = "fixed_line_or_mobile"
	TollFree          Type = "toll_free"
	PremiumRate       Type = "premium_rate"
	SharedCost        Type = "shared_cost"
	VoIP              Type = "voip"
	PersonalNumber    Type = "personal_number"
	Pager             Type = "pager"
	UAN               Type = "uan"
	Voicemail         Type = "voicemail"
	Unknown           Type = "unknown"
)

var types = map[phonenumbers.PhoneNumberType]Type{
	phonenumbers.FIXED_LINE:           FixedLine,
	phonenumbers.MOBILE:               Mobile,
	phonenumbers.FIXED_LINE_OR_MOBILE: FixedLineOrMobile,
	phonenumbers.TOLL_FREE:            TollFree,
	phonenumbers.PREMIUM_RATE:         PremiumRate,
	phonenumbers.SHARED_COST:          SharedCost,
	phonenumbers.VOIP:                 VoIP,
	phonenumbers.PERSONAL_NUMBER:      PersonalNumber,
	phonenumbers.PAGER:                Pager,
	phonenumbers.UAN:                  UAN,
	phonenumbers.VOICEMAIL:            Voicemail,
}

// Number is a parsed telephone number.
type Number struct {
	raw string
	pn  *phonenumbers.PhoneNumber
}

// Parse reads number, using region for national-format input.
// Parse does not check validity; see IsValid and ParseValid.
func Parse(number, region string) (Number, error) {
	raw := strings.TrimSpace(number)
	if raw == "" {
		return Number{}, fmt.Errorf("%w: empty input", ErrParse)
	}
	pn, err := phonenumbers.Parse(raw, strings.ToUpper(region))
	if err != nil {
		return Number{}, fmt.Errorf("%w: %q: %v", ErrParse, raw, err)
	}
	return Number{raw: raw, pn: pn}, nil
}

// ParseValid is Parse followed by a validity check.
func ParseValid(number, region string) (Number, error) {
	n, err := Parse(number, region)
	if err != nil {
		return Number{}, err
	}
	if !n.IsValid() {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalid, n.raw)
	}
	return n, nil
}

// IsValid reports whether number is a valid number for region.
func IsValid(number, region string) bool {
	n, err := Parse(number, region)
	return err == nil && n.IsValid()
}

// IsValid reports whether n matches an assigned numbering pattern.
func (n Number) IsValid() bool {
	return n.pn != nil && phonenumbers.IsValidNumber(n.pn)
}

// IsPossible is a cheaper length-only check.
func (n Number) IsPossible() bool {
	return n.pn != nil && phonenumbers.IsPossibleNumber(n.pn)
}

// Format renders n. The zero Number renders as "".
func (n Number) Format(f Format) string {
	if n.pn == nil {
		return ""
	}
	switch f {
	case International:
		return phonenumbers.Format(n.pn, phonenumbers.INTERNATIONAL)
	case National:
		return phonenumbers.Format(n.pn, phonenumbers.NATIONAL)
	case RFC3966:
		return phonenumbers.Format(n.pn, phonenumbers.RFC3966)
	default:
		return phonenumbers.Format(n.pn, phonenumbers.E164)
	}
}

// String returns the E.164 form.
func (n Number) String() string { return n.Format(E164) }

// Region returns the ISO region code the number belongs to, or "".
func (n Number) Region() string {
	if n.pn == nil {
		return ""
	}
	r := phonenumbers.GetRegionCodeForNumber(n.pn)
	if r == "ZZ" {
		return ""
	}
	return r
}

// CountryCode returns the calling code, e.g. 44.
func (n Number) CountryCode() int {
	if n.pn == nil {
		return 0
	}
	return int(n.pn.GetCountryCode())
}

// NationalNumber returns the significant number without country code.
func (n Number) NationalNumber() uint64 {
	if n.pn == nil {
		return 0
	}
	return n.pn.GetNationalNumber()
}

// Type classifies n.
func (n Number) Type() Type {
	if n.pn == nil {
		return Unknown
	}
	if t, ok := types[phonenumbers.GetNumberType(n.pn)]; ok {
		return t
	}
	return Unknown
}

// Raw returns the trimmed input.
func (n Number) Raw() string { return n.raw }

// CountryCodeForRegion returns the calling code of an ISO region, or 0.
func CountryCodeForRegion(region string) int {
	return phonenumbers.GetCountryCodeForRegion(strings.ToUpper(region))
}
