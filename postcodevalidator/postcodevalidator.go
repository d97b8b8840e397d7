package postcodevalidator

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ErrUnknownCountry is matched by every *UnknownCountryError.
var ErrUnknownCountry = errors.New("unknown country code")

// UnknownCountryError is returned when a country code is not in the format table.
type UnknownCountryError struct {
	CountryCode string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("invalid country code: %q", e.CountryCode)
}

func (e *UnknownCountryError) Is(target error) bool {
	return target == ErrUnknownCountry
}

// patterns holds the anchored expression for every non-empty format. It is
// built once in init and only read afterwards.
var patterns = make(map[string]*regexp.Regexp, len(formats))

func init() {
	for code, format := range formats {
		if format == "" {
			continue
		}

		patterns[code] = regexp.MustCompile(anchor(format))
	}
}

// anchor wraps the whole format in a non-capturing group so alternations in
// the format stay inside the anchors.
func anchor(format string) string {
	return `^(?:` + format + `)$`
}

// upperASCII upper-cases a-z and leaves every other rune alone. Formats only
// contain upper-case letters, and non-ASCII runes are never folded.
func upperASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}

		return r
	}, s)
}

// Validator checks postal codes against the per-country format table. The
// zero value is ready to use and safe for concurrent use.
type Validator struct{}

// NewValidator returns a Validator backed by the built-in format table.
func NewValidator() *Validator {
	return &Validator{}
}

// IsValid reports whether postalCode matches the format for countryCode.
// Country codes are matched exactly, so callers must normalise case first.
// Countries with no known format accept any postal code, including "".
func (v *Validator) IsValid(countryCode string, postalCode string, caseSensitive bool) (bool, error) {
	format, ok := formats[countryCode]
	if !ok {
		return false, &UnknownCountryError{CountryCode: countryCode}
	}

	if format == "" {
		return true, nil
	}

	if !caseSensitive {
		postalCode = upperASCII(postalCode)
	}

	return patterns[countryCode].MatchString(postalCode), nil
}

// Validate is IsValid with case-insensitive matching.
func (v *Validator) Validate(countryCode string, postalCode string) (bool, error) {
	return v.IsValid(countryCode, postalCode, false)
}

// Format returns the raw format for countryCode, which may be empty.
func (v *Validator) Format(countryCode string) (string, error) {
	format, ok := formats[countryCode]
	if !ok {
		return "", &UnknownCountryError{CountryCode: countryCode}
	}

	return format, nil
}

// HasCountry returns true if countryCode is in the format table.
func (v *Validator) HasCountry(countryCode string) bool {
	_, ok := formats[countryCode]
	return ok
}

// Countries returns every country code in the format table, sorted.
func (v *Validator) Countries() []string {
	codes := make([]string, 0, len(formats))
	for code := range formats {
		codes = append(codes, code)
	}

	sort.Strings(codes)
	return codes
}

// Checker is implemented by *Validator.
type Checker interface {
	IsValid(countryCode string, postalCode string, caseSensitive bool) (bool, error)
}

type Outcome string

const (
	Valid          Outcome = "valid"
	Invalid        Outcome = "invalid"
	UnknownCountry Outcome = "unknown-country"
)

// Classify runs c.IsValid and folds an unknown country code into the
// UnknownCountry outcome. Any other error is returned as is.
func Classify(c Checker, countryCode string, postalCode string, caseSensitive bool) (Outcome, error) {
	ok, err := c.IsValid(countryCode, postalCode, caseSensitive)
	switch {
	case errors.Is(err, ErrUnknownCountry):
		return UnknownCountry, nil
	case err != nil:
		return "", err
	case ok:
		return Valid, nil
	default:
		return Invalid, nil
	}
}

var defaultValidator = NewValidator()

// IsValid calls IsValid on the default Validator.
func IsValid(countryCode string, postalCode string, caseSensitive bool) (bool, error) {
	return defaultValidator.IsValid(countryCode, postalCode, caseSensitive)
}

// Validate returns a boolean depending on whether the postal code is valid
// for the country, ignoring case.
func Validate(countryCode string, postalCode string) (bool, error) {
	return defaultValidator.Validate(countryCode, postalCode)
}

func Format(countryCode string) (string, error) {
	return defaultValidator.Format(countryCode)
}

func HasCountry(countryCode string) bool {
	return defaultValidator.HasCountry(countryCode)
}

func Countries() []string {
	return defaultValidator.Countries()
}
