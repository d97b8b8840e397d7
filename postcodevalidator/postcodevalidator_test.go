package postcodevalidator

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		country       string
		postcode      string
		caseSensitive bool
		want          bool
	}{
		{"CH", "8001", false, true},
		{"CH", "800", false, false},
		{"US", "90210", false, true},
		{"US", "90210", true, true},
		{"US", "90210-1234", false, true},
		{"US", "90210 1234", false, true},
		{"US", "9021", false, false},
		{"NL", "1234 AB", false, true},
		{"NL", "1234AB", false, true},
		{"NL", "1234-AB", false, false},
		{"NL", "1234 ab", false, true},
		{"NL", "1234 ab", true, false},
		{"DE", "12345", false, true},
		{"DE", "123456", false, false},
		{"DE", "a12345", false, false},
		{"CA", "K1A 0B1", true, true},
		{"CA", "k1a0b1", false, true},
		{"CA", "k1a0b1", true, false},
		{"CA", "D1A 0B1", false, false},
		{"GB", "SW1A 1AA", true, true},
		{"GB", "EC1A1BB", false, true},
		{"GB", "GIR 0AA", false, true},
		{"GB", "BFPO 1234", false, true},
		{"GB", "QQ1 1AA", false, false},
		{"BR", "01310-100", false, true},
		{"BR", "01310100", false, true},
		{"JP", "100-0001", false, true},
		{"PL", "00-950", false, true},
		{"PL", "00950", false, false},
		{"PT", "1000-001", false, true},
		{"CR", "10101", false, true},
		{"CR", "123-4567", false, true},
		{"LI", "9490", false, true},
		{"LI", "9499", false, false},
		{"PE", "LIMA 12", false, true},
		{"PE", "CALLAO 05", false, true},
		{"PE", "15001", false, true},
		{"SH", "STHL 1ZZ", false, true},
		{"AR", "C1425DKG", false, true},
		{"AR", "1425", false, true},
		{"VA", "00120", false, true},
		{"LV", "LV-1010", false, true},
		{"LT", "LV-10100", false, true},
		{"KY", "KY1-1001", false, true},
		{"LC", "LC05 101", false, true},
		{"SZ", "H100", false, true},
		{"SZ", "A100", false, false},
		{"NL", "1234 \u212AA", false, false},
		{"NL", "1234 \u017FA", false, false},
		{"CA", "\u212A1A 0B1", false, false},
		{"GB", "\u017FW1A 1AA", false, false},
		{"GB", "sw1a 1aa", false, true},
		{"AD", "ad500", false, true},
		{"AD", "ad500", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.country+"/"+tt.postcode, func(t *testing.T) {
			got, err := IsValid(tt.country, tt.postcode, tt.caseSensitive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidAnchorsEveryAlternative(t *testing.T) {
	tests := []struct {
		country  string
		postcode string
	}{
		{"GB", "GIR 0AAX"},
		{"GB", "XBFPO 12"},
		{"GB", "SW1A 1AA extra"},
		{"CR", "10101-1234"},
		{"CR", "x123-4567"},
		{"SA", "12345-12345"},
		{"LI", "94859"},
		{"PE", "15001 LIMA 1"},
	}

	for _, tt := range tests {
		t.Run(tt.country+"/"+tt.postcode, func(t *testing.T) {
			got, err := IsValid(tt.country, tt.postcode, false)
			require.NoError(t, err)
			assert.False(t, got)
		})
	}
}

func TestIsValidDoesNotTrim(t *testing.T) {
	for _, postcode := range []string{" 8001", "8001 ", "\t8001", "8001\n"} {
		got, err := IsValid("CH", postcode, false)
		require.NoError(t, err)
		assert.False(t, got, "%q", postcode)
	}
}

func TestIsValidUnformattedCountries(t *testing.T) {
	inputs := []string{"", " ", "anything", "12345", "!@#$%"}

	for _, country := range []string{"AE", "AN", "BF", "HK", "KO", "ZW"} {
		for _, postcode := range inputs {
			for _, caseSensitive := range []bool{false, true} {
				got, err := IsValid(country, postcode, caseSensitive)
				require.NoError(t, err)
				assert.True(t, got, "%s %q", country, postcode)
			}
		}
	}
}

func TestUnknownCountry(t *testing.T) {
	for _, country := range []string{"ZZ", "gb", "G", "GBR", "", " GB", "XK"} {
		ok, err := IsValid(country, "12345", false)
		assert.False(t, ok)

		var unknown *UnknownCountryError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, country, unknown.CountryCode)
		assert.ErrorIs(t, err, ErrUnknownCountry)

		format, err := Format(country)
		assert.Empty(t, format)
		assert.ErrorIs(t, err, ErrUnknownCountry)

		assert.False(t, HasCountry(country))
	}
}

func TestUnknownCountryErrorMessage(t *testing.T) {
	_, err := Validate("ZZ", "1234")
	require.Error(t, err)
	assert.Equal(t, `invalid country code: "ZZ"`, err.Error())
	assert.True(t, errors.Is(err, ErrUnknownCountry))
}

func TestFormat(t *testing.T) {
	format, err := Format("AF")
	require.NoError(t, err)
	assert.Equal(t, `\d{4}`, format)

	format, err = Format("NL")
	require.NoError(t, err)
	assert.Equal(t, `\d{4} ?[A-Z]{2}`, format)

	format, err = Format("AE")
	require.NoError(t, err)
	assert.Equal(t, "", format)
}

func TestHasCountry(t *testing.T) {
	assert.True(t, HasCountry("GB"))
	assert.True(t, HasCountry("AC"))
	assert.True(t, HasCountry("TA"))
	assert.True(t, HasCountry("IC"))
	assert.True(t, HasCountry("KO"))
	assert.False(t, HasCountry("ZZ"))
}

func TestCountries(t *testing.T) {
	codes := Countries()
	require.Len(t, codes, 255)
	assert.Equal(t, "AC", codes[0])
	assert.Equal(t, "ZW", codes[len(codes)-1])
	assert.IsNonDecreasing(t, codes)

	for _, code := range codes {
		assert.Len(t, code, 2)
		assert.True(t, HasCountry(code))
	}
}

var escapes = regexp.MustCompile(`\\.`)

func TestEveryFormatCompiles(t *testing.T) {
	for code, format := range formats {
		if format == "" {
			assert.NotContains(t, patterns, code)
			continue
		}

		require.Contains(t, patterns, code)

		literals := escapes.ReplaceAllString(format, "")
		assert.Equal(t, literals, upperASCII(literals), "%s format has lower-case letters", code)
	}
}

func TestIsValidIsIdempotent(t *testing.T) {
	v := NewValidator()

	for i := 0; i < 3; i++ {
		ok, err := v.IsValid("CA", "k1a0b1", true)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = v.IsValid("CA", "k1a0b1", false)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestUpperASCII(t *testing.T) {
	assert.Equal(t, "K1A 0B1", upperASCII("k1a 0b1"))
	assert.Equal(t, "\u212A\u017F\u00E9", upperASCII("\u212A\u017F\u00E9"))
	assert.Equal(t, "", upperASCII(""))
}

type failingChecker struct{}

func (failingChecker) IsValid(string, string, bool) (bool, error) {
	return false, errors.New("boom")
}

func TestClassify(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		country  string
		postcode string
		want     Outcome
	}{
		{"CH", "8001", Valid},
		{"CH", "800", Invalid},
		{"ZZ", "8001", UnknownCountry},
		{"AE", "", Valid},
	}

	for _, tt := range tests {
		got, err := Classify(v, tt.country, tt.postcode, false)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %q", tt.country, tt.postcode)
	}

	_, err := Classify(failingChecker{}, "CH", "8001", false)
	assert.EqualError(t, err, "boom")
}
