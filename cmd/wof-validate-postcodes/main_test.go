package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whosonfirst/wof-postcode-formats/postcodevalidator"
)

func TestDefaultFlagSet(t *testing.T) {
	fs := defaultFlagSet()
	require.NoError(t, fs.Parse([]string{"-country", "NL", "-postcode", "1234 AB", "-case-sensitive", "-workers", "4"}))

	assert.Equal(t, "NL", country)
	assert.Equal(t, "1234 AB", postcode)
	assert.True(t, caseSensitive)
	assert.Equal(t, 4, workers)
}

func TestValidateOne(t *testing.T) {
	v := postcodevalidator.NewValidator()

	country, postcode, caseSensitive = "CH", "8001", false
	assert.NoError(t, validateOne(v))

	country, postcode = "CH", "800"
	assert.ErrorIs(t, validateOne(v), errInvalidPostcode)

	country, postcode = "ZZ", "800"
	assert.ErrorIs(t, validateOne(v), postcodevalidator.ErrUnknownCountry)
}

func TestPrintFormats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printFormats(&buf, postcodevalidator.NewValidator()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(postcodevalidator.Countries()))
	assert.Equal(t, "AC\tASCN 1ZZ", lines[0])
	assert.Contains(t, lines, "AE\t")
	assert.Contains(t, lines, `NL\t\d{4} ?[A-Z]{2}`)
}

func TestPrintFormat(t *testing.T) {
	v := postcodevalidator.NewValidator()

	var buf bytes.Buffer
	require.NoError(t, printFormat(&buf, v, "AF"))
	assert.Equal(t, "\\d{4}\n", buf.String())

	buf.Reset()
	assert.ErrorIs(t, printFormat(&buf, v, "ZZ"), postcodevalidator.ErrUnknownCountry)
	assert.Empty(t, buf.String())
}
