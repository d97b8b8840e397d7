package batch

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whosonfirst/wof-postcode-formats/postcodecsv"
	"github.com/whosonfirst/wof-postcode-formats/postcodevalidator"
)

func testRecords() []*postcodecsv.Record {
	return []*postcodecsv.Record{
		{ID: "1", Country: "CH", Postcode: "8001"},
		{ID: "2", Country: "CH", Postcode: "800"},
		{ID: "3", Country: "ZZ", Postcode: "12345"},
		{ID: "4", Country: "nl", Postcode: "1234 AB"},
		{ID: "5", Country: "CA", Postcode: "k1a0b1"},
		{ID: "6", Country: "AE", Postcode: ""},
	}
}

func TestRun(t *testing.T) {
	logger := log.New(io.Discard)
	records := testRecords()

	report, err := Run(context.Background(), postcodevalidator.NewValidator(), records, Options{Workers: 2}, logger)
	require.NoError(t, err)

	assert.Equal(t, uint64(6), report.Total)
	assert.Equal(t, uint64(3), report.Valid)
	assert.Equal(t, uint64(1), report.Invalid)
	assert.Equal(t, uint64(2), report.UnknownCountry)

	require.Len(t, report.Results, 3)
	assert.Equal(t, &Result{Record: records[1], Outcome: postcodevalidator.Invalid}, report.Results[0])
	assert.Equal(t, &Result{Record: records[2], Outcome: postcodevalidator.UnknownCountry}, report.Results[1])
	assert.Equal(t, &Result{Record: records[3], Outcome: postcodevalidator.UnknownCountry}, report.Results[2])
}

func TestRunOptions(t *testing.T) {
	logger := log.New(io.Discard)
	records := testRecords()

	report, err := Run(context.Background(), postcodevalidator.NewValidator(), records, Options{CaseSensitive: true, UpperCaseCountry: true}, logger)
	require.NoError(t, err)

	assert.Equal(t, uint64(3), report.Valid)
	assert.Equal(t, uint64(2), report.Invalid)
	assert.Equal(t, uint64(1), report.UnknownCountry)

	require.Len(t, report.Results, 3)
	assert.Equal(t, "2", report.Results[0].Record.ID)
	assert.Equal(t, "3", report.Results[1].Record.ID)
	assert.Equal(t, "5", report.Results[2].Record.ID)
	assert.Equal(t, postcodevalidator.Invalid, report.Results[2].Outcome)
}

type failingValidator struct{}

func (failingValidator) IsValid(string, string, bool) (bool, error) {
	return false, errors.New("boom")
}

func TestRunValidatorError(t *testing.T) {
	_, err := Run(context.Background(), failingValidator{}, testRecords(), Options{}, log.New(io.Discard))
	assert.EqualError(t, err, "boom")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, postcodevalidator.NewValidator(), testRecords(), Options{}, log.New(io.Discard))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunEmpty(t *testing.T) {
	report, err := Run(context.Background(), postcodevalidator.NewValidator(), nil, Options{}, log.New(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, &Report{}, report)
}
