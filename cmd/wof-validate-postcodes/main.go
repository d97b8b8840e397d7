package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sfomuseum/go-flags/flagset"
	"github.com/whosonfirst/wof-postcode-formats/batch"
	"github.com/whosonfirst/wof-postcode-formats/postcodecsv"
	"github.com/whosonfirst/wof-postcode-formats/postcodevalidator"
	"github.com/whosonfirst/wof-postcode-formats/wofdata"
)

var country string
var postcode string
var format string
var list bool
var csvPath string
var wofDataPath string
var deprecate bool
var dryRun bool
var deprecatedDate string
var caseSensitive bool
var upperCountry bool
var workers int
var verbose bool

func defaultFlagSet() *flag.FlagSet {
	fs := flagset.NewFlagSet("wof-validate-postcodes")

	fs.StringVar(&country, "country", "", "The ISO 3166 two-letter country code to validate -postcode against")
	fs.StringVar(&postcode, "postcode", "", "A single postcode to validate")
	fs.StringVar(&format, "format", "", "Print the postcode format for this country code and exit")
	fs.BoolVar(&list, "list", false, "Print every country code and its postcode format and exit")
	fs.StringVar(&csvPath, "csv-path", "", "The path to a CSV file with country and postcode columns to validate")
	fs.StringVar(&wofDataPath, "wof-data-path", "", "The path to a WOF data directory whose postalcode records should be audited")
	fs.BoolVar(&deprecate, "deprecate", false, "Deprecate WOF postalcode records whose name is not a valid postcode")
	fs.BoolVar(&dryRun, "dry-run", false, "Set to true to do nothing")
	fs.StringVar(&deprecatedDate, "deprecated-date", "", "The YYYY-MM-DD date to record as edtf:deprecated. Defaults to today")
	fs.BoolVar(&caseSensitive, "case-sensitive", false, "Require letters in postcodes to match the case of the format")
	fs.BoolVar(&upperCountry, "upper-country", false, "Upper-case country codes from -csv-path before looking them up")
	fs.IntVar(&workers, "workers", 0, "The number of CSV records to validate at once. Defaults to GOMAXPROCS")
	fs.BoolVar(&verbose, "verbose", false, "Enable verbose logging")

	return fs
}

func main() {
	fs := defaultFlagSet()
	flagset.Parse(fs)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "wof-validate-postcodes",
		ReportTimestamp: true,
	})

	err := flagset.SetFlagsFromEnvVars(fs, "WOF_VALIDATE")
	if err != nil {
		logger.Fatal("Failed to set flags from environment", "error", err)
	}

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	ctx := context.Background()
	v := postcodevalidator.NewValidator()

	switch {
	case list:
		err = printFormats(os.Stdout, v)
	case format != "":
		err = printFormat(os.Stdout, v, format)
	case csvPath != "":
		err = validateCSV(ctx, v, logger)
	case wofDataPath != "":
		err = auditWOFData(ctx, v, logger)
	case country != "":
		err = validateOne(v)
	default:
		fs.PrintDefaults()
		os.Exit(2)
	}

	if err != nil {
		logger.Fatal(err)
	}
}

// printFormats writes every country code and its format, one per line.
func printFormats(wr io.Writer, v *postcodevalidator.Validator) error {
	for _, code := range v.Countries() {
		// Countries only returns codes from the table, so Format cannot fail here.
		f, err := v.Format(code)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(wr, "%s\t%s\n", code, f)
		if err != nil {
			return err
		}
	}

	return nil
}

func printFormat(wr io.Writer, v *postcodevalidator.Validator, countryCode string) error {
	f, err := v.Format(countryCode)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(wr, f)
	return err
}

var errInvalidPostcode = errors.New("invalid postcode")

func validateOne(v *postcodevalidator.Validator) error {
	ok, err := v.IsValid(country, postcode, caseSensitive)
	if err != nil {
		return err
	}

	if !ok {
		fmt.Println("invalid")
		return fmt.Errorf("%w %q for %s", errInvalidPostcode, postcode, country)
	}

	fmt.Println("valid")
	return nil
}

func validateCSV(ctx context.Context, v *postcodevalidator.Validator, logger *log.Logger) error {
	logger.Info("Reading postcodes", "path", csvPath)

	c := postcodecsv.NewPostcodeCSV(csvPath)
	err := c.Build()
	if err != nil {
		return err
	}

	logger.Info("Validating postcodes", "count", c.Len())

	opts := batch.Options{
		Workers:          workers,
		CaseSensitive:    caseSensitive,
		UpperCaseCountry: upperCountry,
	}

	report, err := batch.Run(ctx, v, c.Records(), opts, logger.WithPrefix("batch"))
	if err != nil {
		return err
	}

	for _, r := range report.Results {
		fmt.Printf("%s\t%s\t%q\t%s\n", r.Record.ID, r.Record.Country, r.Record.Postcode, r.Outcome)
	}

	logger.Info("Stats", "total", report.Total, "valid", report.Valid, "invalid", report.Invalid, "unknown_country", report.UnknownCountry)
	return nil
}

func auditWOFData(ctx context.Context, v *postcodevalidator.Validator, logger *log.Logger) error {
	if dryRun {
		logger.Info("Performing dry run")
	}

	opts := wofdata.AuditOptions{
		CaseSensitive: caseSensitive,
		Deprecate:     deprecate,
		DryRun:        dryRun,
	}

	if deprecatedDate != "" {
		date, err := time.Parse("2006-01-02", deprecatedDate)
		if err != nil {
			return fmt.Errorf("invalid -deprecated-date flag: %w", err)
		}
		opts.Date = date
	}

	logger.Info("Walking over WOF postcodes", "path", wofDataPath)

	expOpts, err := wofdata.NewExportOptions(ctx)
	if err != nil {
		return err
	}

	wof := wofdata.NewWOFData(wofDataPath, expOpts, logger.WithPrefix("wofdata"))
	report, err := wof.Audit(v, opts)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	for _, r := range report.Results {
		fmt.Printf("%d\t%s\t%q\t%s\n", r.Postcode.ID, r.Postcode.Country, r.Postcode.Name, r.Outcome)
	}

	logger.Info("Stats", "checked", report.Checked, "valid", report.Valid, "invalid", report.Invalid, "unknown_country", report.UnknownCountry, "deprecated", report.Deprecated)
	return nil
}
