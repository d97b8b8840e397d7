package wofdata

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/saracen/walker"
	"github.com/sfomuseum/go-edtf"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	export "github.com/whosonfirst/go-whosonfirst-export/v2"
	"github.com/whosonfirst/go-whosonfirst-feature/properties"
	id "github.com/whosonfirst/go-whosonfirst-id"
	uri "github.com/whosonfirst/go-whosonfirst-uri"
	"github.com/whosonfirst/wof-postcode-formats/postcodevalidator"
)

const edtfDateLayout = "2006-01-02"

// Postcode is a postalcode record read from a WOF data directory.
type Postcode struct {
	Path    string
	ID      int64
	Name    string
	Country string
}

var errNoNewIDs = errors.New("refusing to mint a new wof:id")

// existingIDProvider hands out no IDs. Every feature exported here was read
// from disk and already has a wof:id.
type existingIDProvider struct{}

var _ id.Provider = existingIDProvider{}

func (existingIDProvider) NewID(ctx context.Context) (int64, error) {
	return -1, errNoNewIDs
}

// NewExportOptions returns export options that never ask for a new wof:id.
func NewExportOptions(ctx context.Context) (*export.Options, error) {
	return export.NewDefaultOptionsWithProvider(ctx, existingIDProvider{})
}

type WOFData struct {
	dataPath      string
	exportOptions *export.Options
	logger        *log.Logger
}

func NewWOFData(dataPath string, expOpts *export.Options, logger *log.Logger) *WOFData {
	return &WOFData{dataPath: dataPath, exportOptions: expOpts, logger: logger}
}

// Iterate fires the provided callback for every current postalcode feature
// in the WOFData path. The callback is called from several goroutines.
func (d *WOFData) Iterate(cb func(pc *Postcode, body []byte) error) error {
	walkFn := func(path string, fi os.FileInfo) error {
		if fi.IsDir() {
			return nil
		}

		isWOF, err := uri.IsWOFFile(path)
		if err != nil || !isWOF {
			return nil
		}

		isAlt, err := uri.IsAltFile(path)
		if err != nil || isAlt {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		placetype, err := properties.Placetype(body)
		if err != nil {
			return err
		}

		if placetype != "postalcode" {
			return nil
		}

		if isDeprecated(body) {
			return nil
		}

		id, err := properties.Id(body)
		if err != nil {
			return err
		}

		name, err := properties.Name(body)
		if err != nil {
			return err
		}

		country := ""
		countryResult := gjson.GetBytes(body, "properties.wof:country")
		if countryResult.Exists() {
			country = countryResult.String()
		}

		return cb(&Postcode{Path: path, ID: id, Name: name, Country: country}, body)
	}

	errorFn := walker.WithErrorCallback(func(path string, err error) error {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	})

	return walker.Walk(d.dataPath, walkFn, errorFn)
}

type AuditOptions struct {
	CaseSensitive bool
	// Deprecate marks postcodes that fail validation as deprecated.
	Deprecate bool
	DryRun    bool
	// Date is written to edtf:deprecated. Zero means today.
	Date time.Time
}

type AuditResult struct {
	Postcode *Postcode
	Outcome  postcodevalidator.Outcome
}

// AuditReport summarises an audit. Results holds the postcodes that were not
// valid, ordered by path.
type AuditReport struct {
	Checked        uint64
	Valid          uint64
	Invalid        uint64
	UnknownCountry uint64
	Deprecated     uint64
	Results        []*AuditResult
}

// Audit validates the name of every current postalcode feature against the
// format for its wof:country.
func (d *WOFData) Audit(v postcodevalidator.Checker, opts AuditOptions) (*AuditReport, error) {
	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}

	report := &AuditReport{}
	resultsMutex := sync.Mutex{}

	var checkedCounter uint64
	var validCounter uint64
	var invalidCounter uint64
	var unknownCounter uint64
	var deprecatedCounter uint64

	cb := func(pc *Postcode, body []byte) error {
		atomic.AddUint64(&checkedCounter, 1)

		outcome, err := postcodevalidator.Classify(v, pc.Country, pc.Name, opts.CaseSensitive)
		if err != nil {
			return err
		}

		switch outcome {
		case postcodevalidator.Valid:
			atomic.AddUint64(&validCounter, 1)
			return nil
		case postcodevalidator.UnknownCountry:
			d.logger.Warn("Unknown country", "id", pc.ID, "name", pc.Name, "country", pc.Country)
			atomic.AddUint64(&unknownCounter, 1)
		default:
			d.logger.Info("Invalid postcode", "id", pc.ID, "name", pc.Name, "country", pc.Country)
			atomic.AddUint64(&invalidCounter, 1)
		}

		resultsMutex.Lock()
		report.Results = append(report.Results, &AuditResult{Postcode: pc, Outcome: outcome})
		resultsMutex.Unlock()

		if outcome != postcodevalidator.Invalid {
			return nil
		}

		if !opts.Deprecate {
			return nil
		}

		changed, err := d.DeprecateFeature(pc, body, date, opts.DryRun)
		if err != nil {
			return err
		}

		if changed {
			d.logger.Info("Deprecated invalid postcode", "id", pc.ID, "name", pc.Name)
			atomic.AddUint64(&deprecatedCounter, 1)
		}

		return nil
	}

	err := d.Iterate(cb)
	if err != nil {
		return nil, err
	}

	report.Checked = atomic.LoadUint64(&checkedCounter)
	report.Valid = atomic.LoadUint64(&validCounter)
	report.Invalid = atomic.LoadUint64(&invalidCounter)
	report.UnknownCountry = atomic.LoadUint64(&unknownCounter)
	report.Deprecated = atomic.LoadUint64(&deprecatedCounter)

	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].Postcode.Path < report.Results[j].Postcode.Path
	})

	return report, nil
}

// DeprecateFeature deprecates the provided feature and writes it back to
// the file it was read from. Nothing is written when dryRun is set, but
// changed still reports whether the export differs.
func (d *WOFData) DeprecateFeature(pc *Postcode, body []byte, date time.Time, dryRun bool) (changed bool, err error) {
	if isDeprecated(body) {
		d.logger.Info("Already deprecated, skipping", "id", pc.ID)
		return
	}

	original := body

	body, err = sjson.SetBytes(body, "properties.edtf:deprecated", date.Format(edtfDateLayout))
	if err != nil {
		return
	}

	body, err = sjson.SetBytes(body, "properties.mz:is_current", 0)
	if err != nil {
		return
	}

	return d.exportFeature(pc.Path, body, original, dryRun)
}

func (d *WOFData) exportFeature(path string, body []byte, original []byte, dryRun bool) (changed bool, err error) {
	var outputBuf bytes.Buffer
	writer := bufio.NewWriter(&outputBuf)

	changed, err = export.ExportChanged(body, original, d.exportOptions, writer)
	if err != nil {
		return
	}

	if !changed || dryRun {
		return
	}

	err = writer.Flush()
	if err != nil {
		return
	}

	d.logger.Debug("Writing to file", "path", path)

	f, err := os.Create(path)
	if err != nil {
		return
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	_, err = f.Write(outputBuf.Bytes())
	return
}

func isDeprecated(body []byte) bool {
	deprecated := edtf.UNSPECIFIED
	result := gjson.GetBytes(body, "properties.edtf:deprecated")
	if result.Exists() {
		deprecated = result.String()
	}

	return deprecated != edtf.UNSPECIFIED
}
