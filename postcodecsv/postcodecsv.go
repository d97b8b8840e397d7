package postcodecsv

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/smartystreets/scanners/csv"
)

// ErrMissingColumn is returned by Build when the header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

var requiredColumns = []string{"country", "postcode"}

// Record is a single row of a postcode CSV. The id column is optional.
type Record struct {
	ID       string `csv:"id"`
	Country  string `csv:"country"`
	Postcode string `csv:"postcode"`
}

// PostcodeCSV holds the rows of a CSV file of country and postcode pairs, in file order
type PostcodeCSV struct {
	records []*Record
	path    string
}

// NewPostcodeCSV creates a new PostcodeCSV for the file at the path specified
func NewPostcodeCSV(path string) *PostcodeCSV {
	return &PostcodeCSV{path: path}
}

// Build reads every row of the CSV. Values are kept exactly as written,
// surrounding whitespace included.
func (c *PostcodeCSV) Build() error {
	f, err := os.Open(c.path)
	if err != nil {
		return err
	}
	defer f.Close()

	err = checkHeader(f)
	if err != nil {
		return fmt.Errorf("invalid header in %s: %w", c.path, err)
	}

	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		return err
	}

	scanner, err := csv.NewStructScanner(f)
	if err != nil {
		return fmt.Errorf("failed to read header of %s: %w", c.path, err)
	}

	line := 1
	for scanner.Scan() {
		line++

		var record Record
		if err := scanner.Populate(&record); err != nil {
			return fmt.Errorf("failed to read %s line %d: %w", c.path, line, err)
		}

		c.records = append(c.records, &record)
	}

	return scanner.Error()
}

// Len returns the number of rows read by Build
func (c *PostcodeCSV) Len() int {
	return len(c.records)
}

// Records returns the rows read by Build, in file order
func (c *PostcodeCSV) Records() []*Record {
	return c.records
}

// checkHeader reads the first row of r and makes sure every required column is present.
func checkHeader(r io.Reader) error {
	scanner := csv.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Error(); err != nil {
			return err
		}

		return fmt.Errorf("%w: empty file", ErrMissingColumn)
	}

	seen := make(map[string]bool)
	for _, name := range scanner.Record() {
		seen[name] = true
	}

	var missing []string
	for _, name := range requiredColumns {
		if !seen[name] {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return nil
}
