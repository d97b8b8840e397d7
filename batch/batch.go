package batch

import (
	"context"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/whosonfirst/wof-postcode-formats/postcodecsv"
	"github.com/whosonfirst/wof-postcode-formats/postcodevalidator"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Workers bounds the number of records validated at once. Zero means GOMAXPROCS.
	Workers       int
	CaseSensitive bool
	// UpperCaseCountry upper-cases country codes before lookup.
	UpperCaseCountry bool
}

type Result struct {
	Record  *postcodecsv.Record
	Outcome postcodevalidator.Outcome
}

// Report summarises a batch run. Results holds only the records that were
// not valid, in input order.
type Report struct {
	Total          uint64
	Valid          uint64
	Invalid        uint64
	UnknownCountry uint64
	Results        []*Result
}

// Run validates every record and returns a Report. Unknown country codes are
// counted separately from invalid postcodes and do not stop the run.
func Run(ctx context.Context, v postcodevalidator.Checker, records []*postcodecsv.Record, opts Options, logger *log.Logger) (*Report, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]postcodevalidator.Outcome, len(records))

	var validCounter uint64
	var invalidCounter uint64
	var unknownCounter uint64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, r := range records {
		if gctx.Err() != nil {
			break
		}

		i, r := i, r

		g.Go(func() error {
			country := r.Country
			if opts.UpperCaseCountry {
				country = strings.ToUpper(country)
			}

			outcome, err := postcodevalidator.Classify(v, country, r.Postcode, opts.CaseSensitive)
			if err != nil {
				return err
			}

			switch outcome {
			case postcodevalidator.UnknownCountry:
				logger.Debug("Unknown country", "id", r.ID, "country", r.Country)
				atomic.AddUint64(&unknownCounter, 1)
			case postcodevalidator.Invalid:
				logger.Debug("Invalid postcode", "id", r.ID, "country", r.Country, "postcode", r.Postcode)
				atomic.AddUint64(&invalidCounter, 1)
			default:
				atomic.AddUint64(&validCounter, 1)
			}

			outcomes[i] = outcome
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{
		Total:          uint64(len(records)),
		Valid:          atomic.LoadUint64(&validCounter),
		Invalid:        atomic.LoadUint64(&invalidCounter),
		UnknownCountry: atomic.LoadUint64(&unknownCounter),
	}

	for i, o := range outcomes {
		if o != postcodevalidator.Valid {
			report.Results = append(report.Results, &Result{Record: records[i], Outcome: o})
		}
	}

	return report, nil
}
