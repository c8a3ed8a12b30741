// Package report turns a year specification into an HTML table of Easter Sundays.
package report

import (
	"fmt"

	"github.com/username/easter-report/internal/calendar"
	"github.com/username/easter-report/internal/yearspec"
	"go.uber.org/zap"
)

// Generator computes Easter dates for a year specification and writes the report
type Generator struct {
	opts   Options
	logger *zap.Logger
}

// NewGenerator creates a new Generator
func NewGenerator(opts Options, logger *zap.Logger) *Generator {
	return &Generator{
		opts:   opts,
		logger: logger,
	}
}

// Compute parses spec and returns Easter Sunday for every year in order
func (g *Generator) Compute(spec string) ([]calendar.EasterDate, error) {
	years, err := yearspec.Parse(spec)
	if err != nil {
		return nil, err
	}

	return calendar.EasterDates(years), nil
}

// Generate validates filename, computes the dates and writes the report.
// The filename is checked before any parsing takes place.
func (g *Generator) Generate(spec, filename string) ([]calendar.EasterDate, error) {
	if !ValidFilename(filename) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}

	dates, err := g.Compute(spec)
	if err != nil {
		return nil, err
	}

	if err := WriteFile(filename, dates, g.opts); err != nil {
		return nil, err
	}

	return dates, nil
}

// Run generates the report and reports the outcome as a Result.
// Errors are logged here and never returned.
func (g *Generator) Run(spec, filename string) Result {
	dates, err := g.Generate(spec, filename)
	result := ResultFromError(err)

	if err != nil {
		g.logger.Error("Easter report failed",
			zap.String("spec", spec),
			zap.String("output", filename),
			zap.Stringer("result", result),
			zap.Error(err))
		return result
	}

	g.logger.Info("Easter report written",
		zap.String("output", filename),
		zap.Int("rows", len(dates)))

	return result
}
