// Package report implements test-report collection and threshold evaluation.
package report

import (
	"context"
	"encoding/xml"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/matrix/internal/core/domain"
	"go.trai.ch/matrix/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileName is the well-known report path inside a task workspace.
const FileName = "results.xml"

// Collector implements ports.ReportCollector for JUnit-style XML reports.
type Collector struct {
	logger ports.Logger
}

// NewCollector creates a new report Collector.
func NewCollector(logger ports.Logger) *Collector {
	return &Collector{logger: logger}
}

// junitSuite mirrors one <testsuite> element. Only the aggregate counters are
// read; individual test cases stay in the file for the reporting surface.
type junitSuite struct {
	Tests    int `xml:"tests,attr"`
	Errors   int `xml:"errors,attr"`
	Failures int `xml:"failures,attr"`
	Skipped  int `xml:"skipped,attr"`
}

// junitDocument accepts either a <testsuites> root with nested suites or a
// bare <testsuite> root.
type junitDocument struct {
	XMLName xml.Name
	junitSuite
	Suites []junitSuite `xml:"testsuite"`
}

// Collect reads the report at the well-known path, renames it so test names
// stay distinguishable across configurations sharing a report namespace, and
// returns the parsed summary. A missing report yields (nil, nil).
func (c *Collector) Collect(_ context.Context, workspace, configName string) (*domain.TestReportSummary, error) {
	path := filepath.Join(workspace, FileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is workspace-rooted
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn("no test report produced for " + configName)
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read test report")
	}

	summary, err := parse(data, configName)
	if err != nil {
		return nil, err
	}

	tagged := filepath.Join(workspace, "results."+configName+".xml")
	if err := os.Rename(path, tagged); err != nil {
		return nil, zerr.Wrap(err, "failed to tag test report")
	}

	return summary, nil
}

func parse(data []byte, configName string) (*domain.TestReportSummary, error) {
	var doc junitDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		parseErr := zerr.Wrap(err, "failed to parse test report")
		return nil, zerr.With(parseErr, "config", configName)
	}

	summary := &domain.TestReportSummary{
		ConfigName: configName,
		Tests:      doc.Tests,
		Errors:     doc.Errors,
		Failures:   doc.Failures,
		Skips:      doc.Skipped,
	}

	// A <testsuites> root often carries no counters of its own; fall back to
	// summing the nested suites in that case.
	if doc.XMLName.Local == "testsuites" && summary.Tests == 0 {
		for _, suite := range doc.Suites {
			summary.Tests += suite.Tests
			summary.Errors += suite.Errors
			summary.Failures += suite.Failures
			summary.Skips += suite.Skipped
		}
	}

	return summary, nil
}
