package hourscan

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/ukaji3/hourscan-go/pkg/hourscan/discovery"
	"github.com/ukaji3/hourscan-go/pkg/hourscan/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Report is the outcome of one search, including the files that failed.
type Report struct {
	// RunID identifies the search in logs.
	RunID string `json:"run_id"`
	// Root is the searched directory.
	Root string `json:"root"`
	// Identifier is the trimmed search identifier.
	Identifier string `json:"identifier"`
	// Files lists the discovered workbooks in discovery order.
	Files []models.FileDescriptor `json:"files"`
	// Results lists matching rows, grouped by file in discovery order.
	Results []models.SearchResult `json:"results"`
	// Failures lists files and sheets that contributed no results.
	Failures []models.Failure `json:"failures,omitempty"`
}

// Search finds every row whose identifier column equals identifier in the
// workbooks under root.
func Search(root, identifier string, opts Options) ([]models.SearchResult, error) {
	report, err := SearchWithReport(root, identifier, opts)
	if err != nil {
		return nil, err
	}
	return report.Results, nil
}

// SearchWithReport is Search returning the full report. Only input errors are
// returned; unreadable files and sheets are recorded in Report.Failures.
func SearchWithReport(root, identifier string, opts Options) (*Report, error) {
	root = strings.TrimSpace(root)
	identifier = strings.TrimSpace(identifier)
	if root == "" || identifier == "" {
		return nil, ErrInvalidInput
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}

	report := &Report{
		RunID:      uuid.NewString(),
		Root:       root,
		Identifier: identifier,
		Results:    []models.SearchResult{},
		Failures:   []models.Failure{},
	}
	logger := opts.ResolveLogger().With(zap.String("run_id", report.RunID))
	opts.Logger = logger
	logger.Info("search started", zap.String("root", root), zap.String("identifier", identifier))

	report.Files = discovery.Discover(root, logger)
	logger.Info("workbooks found", zap.Int("count", len(report.Files)))
	if len(report.Files) == 0 {
		return nil, ErrNoFiles
	}

	for _, outcome := range scanFiles(report.Files, identifier, opts) {
		report.Results = append(report.Results, outcome.results...)
		report.Failures = append(report.Failures, outcome.failures...)
	}

	logger.Info("search completed",
		zap.Int("results", len(report.Results)),
		zap.Int("failures", len(report.Failures)))
	return report, nil
}

// fileOutcome is the independent accumulator of one workbook.
type fileOutcome struct {
	results  []models.SearchResult
	failures []models.Failure
}

// scanFiles returns one outcome per file, in the order of files.
func scanFiles(files []models.FileDescriptor, identifier string, opts Options) []fileOutcome {
	logger := opts.ResolveLogger()
	outcomes := make([]fileOutcome, len(files))

	scanOne := func(i int) {
		file := files[i]
		logger.Debug("processing file", zap.String("rel_path", file.RelPath))
		results, failures, err := ScanWorkbook(file, identifier, opts)
		if err != nil {
			logger.Warn("error processing file", zap.String("rel_path", file.RelPath), zap.Error(err))
			failures = append(failures, models.Failure{File: file.Path, Reason: err.Error()})
		}
		outcomes[i] = fileOutcome{results: results, failures: failures}
	}

	if opts.Concurrency < 2 {
		for i := range files {
			scanOne(i)
		}
		return outcomes
	}

	var g errgroup.Group
	g.SetLimit(opts.Concurrency)
	for i := range files {
		g.Go(func() error {
			scanOne(i)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}
