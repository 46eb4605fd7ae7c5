package hourscan

import (
	"fmt"
	"os"
	"strings"

	"github.com/ukaji3/hourscan-go/pkg/hourscan/models"
	"github.com/ukaji3/hourscan-go/pkg/hourscan/parser"
	"github.com/ukaji3/hourscan-go/pkg/hourscan/period"
	"go.uber.org/zap"
)

// ScanWorkbook returns every row matching identifier across all sheets of one
// workbook. A returned error means the whole file was unusable; sheets that
// fail are logged and reported in the failures slice while their siblings are
// still scanned.
func ScanWorkbook(file models.FileDescriptor, identifier string, opts Options) ([]models.SearchResult, []models.Failure, error) {
	logger := opts.ResolveLogger().With(zap.String("file", file.Path))

	size, err := checkFile(file.Path, opts.ResolveMaxFileSize())
	if err != nil {
		return nil, nil, NewScanError(file.Path, "", "stat", err)
	}
	logger.Debug("reading workbook", zap.String("name", file.Name), zap.Int64("kb", size/1024))

	opened := parser.Open(file.Path)
	if !opened.OK() {
		return nil, nil, NewScanError(file.Path, "", "open", opened.Err)
	}
	defer opened.Workbook.Close()
	if opened.Fallback {
		logger.Info("direct read failed, parsed from memory buffer", zap.Stringer("format", opened.Format))
	}

	p := period.InferAt(file.Path, file.Name, opts.now())
	return scanOpened(opened.Workbook, file, p, identifier, opts.ResolveRules(), logger)
}

// scanOpened folds the sheets of an opened workbook into results and failures.
func scanOpened(wb parser.Workbook, file models.FileDescriptor, p models.Period, identifier string, rules parser.HeaderRules, logger *zap.Logger) ([]models.SearchResult, []models.Failure, error) {
	sheets := wb.SheetNames()
	if len(sheets) == 0 {
		return nil, nil, NewScanError(file.Path, "", "open", ErrNoSheets)
	}
	logger.Debug("processing sheets", zap.Int("count", len(sheets)))

	var (
		results  []models.SearchResult
		failures []models.Failure
	)
	for _, sheet := range sheets {
		found, err := scanSheet(wb, sheet, file, p, identifier, rules, logger)
		if err != nil {
			logger.Info("skipping sheet", zap.String("sheet", sheet), zap.Error(err))
			failures = append(failures, models.Failure{File: file.Path, Sheet: sheet, Reason: err.Error()})
			continue
		}
		logger.Debug("sheet scanned", zap.String("sheet", sheet), zap.Int("matches", len(found)))
		results = append(results, found...)
	}
	return results, failures, nil
}

func scanSheet(wb parser.Workbook, sheet string, file models.FileDescriptor, p models.Period, identifier string, rules parser.HeaderRules, logger *zap.Logger) (results []models.SearchResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			results, err = nil, NewScanError(file.Path, sheet, "extract", fmt.Errorf("panic: %v", rec))
		}
	}()

	rows, err := wb.Rows(sheet)
	if err != nil {
		return nil, NewScanError(file.Path, sheet, "rows", err)
	}
	frame, err := parser.NewSheetFrame(rows)
	if err != nil {
		return nil, NewScanError(file.Path, sheet, "frame", err)
	}

	layout := parser.ClassifyHeaders(frame.Headers, rules)
	if !layout.HasIdentifier() {
		logger.Debug("available columns", zap.String("sheet", sheet), zap.String("headers", joinLabels(frame.Headers)))
		return nil, NewScanError(file.Path, sheet, "headers", ErrNoIdentifierColumn)
	}
	if layout.Inverted() {
		return nil, NewScanError(file.Path, sheet, "headers", ErrInvertedBoundaries)
	}

	matches := parser.MatchRows(frame, layout.IdentifierCol, identifier)
	if len(matches) == 0 {
		return nil, nil
	}

	notes, err := wb.Annotations(sheet)
	if err != nil {
		logger.Warn("cannot read cell notes", zap.String("sheet", sheet), zap.Error(err))
		notes = nil
	}
	extractor := &parser.Extractor{
		Frame:       frame,
		Layout:      layout,
		Rules:       rules,
		Annotations: notes,
	}

	for _, idx := range matches {
		a, b := extractor.Extract(idx)
		results = append(results, models.SearchResult{
			File:      file.Name,
			FilePath:  file.Path,
			Sheet:     sheet,
			Period:    p,
			RowIndex:  idx + 1,
			CategoryA: a,
			CategoryB: b,
		})
	}
	return results, nil
}

// checkFile verifies the workbook is a readable, non-empty regular file under
// the size limit, and returns its size.
func checkFile(path string, maxSize int64) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.Mode().IsRegular() {
		return 0, ErrNotRegular
	}
	if info.Size() == 0 {
		return 0, ErrFileEmpty
	}
	if info.Size() > maxSize {
		return 0, fmt.Errorf("%w (%dMB)", ErrFileTooLarge, info.Size()/1024/1024)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("cannot read file: %w", err)
	}
	f.Close()
	return info.Size(), nil
}

func joinLabels(headers []string) string {
	labels := make([]string, 0, len(headers))
	for _, h := range headers {
		if h != "" {
			labels = append(labels, h)
		}
	}
	return strings.Join(labels, ", ")
}
