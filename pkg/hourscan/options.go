// Package hourscan searches a folder tree of hours workbooks for the rows of
// one student identifier.
package hourscan

import (
	"time"

	"github.com/ukaji3/hourscan-go/pkg/hourscan/parser"
	"go.uber.org/zap"
)

// DefaultMaxFileSize is the largest workbook that is opened (100 MiB).
const DefaultMaxFileSize int64 = 100 * 1024 * 1024

// Options configures search behavior.
type Options struct {
	// Logger receives progress and per-file/per-sheet failures. Nil discards logs.
	Logger *zap.Logger
	// Rules drives header classification. The zero value uses DefaultHeaderRules.
	Rules parser.HeaderRules
	// MaxFileSize is the size limit in bytes. Zero uses DefaultMaxFileSize.
	MaxFileSize int64
	// Concurrency is the number of workbooks scanned at once. Values below 2
	// scan sequentially in discovery order.
	Concurrency int
	// Now supplies the fallback date for period inference. Nil uses time.Now.
	Now func() time.Time
}

// DefaultOptions returns default search options.
func DefaultOptions() Options {
	return Options{
		Rules:       parser.DefaultHeaderRules(),
		MaxFileSize: DefaultMaxFileSize,
		Concurrency: 1,
	}
}

// ResolveLogger returns the configured logger or a no-op logger.
func (o Options) ResolveLogger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// ResolveRules returns the configured header rules, or the defaults when unset.
func (o Options) ResolveRules() parser.HeaderRules {
	r := o.Rules
	if len(r.IdentifierAliases) == 0 && r.CategoryA == "" && r.CategoryB == "" && r.PendingMarker == "" {
		return parser.DefaultHeaderRules()
	}
	return r
}

// ResolveMaxFileSize returns the effective size limit.
func (o Options) ResolveMaxFileSize() int64 {
	if o.MaxFileSize > 0 {
		return o.MaxFileSize
	}
	return DefaultMaxFileSize
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
