// Package discovery finds candidate workbooks under a directory tree.
package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/hourscan-go/pkg/hourscan/models"
	"go.uber.org/zap"
)

// LockMarker is the name fragment spreadsheet editors use for lock files.
const LockMarker = "~$"

// Extensions lists the recognized workbook extensions (lower case).
var Extensions = []string{".xlsx", ".xls"}

// ExcludedDirs lists directory names (lower case) that are never descended into.
var ExcludedDirs = []string{"node_modules", "dist", "build", "__pycache__"}

// Discover walks root depth-first and returns every eligible workbook.
// Directories that cannot be read are skipped with a warning. Symlinked files
// and directories are followed; each directory is walked at most once, so
// link cycles terminate. The caller is responsible for checking that root exists.
func Discover(root string, logger *zap.Logger) []models.FileDescriptor {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return walk(os.DirFS(root), root, logger)
}

// walker collects workbooks from fsys, reporting paths under root.
type walker struct {
	fsys    fs.FS
	root    string
	logger  *zap.Logger
	visited map[string]bool
	files   []models.FileDescriptor
}

func walk(fsys fs.FS, root string, logger *zap.Logger) []models.FileDescriptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &walker{fsys: fsys, root: root, logger: logger, visited: make(map[string]bool)}
	w.walkDir(".")
	return w.files
}

func (w *walker) walkDir(dir string) {
	_ = fs.WalkDir(w.fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("cannot read directory", zap.String("path", w.osPath(p)), zap.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if p != dir && IsExcludedDir(d.Name()) {
				return fs.SkipDir
			}
			if !w.firstVisit(p) {
				w.logger.Debug("directory already walked", zap.String("path", w.osPath(p)))
				return fs.SkipDir
			}
			if p != "." {
				w.logger.Debug("searching subfolder", zap.String("path", w.osPath(p)))
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			info, err := fs.Stat(w.fsys, p)
			if err != nil {
				w.logger.Debug("broken link", zap.String("path", w.osPath(p)), zap.Error(err))
				return nil
			}
			if info.IsDir() {
				if !IsExcludedDir(d.Name()) {
					w.walkDir(p)
				}
				return nil
			}
			if !info.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}

		if IsWorkbookName(d.Name()) {
			w.add(p, d.Name())
		}
		return nil
	})
}

func (w *walker) add(p, name string) {
	rel := filepath.FromSlash(p)
	w.files = append(w.files, models.FileDescriptor{
		Path:    w.osPath(p),
		Name:    name,
		RelPath: rel,
	})
	w.logger.Debug("found workbook", zap.String("rel_path", rel))
}

// firstVisit records the directory at p by its resolved location and reports
// whether it had not been seen before.
func (w *walker) firstVisit(p string) bool {
	key := w.osPath(p)
	if resolved, err := filepath.EvalSymlinks(key); err == nil {
		key = resolved
	}
	if w.visited[key] {
		return false
	}
	w.visited[key] = true
	return true
}

func (w *walker) osPath(p string) string {
	return filepath.Join(w.root, filepath.FromSlash(p))
}

// IsExcludedDir reports whether a directory name is hidden or denylisted.
func IsExcludedDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	lower := strings.ToLower(name)
	for _, excluded := range ExcludedDirs {
		if lower == excluded {
			return true
		}
	}
	return false
}

// IsWorkbookName reports whether a file name is an eligible workbook.
func IsWorkbookName(name string) bool {
	if strings.Contains(name, LockMarker) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range Extensions {
		if ext == want {
			return true
		}
	}
	return false
}
