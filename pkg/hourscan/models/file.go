// Package models defines data structures for hours record search.
package models

// FileDescriptor identifies one candidate workbook found under a search root.
type FileDescriptor struct {
	// Path is the absolute path of the file.
	Path string `json:"path"`
	// Name is the base file name.
	Name string `json:"name"`
	// RelPath is the path relative to the search root.
	RelPath string `json:"rel_path"`
}
