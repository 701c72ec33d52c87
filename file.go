package lumi

import (
	"context"
	"time"
)

// FileEntry is one file or folder recorded in a local index.
type FileEntry struct {
	Path       string    `json:"path"`
	Name       string    `json:"name"`
	Dir        string    `json:"dir"`
	IsDir      bool      `json:"isDir"`
	Size       int64     `json:"size"`
	ChildCount int       `json:"childCount"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *FileEntry) Validate() error {
	if e.Path == "" {
		return Errorf(EINVALID, "file entry path required")
	}
	if e.Name == "" {
		return Errorf(EINVALID, "file entry name required")
	}
	return nil
}

// FileIndex stores file entries for local searching.
type FileIndex interface {
	// ReplaceFiles removes every entry under root and stores entries in its place.
	ReplaceFiles(ctx context.Context, root string, entries []*FileEntry) error

	// CountFiles returns the number of indexed entries.
	CountFiles(ctx context.Context) (int, error)
}
