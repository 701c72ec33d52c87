package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/lumi"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ lumi.Searcher      = (*FileService)(nil)
	_ lumi.FileIndex     = (*FileService)(nil)
	_ lumi.HealthChecker = (*FileService)(nil)
)

// FileService implements lumi.Searcher and lumi.FileIndex using SQLite.
type FileService struct {
	db *DB

	// Now returns the current time. It anchors dm:today.
	Now func() time.Time
}

// NewFileService creates a new FileService.
func NewFileService(db *DB) *FileService {
	return &FileService{db: db, Now: time.Now}
}

// ReplaceFiles removes every entry previously indexed under root and stores
// entries in its place, in a single transaction.
func (s *FileService) ReplaceFiles(ctx context.Context, root string, entries []*lumi.FileEntry) error {
	if root == "" {
		return lumi.Errorf(lumi.EINVALID, "root required")
	}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := formatTime(s.Now())
	var rootID string
	err = tx.QueryRowContext(ctx, "SELECT id FROM roots WHERE path = ?", root).Scan(&rootID)
	switch {
	case err == sql.ErrNoRows:
		rootID = uuid.New().String()
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO roots (id, path, indexed_at) VALUES (?, ?, ?)", rootID, root, now); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if _, err := tx.ExecContext(ctx, "DELETE FROM files WHERE root_id = ?", rootID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "UPDATE roots SET indexed_at = ? WHERE id = ?", now, rootID); err != nil {
			return err
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO files (id, root_id, path, name, dir, ext, is_dir, size, child_count, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		ext := ""
		if !e.IsDir {
			ext = extOf(e.Name)
		}
		if _, err := stmt.ExecContext(ctx, hashPath(e.Path), rootID, e.Path, e.Name, e.Dir, ext,
			e.IsDir, e.Size, e.ChildCount, formatTime(e.ModifiedAt)); err != nil {
			return fmt.Errorf("failed to insert %s: %w", e.Path, err)
		}
	}

	return tx.Commit()
}

// CountFiles returns the number of indexed entries.
func (s *FileService) CountFiles(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM files").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// FindFileByPath retrieves a single indexed entry.
func (s *FileService) FindFileByPath(ctx context.Context, path string) (*lumi.FileEntry, error) {
	var e lumi.FileEntry
	var modifiedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT path, name, dir, is_dir, size, child_count, modified_at
		FROM files
		WHERE id = ?
	`, hashPath(path)).Scan(&e.Path, &e.Name, &e.Dir, &e.IsDir, &e.Size, &e.ChildCount, &modifiedAt)

	if err == sql.ErrNoRows {
		return nil, lumi.Errorf(lumi.ENOTFOUND, "file not found")
	}
	if err != nil {
		return nil, err
	}

	if e.ModifiedAt, err = parseRFC3339(modifiedAt, "modified_at"); err != nil {
		return nil, err
	}
	return &e, nil
}

// Search parses query and returns at most maxResults matching entries.
// Result paths are the containing folder, matching the Everything client.
func (s *FileService) Search(ctx context.Context, query string, maxResults int, sort lumi.SortMode) ([]*lumi.SearchResult, error) {
	if maxResults <= 0 {
		return nil, lumi.Errorf(lumi.EINVALID, "max results must be positive")
	}
	if !sort.Valid() {
		return nil, lumi.Errorf(lumi.EINVALID, "unsupported sort mode %s", sort)
	}

	q, err := lumi.ParseQuery(query)
	if err != nil {
		return nil, err
	}

	stmt, args := buildSearch(q, maxResults, sort, s.Now())
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]*lumi.SearchResult, 0)
	for rows.Next() {
		var r lumi.SearchResult
		if err := rows.Scan(&r.Name, &r.Path); err != nil {
			return nil, err
		}
		results = append(results, &r)
	}

	return results, rows.Err()
}

// CheckHealth reports whether the index has been populated.
func (s *FileService) CheckHealth(ctx context.Context) lumi.HealthStatus {
	n, err := s.CountFiles(ctx)
	if err != nil {
		return lumi.HealthStatus{Status: lumi.HealthError, Detail: fmt.Sprintf("index unreadable: %v", err)}
	}
	if n == 0 {
		return lumi.HealthStatus{Status: lumi.HealthWarn, Detail: "index is empty; run lumi index"}
	}
	return lumi.HealthStatus{Status: lumi.HealthOK, Detail: fmt.Sprintf("Connected, %d items indexed", n)}
}

// buildSearch translates a parsed query into a SELECT over the files table.
func buildSearch(q *lumi.Query, limit int, sort lumi.SortMode, now time.Time) (string, []any) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT name, dir FROM files WHERE 1=1")

	for _, term := range q.Terms {
		query.WriteString(" AND instr(lower(name), lower(?)) > 0")
		args = append(args, term)
	}
	for _, p := range q.Paths {
		query.WriteString(" AND instr(lower(path), lower(?)) > 0")
		args = append(args, p)
	}

	switch q.Kind {
	case lumi.KindFile:
		query.WriteString(" AND is_dir = 0")
	case lumi.KindFolder:
		query.WriteString(" AND is_dir = 1")
	}

	if q.ChildCount != nil {
		query.WriteString(" AND is_dir = 1 AND child_count = ?")
		args = append(args, *q.ChildCount)
	}

	if len(q.Extensions) > 0 {
		query.WriteString(" AND ext IN (?" + strings.Repeat(", ?", len(q.Extensions)-1) + ")")
		for _, ext := range q.Extensions {
			args = append(args, ext)
		}
	}

	for _, f := range q.Sizes {
		// Op comes from the parser's fixed operator set.
		query.WriteString(" AND is_dir = 0 AND size " + string(f.Op) + " ?")
		args = append(args, f.Bytes)
	}

	if q.ModifiedToday {
		y, m, d := now.Date()
		query.WriteString(" AND modified_at >= ?")
		args = append(args, formatTime(time.Date(y, m, d, 0, 0, 0, 0, now.Location())))
	}

	switch sort {
	case lumi.SortSizeDesc:
		query.WriteString(" ORDER BY size DESC, path")
	case lumi.SortDateModifiedDesc:
		query.WriteString(" ORDER BY modified_at DESC, path")
	default:
		query.WriteString(" ORDER BY name COLLATE NOCASE, path")
	}

	query.WriteString(" LIMIT ?")
	args = append(args, limit)

	return query.String(), args
}
