package fs

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/lumi"
	"golang.org/x/sync/errgroup"
)

// Indexer walks directory roots and stores their entries in a lumi.FileIndex.
type Indexer struct {
	Index       lumi.FileIndex
	Concurrency int

	// SkipHidden skips files and folders whose name starts with a dot.
	SkipHidden bool
}

// IndexResult holds the outcome of an indexing run.
type IndexResult struct {
	Roots  int
	Failed int
	Files  int

	// Bytes is the total size of the indexed files.
	Bytes int64
}

// ProgressEvent reports progress during an indexing run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Root      string
	Files     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting indexing progress.
type ProgressFunc func(event ProgressEvent)

type rootResult struct {
	root  string
	files int
	bytes int64
	err   error
}

// IndexRoots walks every root concurrently and replaces its entries in the
// index. A failing root is reported and does not stop the others.
func (x *Indexer) IndexRoots(ctx context.Context, roots []string, progress ProgressFunc) (*IndexResult, error) {
	if len(roots) == 0 {
		return nil, lumi.Errorf(lumi.EINVALID, "at least one root required")
	}

	concurrency := x.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(roots)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan rootResult, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, root := range roots {
			g.Go(func() error {
				resultCh <- x.indexRoot(gctx, root)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed atomic.Int64
	result := &IndexResult{}
	for r := range resultCh {
		completed.Add(1)
		if r.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					Root:      r.root,
					Error:     r.err,
				})
			}
			continue
		}
		result.Roots++
		result.Files += r.files
		result.Bytes += r.bytes
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				Root:      r.root,
				Files:     r.files,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return result, nil
}

func (x *Indexer) indexRoot(ctx context.Context, root string) rootResult {
	abs, err := filepath.Abs(root)
	if err != nil {
		return rootResult{root: root, err: err}
	}

	entries, err := x.Walk(ctx, abs)
	if err != nil {
		return rootResult{root: abs, err: err}
	}
	if err := x.Index.ReplaceFiles(ctx, abs, entries); err != nil {
		return rootResult{root: abs, err: err}
	}
	var size int64
	for _, e := range entries {
		size += e.Size
	}
	return rootResult{root: abs, files: len(entries), bytes: size}
}

// Walk collects every file and folder below root. Unreadable subfolders are
// skipped; an unreadable root is an error.
func (x *Indexer) Walk(ctx context.Context, root string) ([]*lumi.FileEntry, error) {
	var entries []*lumi.FileEntry
	children := make(map[string]int)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return lumi.Errorf(lumi.ENOTFOUND, "cannot read root %s: %v", root, err)
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			if !d.IsDir() {
				return lumi.Errorf(lumi.EINVALID, "root %s is not a folder", root)
			}
			return nil
		}
		if x.SkipHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		dir := filepath.Dir(path)
		children[dir]++

		e := &lumi.FileEntry{
			Path:       path,
			Name:       d.Name(),
			Dir:        dir,
			IsDir:      d.IsDir(),
			ModifiedAt: info.ModTime(),
		}
		if !e.IsDir {
			e.Size = info.Size()
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if e.IsDir {
			e.ChildCount = children[e.Path]
		}
	}
	return entries, nil
}
