package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/lumi"
	"github.com/fwojciec/lumi/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

var fixedNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

// seed indexes a small tree under C:\Users\me.
func seed(t *testing.T) *sqlite.FileService {
	t.Helper()
	svc := sqlite.NewFileService(setupTestDB(t))
	svc.Now = func() time.Time { return fixedNow }

	yesterday := fixedNow.Add(-24 * time.Hour)
	entries := []*lumi.FileEntry{
		{Path: `C:\Users\me\Docs`, Name: "Docs", Dir: `C:\Users\me`, IsDir: true, ChildCount: 3, ModifiedAt: yesterday},
		{Path: `C:\Users\me\Empty`, Name: "Empty", Dir: `C:\Users\me`, IsDir: true, ChildCount: 0, ModifiedAt: yesterday},
		{Path: `C:\Users\me\Docs\report.pdf`, Name: "report.pdf", Dir: `C:\Users\me\Docs`, Size: 2 << 20, ModifiedAt: fixedNow.Add(-time.Hour)},
		{Path: `C:\Users\me\Docs\budget.XLSX`, Name: "budget.XLSX", Dir: `C:\Users\me\Docs`, Size: 40 << 10, ModifiedAt: yesterday},
		{Path: `C:\Users\me\Docs\movie.mkv`, Name: "movie.mkv", Dir: `C:\Users\me\Docs`, Size: 3 << 30, ModifiedAt: fixedNow.Add(-2 * time.Hour)},
	}
	require.NoError(t, svc.ReplaceFiles(context.Background(), `C:\Users\me`, entries))
	return svc
}

func names(results []*lumi.SearchResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Name)
	}
	return out
}

func TestFileService_ReplaceFiles(t *testing.T) {
	t.Parallel()

	t.Run("stores entries", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		n, err := svc.CountFiles(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 5, n)

		e, err := svc.FindFileByPath(context.Background(), `C:\Users\me\Docs\report.pdf`)
		require.NoError(t, err)
		assert.Equal(t, "report.pdf", e.Name)
		assert.Equal(t, `C:\Users\me\Docs`, e.Dir)
		assert.False(t, e.IsDir)
		assert.Equal(t, int64(2<<20), e.Size)
		assert.True(t, e.ModifiedAt.Equal(fixedNow.Add(-time.Hour)))
	})

	t.Run("replaces previous entries for the same root", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		ctx := context.Background()

		err := svc.ReplaceFiles(ctx, `C:\Users\me`, []*lumi.FileEntry{
			{Path: `C:\Users\me\new.txt`, Name: "new.txt", Dir: `C:\Users\me`, ModifiedAt: fixedNow},
		})
		require.NoError(t, err)

		n, err := svc.CountFiles(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = svc.FindFileByPath(ctx, `C:\Users\me\Docs\report.pdf`)
		assert.Equal(t, lumi.ENOTFOUND, lumi.ErrorCode(err))
	})

	t.Run("keeps other roots", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		ctx := context.Background()

		err := svc.ReplaceFiles(ctx, `D:\Work`, []*lumi.FileEntry{
			{Path: `D:\Work\plan.docx`, Name: "plan.docx", Dir: `D:\Work`, ModifiedAt: fixedNow},
		})
		require.NoError(t, err)

		n, err := svc.CountFiles(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, n)
	})

	t.Run("rejects invalid entries", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFileService(setupTestDB(t))

		err := svc.ReplaceFiles(context.Background(), `C:\`, []*lumi.FileEntry{{Name: "x"}})
		assert.Equal(t, lumi.EINVALID, lumi.ErrorCode(err))

		err = svc.ReplaceFiles(context.Background(), "", nil)
		assert.Equal(t, lumi.EINVALID, lumi.ErrorCode(err))
	})
}

func TestFileService_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		sort  lumi.SortMode
		want  []string
	}{
		{"empty folders", `"C:\Users\me" folder:childcount:0`, lumi.SortDefault, []string{"Empty"}},
		{"largest files first", `"C:\Users\me" file:`, lumi.SortSizeDesc, []string{"movie.mkv", "report.pdf", "budget.XLSX"}},
		{"files modified today newest first", `"C:\Users\me" dm:today file:`, lumi.SortDateModifiedDesc, []string{"report.pdf", "movie.mkv"}},
		{"name term", "report", lumi.SortDefault, []string{"report.pdf"}},
		{"name term is case-insensitive", "BUDGET", lumi.SortDefault, []string{"budget.XLSX"}},
		{"extension", "ext:xlsx", lumi.SortDefault, []string{"budget.XLSX"}},
		{"extension list", "ext:pdf;mkv", lumi.SortDefault, []string{"movie.mkv", "report.pdf"}},
		{"size bound", "size:>1mb", lumi.SortSizeDesc, []string{"movie.mkv", "report.pdf"}},
		{"folders by name", "folder:", lumi.SortDefault, []string{"Docs", "Empty"}},
		{"drive letter path", "C: ext:pdf", lumi.SortDefault, []string{"report.pdf"}},
		{"unknown path", `"D:\Nowhere" file:`, lumi.SortDefault, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := seed(t)

			results, err := svc.Search(context.Background(), tt.query, 20, tt.sort)

			require.NoError(t, err)
			assert.Equal(t, tt.want, names(results))
		})
	}

	t.Run("returns containing folder as path", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		results, err := svc.Search(context.Background(), "report", 20, lumi.SortDefault)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, `C:\Users\me\Docs`, results[0].Path)
	})

	t.Run("limits results", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		results, err := svc.Search(context.Background(), "file:", 2, lumi.SortSizeDesc)

		require.NoError(t, err)
		assert.Equal(t, []string{"movie.mkv", "report.pdf"}, names(results))
	})

	t.Run("returns EINVALID for unsupported operator", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		_, err := svc.Search(context.Background(), "regex:^a", 20, lumi.SortDefault)

		require.Error(t, err)
		assert.Equal(t, lumi.EINVALID, lumi.ErrorCode(err))
	})

	t.Run("returns EINVALID for bad arguments", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		_, err := svc.Search(context.Background(), "x", 0, lumi.SortDefault)
		assert.Equal(t, lumi.EINVALID, lumi.ErrorCode(err))

		_, err = svc.Search(context.Background(), "x", 20, lumi.SortMode(99))
		assert.Equal(t, lumi.EINVALID, lumi.ErrorCode(err))
	})
}

func TestFileService_CheckHealth(t *testing.T) {
	t.Parallel()

	t.Run("warns when empty", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFileService(setupTestDB(t))

		status := svc.CheckHealth(context.Background())

		assert.Equal(t, lumi.HealthWarn, status.Status)
	})

	t.Run("reports OK with item count", func(t *testing.T) {
		t.Parallel()

		status := seed(t).CheckHealth(context.Background())

		assert.Equal(t, lumi.HealthOK, status.Status)
		assert.Contains(t, status.Detail, "5 items")
	})
}
