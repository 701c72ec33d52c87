package fs_test

import (
	"testing"

	"github.com/fwojciec/lumi/fs"
	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := map[int64]string{
		0:                      "0 B",
		512:                    "512 B",
		1536:                   "1.5 KB",
		2 * 1024 * 1024:        "2.0 MB",
		3 * 1024 * 1024 * 1024: "3.0 GB",
	}
	for n, want := range tests {
		assert.Equal(t, want, fs.FormatBytes(n), n)
	}
}
