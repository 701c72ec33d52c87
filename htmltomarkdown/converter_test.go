package htmltomarkdown_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/lumi"
	"github.com/fwojciec/lumi/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want []string
	}{
		{"paragraph", `<p>Hello, world!</p>`, []string{"Hello, world!"}},
		{"headings", `<h1>Title</h1><h2>Subtitle</h2>`, []string{"# Title", "## Subtitle"}},
		{"links", `<p>See <a href="budget.xlsx">the budget</a>.</p>`, []string{"[the budget](budget.xlsx)"}},
		{"lists", `<ul><li>First</li><li>Second</li></ul>`, []string{"- First", "- Second"}},
		{"emphasis", `<p><strong>bold</strong> and <em>italic</em></p>`, []string{"**bold**", "*italic*"}},
		{"tables", `<table><thead><tr><th>Device</th><th>Owner</th></tr></thead><tbody><tr><td>Laptop</td><td>Kim</td></tr></tbody></table>`, []string{"| Device", "Laptop"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			md, err := htmltomarkdown.NewConverter().Convert(tt.html)

			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, md, want)
			}
		})
	}

	t.Run("collapses blank lines and trims", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("\n<p>one</p>\n\n\n\n<p>two</p>\n\n\n")

		require.NoError(t, err)
		assert.NotContains(t, md, "\n\n\n")
		assert.True(t, strings.HasPrefix(md, "one"))
		assert.True(t, strings.HasSuffix(md, "two"))
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert(" ")

		require.Error(t, err)
		assert.Equal(t, lumi.EINVALID, lumi.ErrorCode(err))
	})
}
