package readability_test

import (
	"testing"

	"github.com/fwojciec/lumi"
	"github.com/fwojciec/lumi/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := readability.NewExtractor().Extract("")

	require.Error(t, err)
	assert.Equal(t, lumi.EINVALID, lumi.ErrorCode(err))
}

func TestExtractor_ExtractsTitleAndArticle(t *testing.T) {
	t.Parallel()

	html := `<html>
<head><title>Meeting Notes</title></head>
<body>
<div class="sidebar"><a href="/a">Link A</a><a href="/b">Link B</a></div>
<div class="content">
<h1>Meeting Notes</h1>
<p>The team agreed to move the release to the first week of April so that the migration can finish.</p>
<p>Action items were assigned to each owner and will be reviewed at the next weekly meeting.</p>
<ul><li>Finish the migration</li><li>Update the runbook</li></ul>
</div>
</body>
</html>`

	result, err := readability.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Meeting Notes", result.Title)
	assert.Contains(t, result.ContentHTML, "move the release")
	assert.Contains(t, result.ContentHTML, "Update the runbook")
}

func TestExtractor_PreservesTables(t *testing.T) {
	t.Parallel()

	html := `<html><body><article>
<h1>Inventory</h1>
<p>The following table lists the devices currently assigned to the office and their owners.</p>
<table><tr><th>Device</th><th>Owner</th></tr><tr><td>Laptop</td><td>Kim</td></tr></table>
</article></body></html>`

	result, err := readability.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "<table")
	assert.Contains(t, result.ContentHTML, "Laptop")
}
