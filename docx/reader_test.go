package docx_test

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/lumi"
	"github.com/fwojciec/lumi/docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Project plan</w:t></w:r></w:p>
<w:p/>
<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:t></w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Owner: </w:t></w:r><w:r><w:rPr><w:b/></w:rPr><w:t>Kim</w:t></w:r></w:p>
<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Phase</w:t></w:r><w:r><w:tab/><w:t>Date</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line two</w:t></w:r></w:p>
</w:body>
</w:document>`

func writeDocx(t *testing.T, files map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestReader_ReadDocument(t *testing.T) {
	t.Parallel()

	t.Run("extracts non-empty paragraphs in order", func(t *testing.T) {
		t.Parallel()

		path := writeDocx(t, map[string]string{
			"[Content_Types].xml": `<Types/>`,
			"word/document.xml":   documentXML,
		})

		doc, err := docx.NewReader().ReadDocument(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, lumi.FormatText, doc.Format)
		assert.Equal(t, "Project plan\nOwner: Kim\nPhase\tDate\nLine one\nLine two", doc.Content)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := docx.NewReader().ReadDocument(context.Background(), filepath.Join(t.TempDir(), "missing.docx"))

		require.Error(t, err)
		assert.Equal(t, lumi.ENOTFOUND, lumi.ErrorCode(err))
	})

	t.Run("returns EUNSUPPORTED for legacy binary documents", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "old.doc")
		require.NoError(t, os.WriteFile(path, []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, 0o644))

		_, err := docx.NewReader().ReadDocument(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, lumi.EUNSUPPORTED, lumi.ErrorCode(err))
	})

	t.Run("returns EMALFORMED when document part is missing", func(t *testing.T) {
		t.Parallel()

		path := writeDocx(t, map[string]string{"[Content_Types].xml": `<Types/>`})

		_, err := docx.NewReader().ReadDocument(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, lumi.EMALFORMED, lumi.ErrorCode(err))
	})
}
