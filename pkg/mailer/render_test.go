package mailer

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `# Global Market Narrative Report
**Date:** 2024-02-29

## [Market Metrics] 지수 및 1년 추세

| Index | Price | Change | Analysis |
|-------|-------|--------|----------|
| Nasdaq | 16,091 | +0.9% | AI 반도체 랠리 |
| KOSPI | 2,642 | -0.1% | 외국인 매도 |

> 기관은 과도하게 낙관적이다.
`

func TestRenderMarkdown_Table(t *testing.T) {
	out, err := RenderMarkdown(sampleReport)
	require.NoError(t, err)

	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<th>Index</th>")
	assert.Contains(t, out, "<td>Nasdaq</td>")
	assert.Contains(t, out, "<td>AI 반도체 랠리</td>")
	assert.Contains(t, out, "<h1>Global Market Narrative Report</h1>")
	assert.Contains(t, out, "<blockquote>")
}

func TestRenderMarkdown_RawHTMLPassthrough(t *testing.T) {
	out, err := RenderMarkdown("<b>bold</b> text\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<b>bold</b>")
}

func TestWrapHTML_RoundTrip(t *testing.T) {
	rendered, err := RenderMarkdown(sampleReport)
	require.NoError(t, err)

	page, err := WrapHTML(rendered)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(page, "<html>"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(page), "</html>"))
	assert.Contains(t, page, rendered)
	assert.Contains(t, page, "border-collapse: collapse")
	assert.Contains(t, page, `<meta charset="UTF-8">`)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("body table").Length())
	assert.Equal(t, 2, doc.Find("body table tbody tr").Length())
	assert.Equal(t, 1, doc.Find("head style").Length())
}

func TestWrapHTML_DoesNotEscape(t *testing.T) {
	body := `<p>S&amp;P 500 &lt; 5000 "quoted" <a href="https://x.com/?a=1&amp;b=2">link</a></p>`
	page, err := WrapHTML(body)
	require.NoError(t, err)
	assert.Contains(t, page, body)
}
