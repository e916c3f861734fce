package web

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/yuin/goldmark"
)

//go:embed templates/*.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// markdown renders summaries. Raw HTML in the source is dropped.
var markdown = goldmark.New()

type pageData struct {
	Result *resultData
}

type resultData struct {
	Filename       string
	SummaryHTML    template.HTML
	SummaryBraille string
	AudioURL       string
	DownloadURL    string
}

// renderSummary converts model output, which is often markdown, to HTML.
// It falls back to escaped plain text if conversion fails.
func renderSummary(summary string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(summary), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(summary) + "</p>") //nolint:gosec
	}
	return template.HTML(buf.String()) //nolint:gosec
}
