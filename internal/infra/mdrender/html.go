package mdrender

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/mkazemie/github-profile-generator/internal/domain"
)

// READMEs mix markdown with raw HTML (<p align>, <img>), so raw HTML is kept.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
		html.WithXHTML(),
	),
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>{{.Title}}</title>
<style>
body { max-width: 880px; margin: 2rem auto; padding: 0 1rem; font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; line-height: 1.5; }
img { max-width: 100%; }
code { background: #f6f8fa; padding: .1em .3em; border-radius: 4px; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// Fragment converts markdown to an HTML fragment.
func Fragment(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", &domain.OpError{
			Op:   "mdrender.html",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return buf.String(), nil
}

// Page converts markdown to a standalone HTML page titled title.
func Page(markdown, title string) (string, error) {
	body, err := Fragment(markdown)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = page.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: template.HTML(body)})
	if err != nil {
		return "", &domain.OpError{
			Op:   "mdrender.page",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return buf.String(), nil
}

// ToHTML returns doc converted to an HTML page. HTML documents pass through.
func ToHTML(doc domain.Document) (domain.Document, error) {
	if doc.Format == domain.FormatHTML {
		return doc, nil
	}

	title := doc.Handle
	if title == "" {
		title = doc.Theme
	}

	out, err := Page(doc.Content, title)
	if err != nil {
		return domain.Document{}, err
	}
	doc.Content = out
	doc.Format = domain.FormatHTML
	return doc, nil
}
