package web

import (
	"embed"
	"html/template"
	"time"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templateFS embed.FS

// LoadTemplates parses the embedded page templates. gin looks pages up by
// file name, e.g. "index.html".
func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"since":     humanize.Time,
		"isoDate":   func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
		"comma":     func(n uint) string { return humanize.Comma(int64(n)) },
		"pluralize": pluralize,
	}).ParseFS(templateFS, "templates/*.html")
}

func pluralize(n uint) string {
	if n == 1 {
		return ""
	}
	return "s"
}
