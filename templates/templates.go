// Package templates embeds the HTML pages so the binary (and the handler
// tests) do not depend on the working directory.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse returns all page templates, keyed by file name.
func Parse() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}
