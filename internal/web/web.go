// Package web embeds the page templates. Presentation is intentionally
// minimal; the templates exist to carry the handler data contract.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Templates parses the embedded template set once at startup.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.tmpl"))
}
