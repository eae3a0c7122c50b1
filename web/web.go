// Package web holds the embedded admin pages.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates are parsed once at startup; a broken template is a build
// problem, not a runtime one.
var Templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))
