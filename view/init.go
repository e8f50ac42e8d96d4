package view

import (
	"embed"
	"html/template"
)

//go:embed *.gohtml
var templatesFS embed.FS

var Collection *template.Template

func init() {
	Collection = template.Must(template.ParseFS(templatesFS, "base.gohtml", "collection.gohtml"))
}
