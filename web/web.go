// Package web embeds the HTML templates and static assets.
package web

import (
	"embed"
	"html/template"

	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/pinboard/types"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Static serves the contents of the static directory at its root.
var Static = echo.MustSubFS(staticFS, "static")

type tagInput struct {
	Page  *types.DashboardPageData
	Value string
}

var funcs = template.FuncMap{
	"tagLabel": types.TagLabel,
	"tagInput": func(page *types.DashboardPageData, value string) tagInput {
		return tagInput{Page: page, Value: value}
	},
}

func ParseTemplates() (*template.Template, error) {
	return template.New("pinboard").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}
