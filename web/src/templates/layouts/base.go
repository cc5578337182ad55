// Package layouts holds the shared page chrome. Pages render their content
// as Gomponents nodes and get wrapped here.
package layouts

import (
	"strconv"

	"github.com/oakmere/gatehouse/internal/view"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Gatehouse"
	}
	return "Gatehouse"
}

// Base wraps page content in the HTML document shell, rendering any flash
// messages above the content. Optional head nodes (e.g. a refresh meta tag)
// can be appended.
func Base(title string, flashes view.FlashData, content cmp.Node, headExtras ...cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Link(g.Rel("stylesheet"), g.Href("/static/css/app.css")),
				g.Script(g.Src("/static/js/htmx.min.js"), g.Defer()),
				cmp.Group(headExtras),
			),
			g.Body(
				g.Class("bg-gray-100 min-h-screen flex items-center justify-center"),
				g.Div(
					g.Class("w-full max-w-md"),
					flashBanner(flashes),
					content,
				),
			),
		),
	)
}

// RefreshMeta emits a meta refresh tag for timed post-success redirects.
func RefreshMeta(seconds int, target string) cmp.Node {
	return g.Meta(
		cmp.Attr("http-equiv", "refresh"),
		g.Content(strconv.Itoa(seconds)+";url="+target),
	)
}

func flashBanner(flashes view.FlashData) cmp.Node {
	return cmp.Group{
		cmp.Map(flashes.Success, func(msg string) cmp.Node {
			return g.Div(
				g.Class("mb-4 rounded-lg bg-green-100 p-4 text-sm text-green-800"),
				g.Role("alert"),
				cmp.Text(msg),
			)
		}),
		cmp.Map(flashes.Error, func(msg string) cmp.Node {
			return g.Div(
				g.Class("mb-4 rounded-lg bg-red-100 p-4 text-sm text-red-800"),
				g.Role("alert"),
				cmp.Text(msg),
			)
		}),
	}
}
