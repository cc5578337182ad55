package pages

import (
	"github.com/oakmere/gatehouse/internal/session"
	"github.com/oakmere/gatehouse/internal/view"
	"github.com/oakmere/gatehouse/web/src/templates/layouts"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Home renders the signed-in landing page.
func Home(rec session.Record, flashes view.FlashData) cmp.Node {
	name := rec.FullName
	if name == "" {
		name = rec.Email
	}
	return layouts.Base("Home", flashes,
		g.Div(
			g.Class("bg-white shadow-md rounded-lg p-8"),
			g.H1(g.Class("text-2xl font-bold mb-4 text-gray-900"), cmp.Textf("Welcome, %s", name)),
			g.P(g.Class("mb-6 text-sm text-gray-600"), cmp.Text("You are signed in.")),
			g.Form(
				g.Method("post"),
				g.Action("/logout"),
				g.Button(
					g.Type("submit"),
					g.Class("rounded-md bg-gray-800 px-4 py-2 text-white font-medium hover:bg-gray-900"),
					cmp.Text("Sign out"),
				),
			),
		),
	)
}
