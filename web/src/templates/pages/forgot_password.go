package pages

import (
	"github.com/oakmere/gatehouse/internal/controllers"
	"github.com/oakmere/gatehouse/internal/view"
	"github.com/oakmere/gatehouse/web/src/templates/layouts"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// ForgotPassword renders the reset-request form. After a submission the
// notice replaces the form; it reads the same whether or not the account
// exists.
func ForgotPassword(state controllers.ForgotState, flashes view.FlashData) cmp.Node {
	return layouts.Base("Forgot Password", flashes,
		g.Div(
			g.Class("bg-white shadow-md rounded-lg p-8"),
			g.H1(g.Class("text-2xl font-bold mb-2 text-gray-900"), cmp.Text("Forgot your password?")),
			g.P(
				g.Class("mb-6 text-sm text-gray-600"),
				cmp.Text("Enter your email address and we'll send you a link to reset it."),
			),
			forgotBody(state),
		),
	)
}

func forgotBody(state controllers.ForgotState) cmp.Node {
	if state.Notice != "" {
		return g.Div(
			g.Class("rounded-lg bg-green-100 p-4 text-sm text-green-800"),
			g.Role("status"),
			cmp.Text(state.Notice),
		)
	}

	return g.Form(
		g.Method("post"),
		g.Action("/forgot-password"),
		g.Class("space-y-4"),

		g.Div(
			g.Label(g.For("email"), g.Class("block text-sm font-medium text-gray-700"), cmp.Text("Email")),
			g.Input(
				g.Type("email"),
				g.ID("email"),
				g.Name("email"),
				g.Value(state.Email),
				g.AutoComplete("email"),
				inputClass(state.EmailError != nil),
			),
			fieldError(state.EmailError),
		),

		submitButton("Send Reset Link", state.IsSubmitting),

		g.P(
			g.Class("text-center text-sm text-gray-600"),
			g.A(g.Href("/login"), g.Class("text-blue-600 hover:underline"), cmp.Text("Back to sign in")),
		),
	)
}
