// Package pages holds the Gomponents page templates. Each page takes a
// controller snapshot plus any flash messages and renders a full document.
package pages

import (
	"github.com/oakmere/gatehouse/internal/controllers"
	"github.com/oakmere/gatehouse/internal/forms"
	"github.com/oakmere/gatehouse/internal/view"
	"github.com/oakmere/gatehouse/web/src/templates/layouts"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Login renders the sign-in form. The redirect target, when present, rides
// along as a hidden field so a failed attempt keeps the original destination.
func Login(state controllers.LoginState, flashes view.FlashData, redirect string) cmp.Node {
	return layouts.Base("Sign In", flashes,
		g.Div(
			g.Class("bg-white shadow-md rounded-lg p-8"),
			g.H1(g.Class("text-2xl font-bold mb-6 text-gray-900"), cmp.Text("Sign in to Gatehouse")),

			generalError(state.GeneralError),

			g.Form(
				g.Method("post"),
				g.Action("/login"),
				g.Class("space-y-4"),

				cmp.If(redirect != "",
					g.Input(g.Type("hidden"), g.Name("redirect"), g.Value(redirect)),
				),

				g.Div(
					g.Label(g.For("email"), g.Class("block text-sm font-medium text-gray-700"), cmp.Text("Email")),
					g.Input(
						g.Type("email"),
						g.ID("email"),
						g.Name("email"),
						g.Value(state.Email),
						g.AutoComplete("email"),
						inputClass(state.FieldErrors.Email != nil),
					),
					fieldError(state.FieldErrors.Email),
				),

				g.Div(
					g.Label(g.For("password"), g.Class("block text-sm font-medium text-gray-700"), cmp.Text("Password")),
					g.Input(
						g.Type("password"),
						g.ID("password"),
						g.Name("password"),
						g.AutoComplete("current-password"),
						inputClass(state.FieldErrors.Password != nil),
					),
					fieldError(state.FieldErrors.Password),
				),

				g.Div(
					g.Class("flex items-center justify-between"),
					g.Label(
						g.Class("flex items-center gap-2 text-sm text-gray-700"),
						g.Input(
							g.Type("checkbox"),
							g.Name("remember_me"),
							g.Value("true"),
							cmp.If(state.RememberMe, g.Checked()),
						),
						cmp.Text("Remember me"),
					),
					g.A(
						g.Href("/forgot-password"),
						g.Class("text-sm text-blue-600 hover:underline"),
						cmp.Text("Forgot password?"),
					),
				),

				submitButton("Sign In", state.IsSubmitting),
			),
		),
	)
}

func generalError(msg string) cmp.Node {
	if msg == "" {
		return nil
	}
	return g.Div(
		g.Class("mb-4 rounded-lg bg-red-100 p-4 text-sm text-red-800"),
		g.Role("alert"),
		cmp.Text(msg),
	)
}

func fieldError(fe *forms.FieldError) cmp.Node {
	if fe == nil {
		return nil
	}
	return g.P(g.Class("mt-1 text-sm text-red-600"), cmp.Text(fe.Message))
}

func inputClass(hasError bool) cmp.Node {
	base := "mt-1 block w-full rounded-md border px-3 py-2 shadow-sm focus:outline-none focus:ring-1"
	if hasError {
		return g.Class(base + " border-red-500 focus:ring-red-500")
	}
	return g.Class(base + " border-gray-300 focus:ring-blue-500")
}

func submitButton(label string, submitting bool) cmp.Node {
	return g.Button(
		g.Type("submit"),
		g.Class("w-full rounded-md bg-blue-600 px-4 py-2 text-white font-medium hover:bg-blue-700 disabled:opacity-50"),
		cmp.If(submitting, g.Disabled()),
		cmp.Text(label),
	)
}
