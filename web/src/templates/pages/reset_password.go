package pages

import (
	"github.com/oakmere/gatehouse/internal/controllers"
	"github.com/oakmere/gatehouse/internal/forms"
	"github.com/oakmere/gatehouse/internal/nav"
	"github.com/oakmere/gatehouse/internal/view"
	"github.com/oakmere/gatehouse/web/src/templates/layouts"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// ResetPassword renders one of three shapes depending on the controller
// state: the invalid-token notice, the post-success countdown, or the form
// itself with a live strength meter.
func ResetPassword(state controllers.ResetState, flashes view.FlashData, token string) cmp.Node {
	if state.TokenValid != nil && !*state.TokenValid {
		return layouts.Base("Reset Password", flashes, resetTokenInvalid(state))
	}
	if state.ResetSucceeded {
		// The meta refresh mirrors the countdown so the browser follows even
		// without a live connection to the controller.
		return layouts.Base("Password Reset", flashes,
			resetSuccess(state),
			layouts.RefreshMeta(state.RedirectCountdownSeconds, nav.LoginPath),
		)
	}
	return layouts.Base("Reset Password", flashes, resetForm(state, token))
}

func resetTokenInvalid(state controllers.ResetState) cmp.Node {
	return g.Div(
		g.Class("bg-white shadow-md rounded-lg p-8 text-center"),
		g.H1(g.Class("text-2xl font-bold mb-4 text-gray-900"), cmp.Text("Link expired")),
		g.P(g.Class("mb-6 text-sm text-gray-600"), cmp.Text(state.GeneralError)),
		g.A(
			g.Href("/forgot-password"),
			g.Class("inline-block rounded-md bg-blue-600 px-4 py-2 text-white font-medium hover:bg-blue-700"),
			cmp.Text("Request a new link"),
		),
	)
}

func resetSuccess(state controllers.ResetState) cmp.Node {
	return g.Div(
		g.Class("bg-white shadow-md rounded-lg p-8 text-center"),
		g.H1(g.Class("text-2xl font-bold mb-4 text-gray-900"), cmp.Text("Password reset")),
		g.P(
			g.Class("text-sm text-gray-600"),
			cmp.Text("Your password has been updated. Redirecting to sign in"),
			countdownSuffix(state.RedirectCountdownSeconds),
		),
	)
}

func countdownSuffix(seconds int) cmp.Node {
	if seconds <= 0 {
		return cmp.Text("...")
	}
	return cmp.Textf(" in %d...", seconds)
}

func resetForm(state controllers.ResetState, token string) cmp.Node {
	return g.Div(
		g.Class("bg-white shadow-md rounded-lg p-8"),
		g.H1(g.Class("text-2xl font-bold mb-6 text-gray-900"), cmp.Text("Choose a new password")),

		generalError(state.GeneralError),

		g.Form(
			g.Method("post"),
			g.Action("/reset-password"),
			g.Class("space-y-4"),

			g.Input(g.Type("hidden"), g.Name("reset_token"), g.Value(token)),

			g.Div(
				g.Label(g.For("new_password"), g.Class("block text-sm font-medium text-gray-700"), cmp.Text("New password")),
				g.Input(
					g.Type("password"),
					g.ID("new_password"),
					g.Name("new_password"),
					g.AutoComplete("new-password"),
					inputClass(state.FieldErrors.NewPassword != nil),
					hx.Post("/reset-password/strength"),
					hx.Trigger("keyup changed delay:300ms"),
					hx.Target("#strength-meter"),
					hx.Swap("outerHTML"),
				),
				fieldError(state.FieldErrors.NewPassword),
				StrengthMeter(state.Strength),
			),

			g.Div(
				g.Label(g.For("confirm_password"), g.Class("block text-sm font-medium text-gray-700"), cmp.Text("Confirm password")),
				g.Input(
					g.Type("password"),
					g.ID("confirm_password"),
					g.Name("confirm_password"),
					g.AutoComplete("new-password"),
					inputClass(state.FieldErrors.Confirm != nil),
				),
				fieldError(state.FieldErrors.Confirm),
			),

			submitButton("Reset Password", state.IsSubmitting),
		),
	)
}

// StrengthMeter renders the strength bar and label. The strength endpoint
// returns this fragment on its own; htmx swaps it in under the password
// field as the user types.
func StrengthMeter(s forms.StrengthResult) cmp.Node {
	return g.Div(
		g.ID("strength-meter"),
		g.Class("mt-2"),
		g.Div(
			g.Class("h-2 w-full rounded bg-gray-200"),
			g.Div(
				g.Class("h-2 rounded transition-all "+s.ColorHint),
				g.Style("width: "+s.WidthHint),
			),
		),
		cmp.If(s.Label != "",
			g.P(g.Class("mt-1 text-xs text-gray-600"), cmp.Text(s.Label)),
		),
	)
}
