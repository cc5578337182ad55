package forms

// StrengthResult is the advisory classification shown next to the
// new-password field. It is recomputed from scratch on every keystroke and
// carries ready-to-render hints so the view stays logic-free.
type StrengthResult struct {
	Level     int    // 0..3 ordinal, advisory only
	Label     string // "Weak", "Medium", "Strong"; empty for an empty password
	ColorHint string // CSS class for the meter bar
	WidthHint string // CSS width for the meter bar
}

var strengthTiers = [...]StrengthResult{
	{Level: 0, Label: "Weak", ColorHint: "bg-red-500", WidthHint: "25%"},
	{Level: 1, Label: "Weak", ColorHint: "bg-orange-500", WidthHint: "50%"},
	{Level: 2, Label: "Medium", ColorHint: "bg-yellow-500", WidthHint: "75%"},
	{Level: 3, Label: "Strong", ColorHint: "bg-green-500", WidthHint: "100%"},
}

// Strength classifies a password. The disqualifying checks (too short,
// missing letter or digit) run before the length-based tiering, so a long
// password that lacks a required class is still level 0, and one that
// lacks uppercase and special characters tops out at Medium regardless of
// length.
func Strength(password string) StrengthResult {
	if password == "" {
		return StrengthResult{WidthHint: "0%"}
	}

	c := classify(password)
	if c.length < MinPasswordLength || !c.hasLetter || !c.hasDigit {
		return strengthTiers[0]
	}
	if c.length == MinPasswordLength {
		return strengthTiers[1]
	}
	if c.length >= 12 && c.hasUpper && c.hasSpecial {
		return strengthTiers[3]
	}
	if c.length <= 12 && (c.hasUpper || c.hasSpecial) {
		return strengthTiers[2]
	}
	// Letter and digit present, longer than the minimum, but not enough
	// variety for the top tier.
	return strengthTiers[2]
}
