package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func flashLine(message string) string {
	if message == "" {
		return ""
	}
	return fmt.Sprintf(`<p class="flash">%s</p>`, templ.EscapeString(message))
}

// Login renders the sign-in form.
func Login(message, callsign string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="auth"><h1>Operator sign-in</h1>%s`+
				`<form method="post" action="/login">`+
				`<label for="callsign">Callsign</label>`+
				`<input id="callsign" name="callsign" value="%s" autocomplete="username"/>`+
				`<label for="access_code">Access code</label>`+
				`<input id="access_code" name="access_code" type="password" autocomplete="current-password"/>`+
				`<button type="submit" class="btn btn-action">Jack in</button></form>`+
				`<p><a href="/signup">Need an operator record?</a></p></div>`,
			flashLine(message), templ.EscapeString(callsign))
		return err
	})
}

// Signup renders the operator registration form.
func Signup(message, callsign string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="auth"><h1>New operator record</h1>%s`+
				`<form method="post" action="/signup">`+
				`<label for="callsign">Callsign</label>`+
				`<input id="callsign" name="callsign" value="%s" autocomplete="username"/>`+
				`<label for="access_code">Access code</label>`+
				`<input id="access_code" name="access_code" type="password" autocomplete="new-password"/>`+
				`<label for="confirm_code">Confirm access code</label>`+
				`<input id="confirm_code" name="confirm_code" type="password" autocomplete="new-password"/>`+
				`<button type="submit" class="btn btn-action">Register</button></form>`+
				`<p><a href="/login">Already cleared?</a></p></div>`,
			flashLine(message), templ.EscapeString(callsign))
		return err
	})
}
