package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Home renders the landing view shown before sign-in.
func Home(briefing string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="landing"><h1>Neural Recon Terminal</h1>`+
				`<p class="briefing">%s</p>`+
				`<nav><a class="btn btn-default" href="/login">Jack in</a>`+
				`<a class="btn btn-info" href="/signup">New operator</a></nav></div>`,
			templ.EscapeString(briefing))
		return err
	})
}
