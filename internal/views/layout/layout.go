// Package layout renders the terminal's document shell. Components are built
// directly on the templ runtime; the body class list comes from the theme
// registry so the single active theme-* marker always reaches the page.
package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Page wraps content in the full HTML document, linking the generated theme
// stylesheet ahead of the static application stylesheet.
func Page(title, bodyClass string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`+
				`<meta name="viewport" content="width=device-width, initial-scale=1"/>`+
				`<title>%s</title>`+
				`<link rel="manifest" href="/assets/manifest.webmanifest"/>`+
				`<link rel="stylesheet" href="/assets/theme.css"/>`+
				`<link rel="stylesheet" href="/assets/app.css"/>`+
				`</head><body class="%s">`,
			templ.EscapeString(title), templ.EscapeString(bodyClass))
		if err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</body></html>`)
		return err
	})
}
