package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"neuralrecon/internal/theme"
)

// LegendEntry pairs a terminology label with a rendered maze primitive for
// the shell's legend strip.
type LegendEntry struct {
	Label string
	Cell  templ.Component
}

// ShellData feeds the game shell view. Everything here is resolved from the
// active skin before rendering so the view stays theme-agnostic.
type ShellData struct {
	Callsign      string
	Heading       string
	Briefing      string
	VaultNote     string
	BabbleLine    string
	ActiveID      string
	Options       []theme.Option
	Legend        []LegendEntry
	WaveStaggerMS int64
	StatusMessage string
}

// Shell renders the full game shell view.
func Shell(data ShellData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<div class="shell" data-wave-stagger="%d">`+
				`<header class="shell-header"><h1>%s</h1><span class="callsign">%s</span></header>`+
				`<section class="briefing"><p>%s</p><p class="vault-note">%s</p></section>`,
			data.WaveStaggerMS,
			templ.EscapeString(data.Heading),
			templ.EscapeString(data.Callsign),
			templ.EscapeString(data.Briefing),
			templ.EscapeString(data.VaultNote)); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<section class="legend"><ul>`); err != nil {
			return err
		}
		for _, entry := range data.Legend {
			if _, err := fmt.Fprintf(w, `<li><span class="legend-label">%s</span>`, templ.EscapeString(entry.Label)); err != nil {
				return err
			}
			if entry.Cell != nil {
				if err := entry.Cell.Render(ctx, w); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</li>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul></section>`); err != nil {
			return err
		}

		if err := themePicker(data).Render(ctx, w); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w,
			`<div id="board" class="board"></div>`+
				`<footer class="babble">%s</footer></div>`,
			templ.EscapeString(data.BabbleLine)); err != nil {
			return err
		}
		return nil
	})
}

func themePicker(data ShellData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<form class="theme-picker" method="post" action="/app/preferences/update" hx-post="/app/preferences/update">`+
				`<label for="theme-select">Skin</label><select id="theme-select" name="theme">`); err != nil {
			return err
		}
		for _, option := range data.Options {
			selected := ""
			if option.ID == data.ActiveID {
				selected = ` selected`
			}
			if _, err := fmt.Fprintf(w, `<option value="%s"%s title="%s">%s</option>`,
				templ.EscapeString(option.ID), selected,
				templ.EscapeString(option.Description),
				templ.EscapeString(option.Name)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`</select><button type="submit">Apply</button>`+
				`<p class="picker-status">%s</p></form>`,
			templ.EscapeString(StatusMessage(data.StatusMessage))); err != nil {
			return err
		}
		return nil
	})
}
