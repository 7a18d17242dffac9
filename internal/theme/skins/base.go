// Package skins ships the terminal's built-in visual skins: the base
// terminal definition the registry falls back to, plus the cyberpunk and
// relic overrides.
package skins

import (
	"time"

	"neuralrecon/internal/theme"
)

// Base returns the default terminal skin. Every other skin derives from it,
// so any field a skin does not replace falls back to these values.
func Base() theme.Definition {
	return theme.Definition{
		ID:          "terminal",
		Name:        "Recon Terminal",
		Description: "Stock neon-on-black field terminal.",
		Palette: theme.Palette{
			theme.RolePrimary:      "#00ffff",
			theme.RoleSecondary:    "#0088ff",
			theme.RoleSuccess:      "#00ff88",
			theme.RoleWarning:      "#ffaa00",
			theme.RoleError:        "#ff3344",
			theme.RoleAccent:       "#ff00ff",
			theme.RoleBackground:   "#050505",
			theme.RoleDimTrace:     "#113344",
			theme.RoleDefaultLabel: "#8b949e",
			theme.RoleText:         "#c8f7ff",
		},
		ButtonColors: map[theme.ButtonRole]theme.ColorRole{
			theme.ButtonDefault: theme.RolePrimary,
			theme.ButtonAction:  theme.RoleSuccess,
			theme.ButtonDanger:  theme.RoleError,
			theme.ButtonInfo:    theme.RoleSecondary,
			theme.ButtonSound:   theme.RoleAccent,
		},
		Fonts: map[theme.FontRole]string{
			theme.FontPrimary: "'Share Tech Mono', monospace",
			theme.FontMono:    "'IBM Plex Mono', monospace",
			theme.FontDisplay: "'Orbitron', sans-serif",
			theme.FontHeading: "'Rajdhani', sans-serif",
		},
		LayerColors: []theme.ColorRole{
			theme.RolePrimary,
			theme.RoleSecondary,
			theme.RoleSuccess,
			theme.RoleWarning,
		},
		Terms: theme.Terminology{
			Labels: map[string]string{
				"wall":      "firewall segment",
				"path":      "trace",
				"node":      "dead relay",
				"stockpile": "data vault",
				"layer":     "fork layer",
				"commit":    "commit",
				"abort":     "sever link",
				"victory":   "RECON COMPLETE",
			},
			VictoryStats: map[string]string{
				"time":    "Link uptime",
				"layers":  "Forks resolved",
				"commits": "Commits pushed",
				"faults":  "Faults absorbed",
			},
			Briefing:         "Operator, the grid is dark. Trace the maze, resolve all four forks, and crack the vault before the sweep cycles back.",
			VaultDescription: "Primary vault holds 16 data shards behind the final relay.",
		},
		Vocabulary: theme.Vocabulary{
			Prefixes: []string{"SYN", "NULL", "GHOST", "FLUX", "OCT"},
			Middles:  []string{"TRACE", "CIPHER", "ECHO", "DRIFT", "LATTICE"},
			Suffixes: []string{"resolved", "locked", "decoded", "rerouted", "collapsed"},
			Extras:   []string{"Proceed.", "Signal clean.", "No anomalies.", "Grid stable.", "Sweep negative."},
		},
		Sound: theme.SoundProfile{
			Enabled:  true,
			Pitch:    1.0,
			Waveform: "square",
		},
		Animation: theme.AnimationProfile{
			WaveStagger:   60 * time.Millisecond,
			PulseSpeed:    1.0,
			GlowIntensity: 1.0,
		},
	}
}

// Install registers the base skin and every shipped override, in the order
// the picker presents them.
func Install(reg *theme.Registry) {
	reg.Register(Base())
	reg.Register(Cyberpunk())
	reg.Register(Relic())
}
