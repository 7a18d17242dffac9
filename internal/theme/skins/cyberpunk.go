package skins

import (
	"time"

	"neuralrecon/internal/theme"
)

// Cyberpunk is the hot-magenta street skin. It replaces the palette, button
// mapping, and copy wholesale; everything it leaves alone falls back to the
// base terminal values.
func Cyberpunk() theme.Definition {
	return theme.Derive(Base(), func(d *theme.Definition) {
		d.ID = "cyberpunk"
		d.Name = "Chrome District"
		d.Description = "Hot magenta and acid green over wet asphalt."
		d.Palette = theme.Palette{
			theme.RolePrimary:    "#ff2bd6",
			theme.RoleSecondary:  "#7a5cff",
			theme.RoleSuccess:    "#b7ff00",
			theme.RoleWarning:    "#ffb300",
			theme.RoleError:      "#ff1f4f",
			theme.RoleAccent:     "#00e5ff",
			theme.RoleBackground: "#0a0014",
			theme.RoleDimTrace:   "#2a1040",
			theme.RoleText:       "#ffd6f6",
			// defaultLabel intentionally unset; projection substitutes
			// its literal fallback.
		}
		d.ButtonColors = map[theme.ButtonRole]theme.ColorRole{
			theme.ButtonDefault: theme.RoleAccent,
			theme.ButtonAction:  theme.RolePrimary,
			theme.ButtonDanger:  theme.RoleError,
			theme.ButtonInfo:    theme.RoleSecondary,
			theme.ButtonSound:   theme.RoleSuccess,
		}
		d.Fonts = map[theme.FontRole]string{
			theme.FontPrimary: "'Chakra Petch', monospace",
			theme.FontMono:    "'JetBrains Mono', monospace",
			theme.FontDisplay: "'Monoton', cursive",
			theme.FontHeading: "'Chakra Petch', sans-serif",
		}
		d.LayerColors = []theme.ColorRole{
			theme.RolePrimary,
			theme.RoleAccent,
			theme.RoleSuccess,
			theme.RoleSecondary,
		}
		d.Terms = theme.Terminology{
			Labels: map[string]string{
				"wall":      "ICE wall",
				"path":      "neon trail",
				"node":      "burned deck",
				"stockpile": "black vault",
				"layer":     "district",
				"commit":    "jack in",
				"abort":     "flatline",
				"victory":   "DISTRICT OWNED",
			},
			VictoryStats: map[string]string{
				"time":    "Run clock",
				"layers":  "Districts cleared",
				"commits": "Jacks landed",
				"faults":  "ICE burns",
			},
			Briefing: "The district AI sleeps light. Ghost through the ICE, own all four districts, and lift the vault before it wakes.",
			// TODO: nothing substitutes {VAULT_SIZE}; either wire the
			// substitution into the briefing renderer or inline the
			// number like the relic skin does.
			VaultDescription: "Black vault spec: {VAULT_SIZE} shards on ice, triple-walled.",
		}
		d.Vocabulary = theme.Vocabulary{
			Prefixes: []string{"NEON", "CHROME", "RAZOR", "STATIC"},
			Middles:  []string{"WIRE", "JACK", "BURN", "HALO"},
			Suffixes: []string{"ghosted", "fried", "boosted", "iced"},
			Extras:   []string{"Stay chrome.", "ICE is blind.", "District sleeps.", "Run it again."},
		}
		d.Sound = theme.SoundProfile{
			Enabled:  true,
			Pitch:    0.8,
			Waveform: "sawtooth",
		}
		d.Animation = theme.AnimationProfile{
			WaveStagger:   40 * time.Millisecond,
			PulseSpeed:    1.4,
			GlowIntensity: 1.6,
		}
	})
}
