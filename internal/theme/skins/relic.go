package skins

import (
	"time"

	"neuralrecon/internal/theme"
)

// Relic is the sprite skin: every primitive draws from pre-rendered image
// assets instead of procedural styling. Palette and button mapping fall back
// to the base terminal values; only the slots the sprites need are replaced.
func Relic() theme.Definition {
	return theme.Derive(Base(), func(d *theme.Definition) {
		d.ID = "relic"
		d.Name = "Relic Board"
		d.Description = "Hand-drawn salvage board with etched brass tiles."
		d.UsesVisualAssets = true
		d.Renderer = theme.Sprite{}
		d.Assets = theme.AssetSet{
			Paths: map[theme.Element]string{
				theme.ElementWall:              "/assets/skins/relic/wall.png",
				theme.ElementPath:              "/assets/skins/relic/trace.png",
				theme.ElementNode:              "/assets/skins/relic/relay.png",
				theme.ElementNodeComplete:      "/assets/skins/relic/relay-lit.png",
				theme.ElementStockpile:         "/assets/skins/relic/vault.png",
				theme.ElementStockpileComplete: "/assets/skins/relic/vault-open.png",
				theme.ElementBackground:        "/assets/skins/relic/board.jpg",
				theme.ElementGridBackground:    "/assets/skins/relic/grid.png",
			},
			LayerWalls: []string{
				"/assets/skins/relic/wall-copper.png",
				"/assets/skins/relic/wall-brass.png",
				"/assets/skins/relic/wall-verdigris.png",
				"/assets/skins/relic/wall-iron.png",
			},
		}
		d.Fonts = map[theme.FontRole]string{
			theme.FontPrimary: "'Special Elite', monospace",
			theme.FontMono:    "'Cutive Mono', monospace",
			theme.FontDisplay: "'Rye', serif",
			theme.FontHeading: "'IM Fell English', serif",
		}
		d.Terms = theme.Terminology{
			Labels: map[string]string{
				"wall":      "bulkhead",
				"path":      "chalk line",
				"node":      "cold socket",
				"stockpile": "strongbox",
				"layer":     "deck",
				"commit":    "stamp",
				"abort":     "walk away",
				"victory":   "SALVAGE SECURED",
			},
			VictoryStats: map[string]string{
				"time":    "Shift length",
				"layers":  "Decks swept",
				"commits": "Stamps placed",
				"faults":  "Snapped picks",
			},
			Briefing:         "Old wreck, older locks. Chalk your route deck by deck and pry the strongbox before the tide turns.",
			VaultDescription: "Strongbox manifest lists 16 sealed cases.",
		}
		d.Vocabulary = theme.Vocabulary{
			Prefixes: []string{"RUST", "BRASS", "TIDE", "SALT"},
			Middles:  []string{"HATCH", "SEAM", "RIVET", "KEEL"},
			Suffixes: []string{"pried", "sounded", "charted", "sealed"},
			Extras:   []string{"Mind the tide.", "Deck holds.", "Lantern low.", "Keep chalking."},
		}
		d.Sound = theme.SoundProfile{
			Enabled:  true,
			Pitch:    0.6,
			Waveform: "triangle",
		}
		d.Animation = theme.AnimationProfile{
			WaveStagger:   90 * time.Millisecond,
			PulseSpeed:    0.7,
			GlowIntensity: 0.4,
		}
	})
}
