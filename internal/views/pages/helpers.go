package pages

import (
	"strings"
	"time"
)

// StatusMessage normalises the text shown in the theme picker status line.
func StatusMessage(message string) string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "Pick a skin and apply to restyle the terminal."
	}
	return trimmed
}

// WaveStaggerMS converts a victory-wave stagger into the millisecond count
// the front-end animation script reads from its data attribute.
func WaveStaggerMS(stagger time.Duration) int64 {
	if stagger < 0 {
		return 0
	}
	return stagger.Milliseconds()
}

// LayerLabel names one fork layer for the legend strip.
func LayerLabel(prefix string, index int) string {
	if strings.TrimSpace(prefix) == "" {
		prefix = "layer"
	}
	return prefix + " " + string(rune('A'+index))
}
