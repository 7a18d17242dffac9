package theme

import (
	"fmt"
	"math/rand/v2"
)

func pickWord(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return words[rand.IntN(len(words))]
}

// Babble composes one flavor-text line by drawing one uniformly random word
// from each vocabulary pool, always in prefix-middle-suffix-extra order.
func (d *Definition) Babble() string {
	return fmt.Sprintf("%s-%s %s. %s",
		pickWord(d.Vocabulary.Prefixes),
		pickWord(d.Vocabulary.Middles),
		pickWord(d.Vocabulary.Suffixes),
		pickWord(d.Vocabulary.Extras),
	)
}
