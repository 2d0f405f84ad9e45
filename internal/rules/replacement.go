package rules

import (
	"math/rand"
	"sync"
)

// Replacement is either a literal string or a set of choices.
type Replacement struct {
	literal string
	choices []string
}

// Literal returns a replacement that always yields s.
func Literal(s string) Replacement {
	return Replacement{literal: s}
}

// Choices returns a replacement that yields one of options at random.
func Choices(options ...string) Replacement {
	return Replacement{choices: append([]string(nil), options...)}
}

// IsChoice reports whether the replacement is a list of choices.
func (r Replacement) IsChoice() bool {
	return r.choices != nil
}

// Resolve picks the replacement text, consulting chooser for choices.
func (r Replacement) Resolve(chooser Chooser) string {
	if !r.IsChoice() {
		return r.literal
	}
	return chooser.Choose(r.choices)
}

// Chooser selects one element of a non-empty list.
type Chooser interface {
	Choose(options []string) string
}

// ShuffleChooser shuffles a copy of the options with Fisher-Yates and takes
// the first element, so every option is equally likely.
type ShuffleChooser struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewShuffleChooser creates a chooser. A nil source uses the global generator.
func NewShuffleChooser(src rand.Source) *ShuffleChooser {
	c := &ShuffleChooser{}
	if src != nil {
		c.rnd = rand.New(src)
	}
	return c
}

// Choose implements Chooser.
func (c *ShuffleChooser) Choose(options []string) string {
	if len(options) == 0 {
		return ""
	}
	shuffled := append([]string(nil), options...)

	c.mu.Lock()
	defer c.mu.Unlock()
	swap := func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }
	if c.rnd != nil {
		c.rnd.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}
	return shuffled[0]
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(options []string) string

// Choose implements Chooser.
func (f ChooserFunc) Choose(options []string) string {
	return f(options)
}
