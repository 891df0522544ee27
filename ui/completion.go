package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"aidj/model"
)

// completionState cycles Tab completions of the command word.
type completionState struct {
	matches []string
	idx     int
}

// Next returns the completion for input. Pressing Tab again on a
// completed word moves to the next candidate.
func (c *completionState) Next(input string) (string, bool) {
	// only the first word completes
	word := strings.TrimLeft(input, " \t")
	if strings.ContainsAny(word, " \t") {
		return "", false
	}

	if len(c.matches) > 0 && word == c.matches[c.idx] {
		c.idx = (c.idx + 1) % len(c.matches)
		return c.matches[c.idx], true
	}

	c.matches = commandCandidates(word)
	c.idx = 0
	if len(c.matches) == 0 {
		return "", false
	}
	return c.matches[0], true
}

func (c *completionState) Reset() {
	c.matches = nil
	c.idx = 0
}

// commandCandidates lists command words for a partial word, prefix
// matches first and then fuzzy matches by score.
func commandCandidates(word string) []string {
	words := model.CommandWords()
	if word == "" {
		return words
	}

	word = strings.ToLower(word)
	var prefixed, rest []string
	for _, match := range fuzzy.Find(word, words) {
		if strings.HasPrefix(match.Str, word) {
			prefixed = append(prefixed, match.Str)
		} else {
			rest = append(rest, match.Str)
		}
	}
	return append(prefixed, rest...)
}
