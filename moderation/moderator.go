package moderation

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Moderator censors listing and chat content against a word list.
// Matching ignores case, punctuation and common leet substitutions, so
// "B.4.d.g.3r" is caught by "badger".
type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
	log          *slog.Logger
}

type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewModerator builds the Aho-Corasick automaton over the normalized words.
// Words made only of noise are dropped.
func NewModerator(censoredWords []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	patterns := make([][]rune, 0, len(censoredWords))
	for _, word := range lo.Uniq(censoredWords) {
		if pattern := normalizeRunes([]rune(word)); len(pattern) > 0 {
			patterns = append(patterns, pattern)
		}
	}
	m := &Moderator{censoredChar: censoredChar, log: log}
	if len(patterns) == 0 {
		log.Warn("Moderator built without any censored word")
		return m, nil
	}
	m.matcher = new(goahocorasick.Machine)
	if err := m.matcher.Build(patterns); err != nil {
		return nil, err
	}
	log.Debug("Moderator ready", "patterns", len(patterns))
	return m, nil
}

// Censor replaces every rune of a matched span, noise included, and returns
// the censored words in order of appearance.
func (m *Moderator) Censor(original string) (string, []string) {
	if m.matcher == nil {
		return original, nil
	}
	mapping := normalize(original)
	if len(mapping.normalized) == 0 {
		return original, nil
	}
	spans := m.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	runes := []rune(original)
	var words []string
	for _, span := range spans {
		start, end := span.Pos, span.Pos+len(span.Word)
		if start < 0 || end > len(mapping.origIdx) {
			continue
		}
		for i := mapping.origIdx[start]; i <= mapping.origIdx[end-1]; i++ {
			runes[i] = m.censoredChar
		}
		words = append(words, string(span.Word))
	}
	return string(runes), words
}

// Filter satisfies the chat interactor's content filter.
func (m *Moderator) Filter(content string) string {
	censored, words := m.Censor(content)
	if len(words) > 0 {
		m.log.Debug("Content censored", "words", len(words))
	}
	return censored
}

func normalize(input string) textMapping {
	runes := []rune(input)
	mapping := textMapping{
		normalized: make([]rune, 0, len(runes)),
		origIdx:    make([]int, 0, len(runes)),
	}
	for i, r := range runes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		mapping.normalized = append(mapping.normalized, unicode.ToLower(clean))
		mapping.origIdx = append(mapping.origIdx, i)
	}
	return mapping
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps leet characters back to letters.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
