// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package composer

import (
	"regexp"
	"unicode/utf8"
)

// wordRe matches runs of word characters. Splitting on the complement yields
// the same tokens.
var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Span marks a misspelled word. Start and Length are in runes, relative to
// the start of the content (after the prefix).
type Span struct {
	Start  int
	Length int
	Word   string
}

type token struct {
	word  string
	start int
	size  int
}

func tokenize(content string) []token {
	locs := wordRe.FindAllStringIndex(content, -1)
	tokens := make([]token, 0, len(locs))
	runeOff, byteOff := 0, 0
	for _, loc := range locs {
		runeOff += utf8.RuneCountInString(content[byteOff:loc[0]])
		word := content[loc[0]:loc[1]]
		n := utf8.RuneCountInString(word)
		tokens = append(tokens, token{word: word, start: runeOff, size: n})
		runeOff += n
		byteOff = loc[1]
	}
	return tokens
}

// uniqueWords returns the distinct token words in first-seen order.
func uniqueWords(tokens []token) []string {
	seen := make(map[string]struct{}, len(tokens))
	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t.word]; ok {
			continue
		}
		seen[t.word] = struct{}{}
		words = append(words, t.word)
	}
	return words
}

// misspelled marks every occurrence of every word the speller does not know.
func misspelled(content string, sp Speller) []Span {
	if sp == nil {
		return nil
	}
	tokens := tokenize(content)
	if len(tokens) == 0 {
		return nil
	}
	unknown := sp.UnknownWords(uniqueWords(tokens))
	if len(unknown) == 0 {
		return nil
	}
	bad := make(map[string]struct{}, len(unknown))
	for _, w := range unknown {
		bad[w] = struct{}{}
	}
	var spans []Span
	for _, t := range tokens {
		if _, ok := bad[t.word]; ok {
			spans = append(spans, Span{Start: t.start, Length: t.size, Word: t.word})
		}
	}
	return spans
}
