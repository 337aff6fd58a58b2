package service

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

type ITextService interface {
	SoftTitle(input string) string
	NormalizeDashes(input string) string
	CollapseWhitespace(input string) string
	NormalizeDecimal(input string) string
}

type TextService struct{}

func NewTextService() *TextService {
	return &TextService{}
}

// connectorWords stay lower-cased inside a title unless they open or close it.
var connectorWords = map[string]struct{}{
	"de": {}, "du": {}, "des": {}, "la": {}, "le": {}, "les": {},
	"et": {}, "ou": {}, "à": {}, "au": {}, "aux": {},
	"the": {}, "of": {}, "for": {}, "and": {}, "in": {}, "on": {}, "with": {},
}

const acronymMaxLen = 4

var (
	dashVariants  = regexp.MustCompile("[‐‑‒–—―−]")
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// SoftTitle applies a light title casing: short all-caps words are kept
// as-is, connector words are lower-cased except at either edge, anything
// else gets its first letter upper-cased with the rest left untouched.
func (ts *TextService) SoftTitle(input string) string {
	words := strings.Fields(input)
	if len(words) == 0 {
		return ""
	}

	for i, word := range words {
		if isShortAcronym(word) {
			continue
		}
		if _, ok := connectorWords[strings.ToLower(word)]; ok && i != 0 && i != len(words)-1 {
			words[i] = strings.ToLower(word)
			continue
		}
		words[i] = upperFirst(word)
	}
	return strings.Join(words, " ")
}

func (ts *TextService) NormalizeDashes(input string) string {
	return dashVariants.ReplaceAllString(input, "-")
}

func (ts *TextService) CollapseWhitespace(input string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(input, " "))
}

// NormalizeDecimal turns a comma decimal separator into a dot.
func (ts *TextService) NormalizeDecimal(input string) string {
	return strings.Replace(input, ",", ".", 1)
}

func isShortAcronym(word string) bool {
	if utf8.RuneCountInString(word) > acronymMaxLen {
		return false
	}
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func upperFirst(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
