package utils

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const humanizedWordSeparator = " "

// Humanize turns an identifier-like file or directory name into title-cased words.
// Hyphens and underscores become spaces, every ASCII capital letter after the
// first character starts a new word, and each word is capitalized with the
// remaining letters lowered. "userProfile-card" becomes "User Profile Card" and
// "HTTPClient" becomes "H T T P Client".
func Humanize(name string) string {
	var spacedName strings.Builder
	spacedName.Grow(len(name) * 2)
	for characterIndex, character := range name {
		if character == '-' || character == '_' {
			spacedName.WriteString(humanizedWordSeparator)
			continue
		}
		if characterIndex > 0 && character >= 'A' && character <= 'Z' {
			spacedName.WriteString(humanizedWordSeparator)
		}
		spacedName.WriteRune(character)
	}

	words := strings.Fields(spacedName.String())
	for wordIndex, word := range words {
		words[wordIndex] = capitalizeWord(word)
	}
	return strings.Join(words, humanizedWordSeparator)
}

// capitalizeWord title-cases the first rune and lowers the rest, so "2D" becomes "2d".
func capitalizeWord(word string) string {
	firstRune, firstRuneSize := utf8.DecodeRuneInString(word)
	titleCaser := cases.Title(language.English)
	lowerCaser := cases.Lower(language.English)
	return titleCaser.String(string(firstRune)) + lowerCaser.String(word[firstRuneSize:])
}
