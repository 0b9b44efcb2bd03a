package textstat

import "strings"

const vowels = "aeiouy"

// CountSyllables estimates syllables in an English word by counting
// vowel groups. A trailing silent 'e' is discounted and every word gets
// at least one syllable.
func CountSyllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}

	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") {
		count--
	}
	if count <= 0 {
		count = 1
	}
	return count
}
