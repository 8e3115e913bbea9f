package util

import "unicode/utf16"

// runeUnits returns the UTF-16 width of r. Invalid runes are encoded as U+FFFD, one unit.
func runeUnits(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

// UTF16Len returns the length of text measured in UTF-16 code units.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		count += runeUnits(r)
	}
	return count
}

// SplitUTF16 splits text into chunks of at most limit UTF-16 code units.
// Surrogate pairs are never split. A non-positive limit returns text as-is.
func SplitUTF16(text string, limit int) []string {
	if text == "" {
		return nil
	}
	if limit <= 0 || UTF16Len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	start, units := 0, 0
	for i, r := range text {
		w := runeUnits(r)
		if units+w > limit && units > 0 {
			chunks = append(chunks, text[start:i])
			start, units = i, 0
		}
		units += w
	}
	return append(chunks, text[start:])
}
