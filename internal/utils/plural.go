package utils

// Plural returns word for a count of one and its plural otherwise. A non-empty customPlural
// replaces the default "s" suffix.
func Plural(count int, word string, customPlural string) string {
	if count == 1 {
		return word
	}
	if customPlural != "" {
		return customPlural
	}
	return word + "s"
}
