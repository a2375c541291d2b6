package library

// TruncateString shortens s to at most maxLength characters for table
// columns, marking the cut with "...". It counts runes, so multi-byte
// characters are never split.
func TruncateString(s string, maxLength int) string {
	r := []rune(s)
	if len(r) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return string(r[:maxLength])
	}
	return string(r[:maxLength-3]) + "..."
}
