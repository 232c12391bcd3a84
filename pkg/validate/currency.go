package validate

// IsCurrencyCode reports whether s looks like an ISO 4217 alphabetic code:
// exactly three ASCII letters, case-insensitive.
func IsCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, c := range s {
		if !('A' <= c && c <= 'Z' || 'a' <= c && c <= 'z') {
			return false
		}
	}
	return true
}
