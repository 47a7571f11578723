package domain

// Document identities are content-derived SHA-256 hashes, assigned at upload
// and immutable afterwards. They key every cache entry and job record.
const documentHashLen = 64

// ValidDocumentHash reports whether s looks like a SHA-256 hex digest.
func ValidDocumentHash(s string) bool {
	if len(s) != documentHashLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
