package utils

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}

// PtrString dereferences s, returning "" for nil.
func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// PtrFloat dereferences f, returning 0 for nil.
func PtrFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
