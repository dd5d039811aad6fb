package naming

// Detect returns the prefix and convention of filename. The name must
// include its extension; a name without one is always Unknown.
func Detect(filename string) NamingFormat {
	prefix := Prefix(filename)
	clean := filename[len(prefix):]

	for _, c := range conventions {
		if c.pattern.MatchString(clean) {
			return NamingFormat{Prefix: prefix, Format: c.format}
		}
	}
	return NamingFormat{Prefix: prefix, Format: Unknown}
}

// Prefix returns the leading run of characters that are not ASCII letters
// or digits.
func Prefix(filename string) string {
	for i := 0; i < len(filename); i++ {
		if isAlnum(filename[i]) {
			return filename[:i]
		}
	}
	return filename
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
