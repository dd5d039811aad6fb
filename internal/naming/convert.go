package naming

import "strings"

// Convert rewrites filename from the src format to dst and gives it ext.
//
// When src and dst agree on both prefix and format the name is returned
// untouched, extension included. When dst has no known convention the
// name is also returned untouched; callers that need dst to hold must
// Detect the result.
func Convert(filename string, src, dst NamingFormat, ext string) string {
	if src.Format == dst.Format && src.Prefix == dst.Prefix {
		return filename
	}

	c, ok := lookup(dst.Format)
	if !ok {
		return filename
	}

	stem := strings.TrimPrefix(TrimExt(filename), src.Prefix)
	return dst.Prefix + c.convert(stem) + ext
}

// TrimExt removes everything from the last dot of filename.
func TrimExt(filename string) string {
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		return filename[:i]
	}
	return filename
}
