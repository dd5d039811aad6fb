package naming

import (
	"regexp"
	"strings"
)

// convention is one row of the naming table.
type convention struct {
	format Format
	// pattern matches a prefix-free "stem.ext" name.
	pattern *regexp.Regexp
	// convert rewrites a bare stem (no prefix, no extension).
	convert func(stem string) string
}

var (
	camelSeparator  = regexp.MustCompile(`[^a-zA-Z0-9]+(.)`)
	pascalSeparator = regexp.MustCompile(`(^|[^a-zA-Z0-9]+)(.)`)
	lowerUpper      = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	kebabSeparator  = regexp.MustCompile(`[\s_]+`)
	snakeSeparator  = regexp.MustCompile(`[\s\-]+`)
)

// conventions is ordered by detection priority.
var conventions = []convention{
	{
		format:  Camel,
		pattern: regexp.MustCompile(`^[a-z][a-zA-Z]*\.\w+$`),
		convert: toCamel,
	},
	{
		format:  Pascal,
		pattern: regexp.MustCompile(`^[A-Z][a-zA-Z]*\.\w+$`),
		convert: toPascal,
	},
	{
		format:  Kebab,
		pattern: regexp.MustCompile(`^[a-z]+(-[a-z]+)*\.\w+$`),
		convert: toKebab,
	},
	{
		format:  Snake,
		pattern: regexp.MustCompile(`^[a-z]+(_[a-z]+)*\.\w+$`),
		convert: toSnake,
	},
}

func lookup(f Format) (convention, bool) {
	for _, c := range conventions {
		if c.format == f {
			return c, true
		}
	}
	return convention{}, false
}

// upperLast upper-cases the final character of a separator match, which is
// the character following the separator run.
func upperLast(m string) string {
	r := []rune(m)
	return strings.ToUpper(string(r[len(r)-1]))
}

func toCamel(stem string) string {
	return camelSeparator.ReplaceAllStringFunc(strings.ToLower(stem), upperLast)
}

func toPascal(stem string) string {
	return pascalSeparator.ReplaceAllStringFunc(stem, upperLast)
}

func toKebab(stem string) string {
	s := lowerUpper.ReplaceAllString(stem, "${1}-${2}")
	s = kebabSeparator.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}

func toSnake(stem string) string {
	s := lowerUpper.ReplaceAllString(stem, "${1}_${2}")
	s = snakeSeparator.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}
