// Package naming detects and converts the casing convention of file names.
//
// A file name is split into a prefix (the leading run of characters that are
// not ASCII letters or digits, such as "_" or "."), a stem and an extension.
// [Detect] classifies the stem as camelCase, PascalCase, kebab-case or
// snake_case; [Convert] rewrites a name from one [NamingFormat] to another:
//
//	src := naming.Detect("myComponent.ts")          // {"" camel-case}
//	dst := naming.NamingFormat{Format: naming.Kebab}
//	naming.Convert("myComponent.ts", src, dst, ".html") // "my-component.html"
//
// Conventions are held in a table keyed by [Format]; each entry pairs a
// detection pattern with a stem transform. Detection tries the entries in
// table order and the first match wins.
package naming
