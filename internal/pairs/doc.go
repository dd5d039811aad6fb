// Package pairs loads the per-workspace directory pair configuration.
//
// The canonical file is ".syncopener" at the workspace root, a JSON array:
//
//	[
//	  {
//	    "directory1": {"path": "components", "extension": ".tsx"},
//	    "directory2": {
//	      "path": "styles",
//	      "extension": ".scss",
//	      "fileFormat": {"prefix": "", "format": "kebab-case"}
//	    }
//	  }
//	]
//
// When ".syncopener" is absent, ".syncopener.yaml", ".syncopener.yml" and
// ".syncopener.toml" are tried in that order. The YAML form is the same
// sequence; the TOML form wraps it in [[pairs]] tables.
//
// Configuration is never cached: callers [Load] it for every event.
package pairs
