// Package config provides settings management for the syncopener CLI.
//
// Settings tune how counterparts are found and opened. They are distinct
// from the pairs file at the workspace root, which is handled by package
// pairs.
//
// # Settings File
//
// config.yaml is searched in the current directory and then in
// $XDG_CONFIG_HOME/syncopener (overridable with SYNCOPENER_CONFIG_DIR):
//
//	match: segment          # or substring
//	settle_delay: 100ms     # 0 disables
//	editor: code --reuse-window
//	extensions: [.ts, .tsx, .js, .jsx, .html, .css, .scss]
//	exclude:
//	  - "**/node_modules/**"
//
// Every key can be overridden from the environment with the SYNCOPENER_
// prefix, for example SYNCOPENER_MATCH=substring.
//
// # Loading Settings
//
//	config.Init()
//	s, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	r, err := s.Resolver()
package config
