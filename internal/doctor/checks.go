package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/pairs"
	"github.com/thoreinstein/syncopener/internal/paths"
)

// maxListed bounds the number of paths reported in check details.
const maxListed = 20

// PairsFileCheck verifies that the workspace has a readable pairs file.
type PairsFileCheck struct {
	ws *Workspace
}

var _ Check = (*PairsFileCheck)(nil)

func (c *PairsFileCheck) Name() string     { return "pairs-file" }
func (c *PairsFileCheck) Category() string { return "config" }

func (c *PairsFileCheck) Run(context.Context) *CheckResult {
	res := &CheckResult{Name: c.Name(), Category: c.Category()}

	switch {
	case errors.Is(c.ws.LoadErr, errors.ErrNotFound):
		res.Status = SeverityError
		res.Message = fmt.Sprintf("no pairs file in %s (looked for %s)", c.ws.Root, strings.Join(pairs.FileNames(), ", "))
		res.FixHint = "Run: syncopener init"
	case c.ws.LoadErr != nil:
		res.Status = SeverityError
		res.Message = c.ws.LoadErr.Error()
		res.FixHint = "Fix the syntax of the pairs file"
	case len(c.ws.pairList()) == 0:
		res.Status = SeverityWarning
		res.Message = filepath.Base(c.ws.Config.Source) + " defines no pairs"
		res.Details = map[string]any{"path": c.ws.Config.Source}
	default:
		res.Status = SeverityPass
		res.Message = fmt.Sprintf("%s defines %d pair(s)", filepath.Base(c.ws.Config.Source), len(c.ws.Config.Pairs))
		res.Details = map[string]any{"path": c.ws.Config.Source, "pairs": len(c.ws.Config.Pairs)}
	}
	return res
}

// PairsValidCheck validates every configured pair.
type PairsValidCheck struct {
	ws *Workspace
}

var _ Check = (*PairsValidCheck)(nil)

func (c *PairsValidCheck) Name() string     { return "pairs-valid" }
func (c *PairsValidCheck) Category() string { return "config" }

func (c *PairsValidCheck) Run(context.Context) *CheckResult {
	res := &CheckResult{Name: c.Name(), Category: c.Category()}
	if c.ws.Config == nil {
		res.Status = SeverityInfo
		res.Message = "skipped, no pairs loaded"
		return res
	}

	errs := pairs.Validate(c.ws.Config)
	if len(errs) == 0 {
		res.Status = SeverityPass
		res.Message = "all pairs are valid"
		return res
	}

	problems := make([]string, 0, len(errs))
	for _, err := range errs {
		problems = append(problems, err.Error())
	}
	res.Status = SeverityError
	res.Message = fmt.Sprintf("%d problem(s) in pairs", len(errs))
	res.Details = map[string]any{"problems": problems}
	res.FixHint = "Paths must be distinct, workspace-relative and non-overlapping"
	return res
}

// DirectoriesCheck verifies that every configured directory exists.
type DirectoriesCheck struct {
	ws *Workspace
}

var _ Check = (*DirectoriesCheck)(nil)

func (c *DirectoriesCheck) Name() string     { return "directories" }
func (c *DirectoriesCheck) Category() string { return "layout" }

func (c *DirectoriesCheck) Run(context.Context) *CheckResult {
	res := &CheckResult{Name: c.Name(), Category: c.Category()}
	list := c.ws.pairList()
	if len(list) == 0 {
		res.Status = SeverityInfo
		res.Message = "skipped, no pairs loaded"
		return res
	}

	var missing []string
	checked := 0
	for _, p := range list {
		for _, s := range []pairs.Side{pairs.Side1, pairs.Side2} {
			dir := p.Dir(s).Path
			if dir == "" {
				continue
			}
			checked++
			info, err := os.Stat(filepath.Join(c.ws.Root, filepath.FromSlash(dir)))
			if err != nil || !info.IsDir() {
				missing = append(missing, dir)
			}
		}
	}

	if len(missing) == 0 {
		res.Status = SeverityPass
		res.Message = fmt.Sprintf("%d director(ies) present", checked)
		return res
	}
	res.Status = SeverityWarning
	res.Message = fmt.Sprintf("%d of %d configured director(ies) missing", len(missing), checked)
	res.Details = map[string]any{"missing": missing}
	res.FixHint = "Create the directories or correct their paths in the pairs file"
	return res
}

// AmbiguityCheck finds files that lie in both directories of a pair.
type AmbiguityCheck struct {
	ws *Workspace
}

var _ Check = (*AmbiguityCheck)(nil)

func (c *AmbiguityCheck) Name() string     { return "ambiguity" }
func (c *AmbiguityCheck) Category() string { return "layout" }

func (c *AmbiguityCheck) Run(context.Context) *CheckResult {
	res := &CheckResult{Name: c.Name(), Category: c.Category()}
	list := c.ws.pairList()
	if len(list) == 0 {
		res.Status = SeverityInfo
		res.Message = "skipped, no pairs loaded"
		return res
	}

	substring := c.ws.Resolver.Strategy().Name() == "substring"
	var ambiguous []string
	for _, p := range list {
		d1, d2 := p.Directory1.Path, p.Directory2.Path
		if d1 == "" || d2 == "" {
			continue
		}
		seen := make(map[string]bool)
		for _, f := range slices.Concat(c.ws.Files(d1), c.ws.Files(d2)) {
			if seen[f] {
				continue
			}
			seen[f] = true
			if c.inBoth(f, d1, d2, substring) {
				ambiguous = append(ambiguous, f)
			}
		}
	}

	if len(ambiguous) == 0 {
		res.Status = SeverityPass
		res.Message = "every file belongs to one side of its pair"
		return res
	}
	res.Status = SeverityWarning
	res.Message = fmt.Sprintf("%d file(s) match both directories of a pair", len(ambiguous))
	res.Details = map[string]any{"count": len(ambiguous), "files": c.ws.sample(ambiguous, maxListed)}
	if substring {
		res.FixHint = "directory1 wins for these files; consider --match segment"
	} else {
		res.FixHint = "the more specific directory wins for these files"
	}
	return res
}

func (c *AmbiguityCheck) inBoth(file, d1, d2 string, substring bool) bool {
	if substring {
		return strings.Contains(file, d1) && strings.Contains(file, d2)
	}
	rel, ok := paths.Rel(c.ws.Root, file)
	if !ok {
		return false
	}
	segs := paths.Segments(rel)
	return paths.HasSegmentPrefix(segs, paths.Segments(d1)) && paths.HasSegmentPrefix(segs, paths.Segments(d2))
}

// OrphanCheck finds files whose counterpart does not exist, and files whose
// names cannot be converted to the other side's convention.
type OrphanCheck struct {
	ws *Workspace
}

var _ Check = (*OrphanCheck)(nil)

func (c *OrphanCheck) Name() string     { return "orphans" }
func (c *OrphanCheck) Category() string { return "layout" }

func (c *OrphanCheck) Run(ctx context.Context) *CheckResult {
	res := &CheckResult{Name: c.Name(), Category: c.Category()}
	list := c.ws.pairList()
	if len(list) == 0 {
		res.Status = SeverityInfo
		res.Message = "skipped, no pairs loaded"
		return res
	}

	var orphans, unresolved []string
	scanned := 0
	for _, p := range list {
		single := &pairs.Config{Pairs: []pairs.Pair{p}}
		for _, s := range []pairs.Side{pairs.Side1, pairs.Side2} {
			dir := p.Dir(s).Path
			if dir == "" {
				continue
			}
			for _, f := range c.ws.Files(dir) {
				scanned++
				r, err := c.ws.Resolver.Resolve(ctx, f, c.ws.Root, single)
				if err != nil {
					unresolved = append(unresolved, f)
					continue
				}
				if _, err := os.Stat(r.Target); os.IsNotExist(err) {
					orphans = append(orphans, f)
				}
			}
		}
	}

	res.Details = map[string]any{"scanned": scanned}
	switch {
	case len(unresolved) > 0:
		res.Status = SeverityWarning
		res.Message = fmt.Sprintf("%d file(s) have names that do not convert to the paired convention", len(unresolved))
		res.FixHint = "Rename the files or set fileFormat for their directory"
	case len(orphans) > 0:
		res.Status = SeverityInfo
		res.Message = fmt.Sprintf("%d of %d file(s) have no counterpart on disk", len(orphans), scanned)
	default:
		res.Status = SeverityPass
		res.Message = fmt.Sprintf("all %d file(s) have a counterpart", scanned)
	}
	if len(orphans) > 0 {
		res.Details["orphans"] = c.ws.sample(orphans, maxListed)
	}
	if len(unresolved) > 0 {
		res.Details["unresolved"] = c.ws.sample(unresolved, maxListed)
	}
	return res
}

// SettingsCheck reports whether the tool settings loaded.
type SettingsCheck struct {
	// Path is the settings file in use, if any.
	Path string
	// Err is the load error, if any.
	Err error
}

var _ Check = (*SettingsCheck)(nil)

func (c *SettingsCheck) Name() string     { return "settings" }
func (c *SettingsCheck) Category() string { return "config" }

func (c *SettingsCheck) Run(context.Context) *CheckResult {
	res := &CheckResult{Name: c.Name(), Category: c.Category()}
	switch {
	case c.Err != nil:
		res.Status = SeverityError
		res.Message = c.Err.Error()
		res.FixHint = "Fix the settings file; defaults were used for this run"
	case c.Path == "":
		res.Status = SeverityPass
		res.Message = "using default settings"
	default:
		res.Status = SeverityPass
		res.Message = "loaded " + c.Path
	}
	if c.Path != "" {
		res.Details = map[string]any{"path": c.Path}
	}
	return res
}
