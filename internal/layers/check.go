// Package layers enforces the dependency direction between the runtime's
// tiers: the pure domain layer must not reach into the stateful layers.
//
// The rules are checked by parsing import clauses rather than by any
// compile-time trick, so they can run in CI against the module source.
package layers

import (
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
)

// Violation describes one forbidden import.
type Violation struct {
	File   string
	Import string
	Reason string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s imports %q: %s", v.File, v.Import, v.Reason)
}

// rule forbids certain imports for all files under a directory.
type rule struct {
	dir       string
	forbidden func(modulePath, imp string) (bool, string)
}

var rules = []rule{
	{
		// L1: the domain layer depends on nothing but the standard library.
		dir: filepath.Join("pkg", "domain"),
		forbidden: func(modulePath, imp string) (bool, string) {
			if !stdlib(imp) {
				return true, "domain must only import the standard library"
			}
			return false, ""
		},
	},
	{
		// The translator is pure; it may not reach the dispatcher.
		dir: filepath.Join("pkg", "translate"),
		forbidden: func(modulePath, imp string) (bool, string) {
			if imp == modulePath+"/pkg/store" {
				return true, "translate must not depend on the store"
			}
			return false, ""
		},
	},
	{
		// Effects are driven by the store, never the other way around.
		dir: filepath.Join("pkg", "effect"),
		forbidden: func(modulePath, imp string) (bool, string) {
			if imp == modulePath+"/pkg/store" {
				return true, "effect must not depend on the store"
			}
			return false, ""
		},
	},
}

// Check walks the module rooted at root and returns every layer violation.
// Test files are exempt: they may wire any layers together.
func Check(root, modulePath string) ([]Violation, error) {
	var violations []Violation

	for _, r := range rules {
		dir := filepath.Join(root, r.dir)
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// A missing layer directory is not a violation.
				return filepath.SkipAll
			}
			if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
				return nil
			}

			imports, err := fileImports(path)
			if err != nil {
				return err
			}
			for _, imp := range imports {
				if bad, reason := r.forbidden(modulePath, imp); bad {
					rel, relErr := filepath.Rel(root, path)
					if relErr != nil {
						rel = path
					}
					violations = append(violations, Violation{File: rel, Import: imp, Reason: reason})
				}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", r.dir, err)
		}
	}

	return violations, nil
}

func fileImports(path string) ([]string, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	imports := make([]string, 0, len(f.Imports))
	for _, spec := range f.Imports {
		imp, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		imports = append(imports, imp)
	}
	return imports, nil
}

// stdlib reports whether an import path belongs to the standard library:
// no dot in the first path segment.
func stdlib(imp string) bool {
	first, _, _ := strings.Cut(imp, "/")
	return !strings.Contains(first, ".")
}
