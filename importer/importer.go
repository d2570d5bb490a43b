/*
File    : nimble/importer/importer.go
*/

// Package importer implements the `import` statement's file loader
// (spec §6), repurposing the teacher's file package — which wrapped a
// native OS file handle behind language builtins (fopen/fread/...) — to
// instead drive the full lex→parse→resolve→interpret pipeline against a
// shared Interpreter so an imported file's top-level declarations land
// in the same globals as the importing script.
package importer

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/nimblelang/nimble/interp"
	"github.com/nimblelang/nimble/parser"
	"github.com/nimblelang/nimble/resolver"
)

// Loader implements both resolver.Importer and interp.Importer: the
// resolver calls Resolve while statically walking the importing file's
// AST (so the imported file's own variable references get distances
// recorded into the same side-table); the interpreter calls Load when
// the `import` statement actually executes.
type Loader struct {
	mu    sync.Mutex
	stmts map[string][]parser.Stmt
}

func New() *Loader {
	return &Loader{stmts: make(map[string][]parser.Stmt)}
}

// Resolve reads, lexes, parses, and resolves path's contents against r
// (the same Resolver walking the importing file), caching the parsed
// statements for Load to execute later.
func (l *Loader) Resolve(path string, r *resolver.Resolver) ([]parser.Stmt, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}

	p := parser.NewParser(string(src))
	stmts := p.Parse()
	if p.HasErrors() {
		return nil, fmt.Errorf("%s: %s", path, strings.Join(p.GetErrors(), "; "))
	}

	r.Resolve(stmts)
	if r.HasErrors() {
		return nil, fmt.Errorf("%s: %s", path, strings.Join(r.GetErrors(), "; "))
	}

	l.mu.Lock()
	l.stmts[path] = stmts
	l.mu.Unlock()
	return stmts, nil
}

// Load executes path's previously resolved statements against in,
// fulfilling the spec's "import runs the file's top-level statements
// against the current interpreter, sharing globals" semantics. If the
// resolver never visited this path (the only way that happens is a
// bug upstream, since the resolver's static walk reaches every Import
// node regardless of runtime control flow), it resolves lazily here
// using a fresh Resolver and merges the resulting distances in.
func (l *Loader) Load(path string, in *interp.Interpreter) error {
	l.mu.Lock()
	stmts, ok := l.stmts[path]
	l.mu.Unlock()

	if !ok {
		r := resolver.New()
		r.Importer = l
		var err error
		stmts, err = l.Resolve(path, r)
		if err != nil {
			return err
		}
		in.MergeLocals(r.Locals)
	}

	if in.Interpret(stmts) {
		return fmt.Errorf("runtime error while importing %q", path)
	}
	return nil
}
