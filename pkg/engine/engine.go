// Package engine provides the Lisp scripting engine for Brickyard.
// It wraps zygomys in a sandboxed environment and builds a scene from
// user source code, validating every placement as it goes.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/kherm/brickyard/pkg/catalog"
	"github.com/kherm/brickyard/pkg/collide"
	"github.com/kherm/brickyard/pkg/scene"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error, a runtime error in user code, or an invalid
// brick placement.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine wraps the zygomys interpreter for scripted scene construction.
// It is safe for concurrent use; each call to Evaluate creates a fresh
// sandboxed environment for determinism.
type Engine struct {
	cat *catalog.Catalog
	val *collide.Validator

	mu         sync.Mutex
	generation uint64
}

// NewEngine creates an Engine over the given catalog. Placements made
// by scripts are validated with the same rules as interactive edits.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{
		cat: cat,
		val: collide.NewValidator(cat),
	}
}

// Evaluate runs Lisp source and produces the scene it builds.
// Each call creates a fresh zygomys sandbox for deterministic results.
//
// Return semantics:
//   - On success: returns the scene + nil errors + nil error
//   - On parse/eval failure: returns empty scene + eval errors + nil error
//   - On fatal failure (timeout, panic): returns empty scene + nil + error
func (e *Engine) Evaluate(source string) (scene.Scene, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		s, evalErrs, err := e.evaluate(source)
		ch <- evalResult{scn: s, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (scene.Scene, []EvalError, error) {
	// Empty source is a valid program that produces an empty scene.
	if strings.TrimSpace(source) == "" {
		return scene.New(), nil, nil
	}

	// Sandbox mode prevents user code from accessing the filesystem or
	// syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	b := &builder{cat: e.cat, val: e.val, scn: scene.New()}
	registerBuiltins(env, b)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return scene.Scene{}, parseZygomysError(err), nil
	}

	if _, err := env.Run(); err != nil {
		return scene.Scene{}, parseZygomysError(err), nil
	}

	return b.scn, nil, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError
// values, extracting line numbers from the message where possible.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	// zygomys formats parse errors as "Error on line N: <details>\n"
	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}

	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}

	// Fallback: no line info available.
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
