//go:build manifold

// Package manifold provides a CGo-based geometry kernel binding to the
// Manifold library. The binding is not implemented yet; building with
// the "manifold" tag fails deliberately so the stub cannot be shadowed
// by accident.
package manifold

import (
	"errors"

	"github.com/kherm/brickyard/pkg/kernel"
)

// New will return a Manifold-backed kernel once the binding lands.
func New() (kernel.Kernel, error) {
	return nil, errors.New("manifold kernel binding not implemented")
}
