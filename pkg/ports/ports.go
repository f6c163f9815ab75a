// Package ports defines the driven ports (interfaces) for the Forkpath
// engine, decoupling the core from graph storage.
package ports

import "github.com/forkpath-dev/forkpath/pkg/domain"

// GraphSource supplies the raw question set for a conversation tree.
// Implementations load from memory, files, or any other backend; validation
// happens afterwards in domain.NewGraph.
type GraphSource interface {
	// Load returns the root question ID and every question of the tree.
	Load() (root string, questions []domain.Question, err error)
}
