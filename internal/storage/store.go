// Package storage provides abstractions for persisting name lists.
package storage

import "context"

// Store defines the persistence interface for the lists the editing
// session keeps between runs: the known participant names and the named
// group presets. Loads give no uniqueness guarantee, so implementations
// are expected to dedupe on save.
//
// This abstraction allows swapping storage backends (SQLite, flat
// files, etc.) without changing the service layer. Bills themselves are
// never persisted; the only durable bill artifact is the exported
// summary document.
type Store interface {
	// LoadParticipants returns the known participant names, sorted.
	LoadParticipants(ctx context.Context) ([]string, error)

	// SaveParticipants replaces the stored participant names with the
	// given list, deduplicated and sorted.
	SaveParticipants(ctx context.Context, names []string) error

	// LoadGroups returns every stored group as a name-to-members
	// mapping. Member order is preserved as saved.
	LoadGroups(ctx context.Context) (map[string][]string, error)

	// SaveGroups replaces the stored groups with the given mapping.
	SaveGroups(ctx context.Context, groups map[string][]string) error

	// Close releases any resources held by the store.
	Close() error
}
