// Package service coordinates one editing session: the current bill,
// the persisted name lists, and the summary export.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/MitulNakrani003/GroupBillSplitter/internal/models"
	"github.com/MitulNakrani003/GroupBillSplitter/internal/storage"
	"github.com/MitulNakrani003/GroupBillSplitter/internal/summary"
)

// Validation sentinels. The bill aggregate assumes validated input, so
// this service is the layer that rejects malformed submissions before
// they can touch the ledger. A rejected call leaves the bill untouched.
var (
	ErrEmptyName      = errors.New("name must not be empty")
	ErrNegativePrice  = errors.New("price must not be negative")
	ErrNoParticipants = errors.New("at least one participant is required")
	ErrGroupNotFound  = errors.New("group not found")
)

// AddItemInput carries one add-item submission. Group, when set, names
// a stored preset whose members are appended to Participants before the
// item is added; the bill itself never sees groups.
type AddItemInput struct {
	Name         string
	Price        float64
	Participants []string
	Group        string
}

// BillService owns the single in-progress bill of the editing session.
// All methods serialize on an internal mutex: the core assumes exactly
// one editor at a time, so concurrent callers (HTTP requests) are
// serialized here rather than inside the bill.
type BillService struct {
	mu    sync.Mutex
	bill  *models.Bill
	store storage.Store
}

// NewBillService creates a service with an empty, untitled bill.
func NewBillService(store storage.Store) *BillService {
	return &BillService{
		bill:  models.NewBill(""),
		store: store,
	}
}

// NewBill discards the current bill and starts a fresh one. The old
// bill is replaced wholesale, never partially reset.
func (s *BillService) NewBill(description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bill = models.NewBill(description)
	slog.Info("Started new bill", "description", description)
}

// AddParticipant registers a participant on the current bill and
// remembers the name in the store for future sessions.
func (s *BillService) AddParticipant(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	s.bill.AddParticipant(name)
	s.mu.Unlock()

	s.rememberNames(ctx, name)
	return nil
}

// AddItem validates the submission, expands the group preset if one is
// named, and adds the item to the bill. It reports whether the item
// name already existed on the ledger so callers can warn about the
// first-match removal ambiguity.
func (s *BillService) AddItem(ctx context.Context, in AddItemInput) (duplicate bool, err error) {
	if in.Name == "" {
		return false, ErrEmptyName
	}
	if in.Price < 0 {
		return false, ErrNegativePrice
	}

	participants := in.Participants
	if in.Group != "" {
		members, err := s.groupMembers(ctx, in.Group)
		if err != nil {
			return false, err
		}
		participants = append(participants, members...)
	}
	participants = mergeNames(participants)
	if len(participants) == 0 {
		return false, ErrNoParticipants
	}

	s.mu.Lock()
	for _, item := range s.bill.Items {
		if item.Name == in.Name {
			duplicate = true
			break
		}
	}
	s.bill.AddItem(in.Name, in.Price, participants)
	s.mu.Unlock()

	slog.Info("Item added",
		"item", in.Name,
		"price", in.Price,
		"participants", participants,
		"duplicate_name", duplicate,
	)
	s.rememberNames(ctx, participants...)
	return duplicate, nil
}

// RemoveItem removes the first item whose name matches and reports
// whether anything was removed. An unknown name is not an error.
func (s *BillService) RemoveItem(name string) bool {
	s.mu.Lock()
	removed := s.bill.RemoveItem(name)
	s.mu.Unlock()

	slog.Info("Item removal", "item", name, "removed", removed)
	return removed
}

// Totals returns a snapshot of every participant's total due.
func (s *BillService) Totals() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bill.Totals()
}

// Summary builds the item × participant matrix for the current bill.
func (s *BillService) Summary() *summary.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summary.Build(s.bill)
}

// Document builds the interchange document for the current bill.
func (s *BillService) Document() summary.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summary.NewDocument(s.bill)
}

// Export writes the current bill's summary document to w. Encoding
// happens before anything is written, so a failure never leaves a
// partial document on w.
func (s *BillService) Export(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summary.Write(w, s.bill)
}

// KnownParticipants returns the participant names remembered across
// sessions.
func (s *BillService) KnownParticipants(ctx context.Context) ([]string, error) {
	names, err := s.store.LoadParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	return names, nil
}

// Groups returns the stored group presets.
func (s *BillService) Groups(ctx context.Context) (map[string][]string, error) {
	groups, err := s.store.LoadGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}
	return groups, nil
}

// SaveGroups replaces the stored group presets.
func (s *BillService) SaveGroups(ctx context.Context, groups map[string][]string) error {
	if err := s.store.SaveGroups(ctx, groups); err != nil {
		return fmt.Errorf("failed to save groups: %w", err)
	}
	slog.Info("Groups saved", "count", len(groups))
	return nil
}

// groupMembers expands a stored group preset to its flat member list.
func (s *BillService) groupMembers(ctx context.Context, name string) ([]string, error) {
	groups, err := s.store.LoadGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}
	members, ok := groups[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, name)
	}
	return members, nil
}

// rememberNames merges names into the persisted participant list. The
// list is a convenience for future sessions, so a store failure is
// logged and swallowed rather than failing the mutation that already
// succeeded.
func (s *BillService) rememberNames(ctx context.Context, names ...string) {
	known, err := s.store.LoadParticipants(ctx)
	if err != nil {
		slog.Warn("rememberNames: failed to load participants", "error", err)
		return
	}
	merged := mergeNames(append(known, names...))
	if len(merged) == len(known) {
		return
	}
	if err := s.store.SaveParticipants(ctx, merged); err != nil {
		slog.Warn("rememberNames: failed to save participants", "error", err)
	}
}

// mergeNames drops empty and repeated names, keeping first-occurrence
// order so the cent-distribution order of an item's participant list
// survives the merge.
func mergeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
