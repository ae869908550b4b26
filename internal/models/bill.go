package models

import (
	"sort"

	"github.com/MitulNakrani003/GroupBillSplitter/internal/calculator"
)

// Participant is a named party who may owe money across one or more items.
type Participant struct {
	// Name identifies the participant within one bill.
	Name string

	// TotalDue is the sum of this participant's shares across all items.
	// It is maintained exclusively by the bill's recompute pass; callers
	// must never write it directly.
	TotalDue float64
}

// Item is a single priced expense entry shared by a subset of participants.
// Items are immutable once added; to change one, remove it and add it back.
type Item struct {
	// Name identifies the item within one bill. Names should be unique:
	// RemoveItem resolves duplicates to the first match in ledger order.
	Name string

	// Price is the full cost of the item, before splitting.
	Price float64

	// Participants lists who shares this item, in the order given.
	// Order matters: when the price does not divide evenly, the leading
	// participants absorb the leftover cents.
	Participants []string
}

// Bill is the aggregate root holding all items and participants for one
// editing session. The zero value is not usable; construct with NewBill.
type Bill struct {
	// Description is a free-text label for the bill.
	Description string

	// Items is the ledger, in insertion order. Insertion order is
	// significant for display and for first-match removal.
	Items []Item

	participants map[string]*Participant
}

// NewBill creates an empty bill with the given description.
func NewBill(description string) *Bill {
	return &Bill{
		Description:  description,
		participants: make(map[string]*Participant),
	}
}

// AddParticipant registers a participant with a zero total if not
// already present. Adding an existing participant is a no-op; the
// existing total is untouched.
func (b *Bill) AddParticipant(name string) {
	if name == "" {
		return
	}
	if _, ok := b.participants[name]; !ok {
		b.participants[name] = &Participant{Name: name}
	}
}

// AddItem appends an item to the ledger, registers any participants the
// bill has not seen before, and recomputes all totals. The item and its
// participants appear together or not at all.
//
// An item with no participants is tolerated: its price counts toward
// item-level totals but it contributes nothing to anyone. Items are not
// deduplicated against existing names.
func (b *Bill) AddItem(name string, price float64, participants []string) {
	b.Items = append(b.Items, Item{Name: name, Price: price, Participants: participants})
	for _, p := range participants {
		b.AddParticipant(p)
	}
	b.recalculateTotals()
}

// RemoveItem removes the first item in ledger order whose name matches
// and recomputes all totals. It reports whether an item was removed; an
// unknown name is a no-op, not an error. Participants referenced only
// by the removed item stay registered with a zero total.
func (b *Bill) RemoveItem(name string) bool {
	for i, item := range b.Items {
		if item.Name == name {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
			b.recalculateTotals()
			return true
		}
	}
	return false
}

// Totals returns a snapshot of every registered participant's total due.
func (b *Bill) Totals() map[string]float64 {
	totals := make(map[string]float64, len(b.participants))
	for name, p := range b.participants {
		totals[name] = p.TotalDue
	}
	return totals
}

// ParticipantNames returns the registered participant names in
// lexicographic order.
func (b *Bill) ParticipantNames() []string {
	names := make([]string, 0, len(b.participants))
	for name := range b.participants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// recalculateTotals rebuilds every participant total from the full
// ledger. There is deliberately no incremental path; recomputing from
// scratch keeps the totals consistent with the items by construction.
// A name referenced by an item but missing from the registry is skipped.
func (b *Bill) recalculateTotals() {
	for _, p := range b.participants {
		p.TotalDue = 0
	}
	for _, item := range b.Items {
		if len(item.Participants) == 0 {
			continue
		}
		for name, share := range calculator.SplitEven(item.Price, item.Participants) {
			if p, ok := b.participants[name]; ok {
				p.TotalDue += share
			}
		}
	}
}
