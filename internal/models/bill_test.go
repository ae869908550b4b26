package models

import (
	"math"
	"testing"

	"github.com/MitulNakrani003/GroupBillSplitter/internal/calculator"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAddParticipantIsIdempotent(t *testing.T) {
	bill := NewBill("dinner")
	bill.AddItem("Pizza", 12.00, []string{"Alice", "Bob"})

	before := bill.Totals()["Alice"]
	bill.AddParticipant("Alice")
	bill.AddParticipant("Alice")

	totals := bill.Totals()
	if len(totals) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(totals))
	}
	if !almostEqual(totals["Alice"], before) {
		t.Errorf("duplicate registration changed Alice's total: %v -> %v", before, totals["Alice"])
	}
}

func TestAddItemRegistersUnknownParticipants(t *testing.T) {
	bill := NewBill("lunch")
	bill.AddItem("Soup", 6.00, []string{"Carol", "Dave"})

	totals := bill.Totals()
	for _, name := range []string{"Carol", "Dave"} {
		got, ok := totals[name]
		if !ok {
			t.Fatalf("participant %s not registered by AddItem", name)
		}
		if !almostEqual(got, 3.00) {
			t.Errorf("%s owes %v, want 3.00", name, got)
		}
	}
}

func TestRemoveItemRecomputes(t *testing.T) {
	bill := NewBill("dinner")
	bill.AddItem("Pizza", 12.00, []string{"A", "B"})
	bill.AddItem("Soda", 4.00, []string{"A"})

	if !bill.RemoveItem("Pizza") {
		t.Fatal("expected Pizza to be removed")
	}

	totals := bill.Totals()
	if !almostEqual(totals["A"], 4.00) {
		t.Errorf("A owes %v, want 4.00", totals["A"])
	}
	if !almostEqual(totals["B"], 0) {
		t.Errorf("B owes %v, want 0.00 after their only item was removed", totals["B"])
	}
	if _, ok := totals["B"]; !ok {
		t.Error("B should stay registered after item removal")
	}
}

func TestRemoveItemUnknownNameIsNoop(t *testing.T) {
	bill := NewBill("dinner")
	bill.AddItem("Pizza", 12.00, []string{"A"})

	if bill.RemoveItem("Burger") {
		t.Error("removing an unknown item should report false")
	}
	if len(bill.Items) != 1 {
		t.Errorf("ledger changed by a no-op removal: %d items", len(bill.Items))
	}
}

func TestRemoveItemTakesFirstMatch(t *testing.T) {
	bill := NewBill("rounds")
	bill.AddItem("Beer", 5.00, []string{"A"})
	bill.AddItem("Beer", 6.00, []string{"B"})

	if !bill.RemoveItem("Beer") {
		t.Fatal("expected a Beer to be removed")
	}
	if len(bill.Items) != 1 {
		t.Fatalf("expected 1 item left, got %d", len(bill.Items))
	}
	if !almostEqual(bill.Items[0].Price, 6.00) {
		t.Errorf("first match should go first: remaining Beer costs %v, want 6.00", bill.Items[0].Price)
	}
}

func TestZeroParticipantItemContributesToNobody(t *testing.T) {
	bill := NewBill("misc")
	bill.AddParticipant("A")
	bill.AddItem("Service fee", 5.00, nil)

	totals := bill.Totals()
	if !almostEqual(totals["A"], 0) {
		t.Errorf("A owes %v, want 0 for an unassigned item", totals["A"])
	}
	if len(bill.Items) != 1 {
		t.Errorf("unassigned item should still sit in the ledger, got %d items", len(bill.Items))
	}
}

// TestTotalsMatchIndependentRecompute cross-checks the bill's running
// totals against a from-scratch walk over the ledger after a mixed
// sequence of mutations.
func TestTotalsMatchIndependentRecompute(t *testing.T) {
	bill := NewBill("trip")
	bill.AddItem("Hotel", 301.00, []string{"A", "B", "C"})
	bill.AddItem("Gas", 45.67, []string{"A", "B"})
	bill.AddItem("Snacks", 10.01, []string{"C"})
	bill.RemoveItem("Gas")
	bill.AddItem("Dinner", 88.88, []string{"A", "B", "C"})
	bill.AddItem("Parking", 7.50, nil)
	bill.RemoveItem("Nonexistent")

	want := make(map[string]float64)
	for _, item := range bill.Items {
		for name, share := range calculator.SplitEven(item.Price, item.Participants) {
			want[name] += share
		}
	}

	totals := bill.Totals()
	for name, wantTotal := range want {
		if !almostEqual(totals[name], wantTotal) {
			t.Errorf("%s owes %v, independent recompute says %v", name, totals[name], wantTotal)
		}
	}
}

func TestParticipantNamesSorted(t *testing.T) {
	bill := NewBill("order")
	for _, name := range []string{"Zoe", "Adam", "Mia"} {
		bill.AddParticipant(name)
	}

	names := bill.ParticipantNames()
	want := []string{"Adam", "Mia", "Zoe"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}
