// Package summary projects a bill into the item × participant
// owed-amount matrix and renders it as the interchange document.
//
// The projection is read-only: it consumes a bill snapshot and owns no
// state of its own.
package summary

import (
	"github.com/MitulNakrani003/GroupBillSplitter/internal/calculator"
	"github.com/MitulNakrani003/GroupBillSplitter/internal/models"
)

const (
	// TotalPriceColumn labels the synthetic first column holding each
	// item's full price.
	TotalPriceColumn = "Total Price"

	// TotalRow labels the synthetic final row holding per-column sums.
	TotalRow = "Total"
)

// Row is one row of the summary matrix: an item, or the final totals row.
type Row struct {
	Label string
	Cells map[string]float64
}

// Summary is the matrix built from one bill snapshot. Rows are the
// items in ledger order followed by the totals row. Columns is
// TotalPriceColumn followed by the participant names in lexicographic
// order — a display-stability choice, deliberately independent of the
// insertion-ordered rows.
type Summary struct {
	Columns []string
	Rows    []Row
}

// Build projects the bill into its summary matrix.
//
// Each item row carries the item's price under TotalPriceColumn and
// every participant's share of that item (zero when they are not on
// it). A bill with no items yields no rows at all, not even the totals
// row; the column set is still populated so callers can render an
// empty table.
func Build(bill *models.Bill) *Summary {
	participants := bill.ParticipantNames()
	columns := append([]string{TotalPriceColumn}, participants...)
	s := &Summary{Columns: columns}
	if len(bill.Items) == 0 {
		return s
	}

	totals := make(map[string]float64, len(columns))
	for _, col := range columns {
		totals[col] = 0
	}

	for _, item := range bill.Items {
		cells := make(map[string]float64, len(columns))
		cells[TotalPriceColumn] = item.Price
		for _, name := range participants {
			cells[name] = 0
		}
		for name, share := range calculator.SplitEven(item.Price, item.Participants) {
			// Names outside the registry are skipped, matching the
			// bill's own recompute pass.
			if _, ok := cells[name]; ok {
				cells[name] = share
			}
		}
		for col, v := range cells {
			totals[col] += v
		}
		s.Rows = append(s.Rows, Row{Label: item.Name, Cells: cells})
	}

	s.Rows = append(s.Rows, Row{Label: TotalRow, Cells: totals})
	return s
}
