package summary

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MitulNakrani003/GroupBillSplitter/internal/models"
)

func TestBuildMatrix(t *testing.T) {
	bill := models.NewBill("dinner")
	bill.AddItem("Pizza", 12.00, []string{"A", "B"})
	bill.AddItem("Soda", 4.00, []string{"A"})

	s := Build(bill)

	assert.Equal(t, []string{TotalPriceColumn, "A", "B"}, s.Columns)
	require.Len(t, s.Rows, 3)

	pizza := s.Rows[0]
	assert.Equal(t, "Pizza", pizza.Label)
	assert.InDelta(t, 12.00, pizza.Cells[TotalPriceColumn], 1e-9)
	assert.InDelta(t, 6.00, pizza.Cells["A"], 1e-9)
	assert.InDelta(t, 6.00, pizza.Cells["B"], 1e-9)

	soda := s.Rows[1]
	assert.Equal(t, "Soda", soda.Label)
	assert.InDelta(t, 4.00, soda.Cells[TotalPriceColumn], 1e-9)
	assert.InDelta(t, 4.00, soda.Cells["A"], 1e-9)
	assert.InDelta(t, 0.00, soda.Cells["B"], 1e-9)

	total := s.Rows[2]
	assert.Equal(t, TotalRow, total.Label)
	assert.InDelta(t, 16.00, total.Cells[TotalPriceColumn], 1e-9)

	// The totals row must agree with the bill's own accounting.
	for name, due := range bill.Totals() {
		assert.InDelta(t, due, total.Cells[name], 1e-9, "totals row for %s", name)
	}
}

func TestBuildUnevenSplitUsesListOrder(t *testing.T) {
	bill := models.NewBill("dinner")
	bill.AddItem("Pizza", 10.00, []string{"C", "A", "B"})

	s := Build(bill)
	require.Len(t, s.Rows, 2)

	row := s.Rows[0]
	assert.InDelta(t, 3.34, row.Cells["C"], 1e-9, "first listed participant absorbs the extra cent")
	assert.InDelta(t, 3.33, row.Cells["A"], 1e-9)
	assert.InDelta(t, 3.33, row.Cells["B"], 1e-9)
}

func TestBuildEmptyLedger(t *testing.T) {
	bill := models.NewBill("empty")
	bill.AddParticipant("A")

	s := Build(bill)

	assert.Empty(t, s.Rows, "no items means no rows, not even a totals row")
	assert.Equal(t, []string{TotalPriceColumn, "A"}, s.Columns)

	data, err := json.Marshal(NewDocument(bill))
	require.NoError(t, err)
	assert.JSONEq(t, `{"bill_title":"empty","summary_table":{}}`, string(data))
}

func TestBuildUnassignedItem(t *testing.T) {
	bill := models.NewBill("misc")
	bill.AddParticipant("A")
	bill.AddItem("Service fee", 5.00, nil)

	s := Build(bill)
	require.Len(t, s.Rows, 2)

	total := s.Rows[1]
	assert.InDelta(t, 5.00, total.Cells[TotalPriceColumn], 1e-9, "unassigned price still counts toward the item total")
	assert.InDelta(t, 0.00, total.Cells["A"], 1e-9)
}

func TestDocumentRowOrderPreserved(t *testing.T) {
	bill := models.NewBill("order")
	// Names chosen so alphabetical order disagrees with ledger order.
	bill.AddItem("Zucchini", 1.00, []string{"A"})
	bill.AddItem("Apples", 2.00, []string{"A"})
	bill.AddItem("Mangoes", 3.00, []string{"A"})

	data, err := json.Marshal(NewDocument(bill))
	require.NoError(t, err)

	doc := string(data)
	zi := strings.Index(doc, `"Zucchini"`)
	ai := strings.Index(doc, `"Apples"`)
	mi := strings.Index(doc, `"Mangoes"`)
	ti := strings.Index(doc, `"Total"`)
	require.True(t, zi >= 0 && ai >= 0 && mi >= 0 && ti >= 0, "all rows present in %s", doc)
	assert.True(t, zi < ai && ai < mi && mi < ti, "rows must keep ledger order with Total last: %s", doc)
}

func TestDocumentRoundTrip(t *testing.T) {
	bill := models.NewBill("trip")
	bill.AddItem("Hotel", 301.00, []string{"A", "B", "C"})
	bill.AddItem("Gas", 45.67, []string{"A", "B"})
	bill.AddItem("Snacks", 10.01, []string{"C"})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, bill))

	var decoded struct {
		BillTitle    string                        `json:"bill_title"`
		SummaryTable map[string]map[string]float64 `json:"summary_table"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "trip", decoded.BillTitle)
	for _, item := range bill.Items {
		row, ok := decoded.SummaryTable[item.Name]
		require.True(t, ok, "missing row for %s", item.Name)
		assert.InDelta(t, item.Price, row[TotalPriceColumn], 1e-9)
	}
}

func TestWriteRejectsNonFinitePrice(t *testing.T) {
	bill := models.NewBill("broken")
	bill.AddItem("Glitch", math.NaN(), []string{"A"})

	var buf bytes.Buffer
	err := Write(&buf, bill)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode bill summary")
	assert.Zero(t, buf.Len(), "nothing may be written on encoding failure")
}
