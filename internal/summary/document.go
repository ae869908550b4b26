package summary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MitulNakrani003/GroupBillSplitter/internal/models"
)

// Document is the interchange form of a bill summary. It serializes to
// exactly two fields, bill_title and summary_table, with summary_table
// rows emitted in matrix order: item rows first in ledger order, the
// totals row last. Values are plain decimal numbers, never formatted
// currency strings.
type Document struct {
	BillTitle string
	Table     *Summary
}

// NewDocument builds the interchange document for a bill snapshot.
func NewDocument(bill *models.Bill) Document {
	return Document{BillTitle: bill.Description, Table: Build(bill)}
}

// MarshalJSON emits the document with summary_table as a JSON object
// whose keys appear in row order. encoding/json sorts map keys, so the
// outer object is assembled by hand; individual rows are small enough
// that their sorted column keys do not matter.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"bill_title":`)

	title, err := json.Marshal(d.BillTitle)
	if err != nil {
		return nil, err
	}
	buf.Write(title)

	buf.WriteString(`,"summary_table":{`)
	for i, row := range d.Table.Rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(row.Label)
		if err != nil {
			return nil, err
		}
		cells, err := json.Marshal(row.Cells)
		if err != nil {
			return nil, fmt.Errorf("row %q holds an unencodable value: %w", row.Label, err)
		}
		buf.Write(label)
		buf.WriteByte(':')
		buf.Write(cells)
	}
	buf.WriteString("}}")

	return buf.Bytes(), nil
}

// Write renders the bill's summary document as indented JSON to w. The
// document is fully encoded before anything is written, so an encoding
// failure never leaves a partial document behind.
func Write(w io.Writer, bill *models.Bill) error {
	data, err := json.MarshalIndent(NewDocument(bill), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode bill summary: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write bill summary: %w", err)
	}
	return nil
}
