package emit

import (
	"encoding/csv"
	"io"

	"github.com/dargueta/framepack/animation"
	"github.com/jszwec/csvutil"
)

const (
	KindBase  = "base"
	KindDelta = "delta"
)

// ReportRow describes how much space one asset takes up.
type ReportRow struct {
	Name string `csv:"name"`
	Kind string `csv:"kind"`
	// PackedBytes is the size of the frame before compression.
	PackedBytes int `csv:"packed_bytes"`
	// StoredBytes is the size of the array actually emitted.
	StoredBytes int `csv:"stored_bytes"`
}

// Report creates one row per asset in `result`, base frame first.
func Report(result *animation.Result) []ReportRow {
	rows := make([]ReportRow, 0, len(result.Frames)+1)
	rows = append(
		rows,
		ReportRow{
			Name:        Identifier(result.Base.Name),
			Kind:        KindBase,
			PackedBytes: result.PackedSize(),
			StoredBytes: result.Base.Len(),
		},
	)
	for _, frame := range result.Frames {
		rows = append(
			rows,
			ReportRow{
				Name:        Identifier(frame.Name),
				Kind:        KindDelta,
				PackedBytes: result.PackedSize(),
				StoredBytes: frame.Len(),
			},
		)
	}
	return rows
}

// WriteReport writes [Report] as CSV with a header row.
func WriteReport(w io.Writer, result *animation.Result) error {
	csvWriter := csv.NewWriter(w)
	encoder := csvutil.NewEncoder(csvWriter)
	for _, row := range Report(result) {
		if err := encoder.Encode(row); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
