package archive

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

const ContentTypeCSV = "text/csv"

// CSV renders a header and rows. Writer errors surface from Flush.
func CSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("csv rows: %w", err)
	}
	return buf.Bytes(), nil
}
