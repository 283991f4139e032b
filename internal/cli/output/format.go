package output

import (
	"encoding/csv"
	"encoding/json"
	"io"
)

// FormatJSON converts data to pretty-printed JSON with 2-space indentation.
func FormatJSON(data interface{}) (string, error) {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// WriteCSV writes a header row of exactly the given field names, in
// order, followed by one row per record. Rows must already be projected
// onto the field subset; anything else the data carried is not emitted.
func WriteCSV(w io.Writer, fields []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(fields); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
