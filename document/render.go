package document

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Render writes the findings as a human-readable table.
func (r Report) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Check", "Result", "Summary"})
	table.SetAutoWrapText(false)

	for _, f := range r.Findings {
		result := "PASS"
		if !f.Passed {
			result = "FAIL"
		}
		table.Append([]string{f.Check, result, f.Summary})
	}
	table.Render()

	for _, f := range r.Findings {
		for _, d := range f.Details {
			fmt.Fprintf(w, "  %s: %s\n", f.Check, d)
		}
	}
}

// RenderJSON writes the report as indented JSON.
func (r Report) RenderJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}
