// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-vault-import/models"
)

// printResult writes the tally of a run, as JSON or as a short report.
func printResult(w io.Writer, result models.ImportResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(w, "Import %s (%s): %d imported, %d skipped in %s\n",
		result.ID, result.Format, result.Imported, result.Skipped,
		result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond))

	if d := result.Directory; d != nil {
		fmt.Fprintf(w, "Directory: %d seen, %d synced, %d errored\n", d.Seen, d.Synced, d.Errored)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}

	if len(result.Failures) == 0 {
		return nil
	}

	fmt.Fprintln(w, "\nSkipped records:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POSITION\tRECORD\tREASON")
	for _, f := range result.Failures {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Position, f.Record, f.Reason)
	}
	return tw.Flush()
}
