package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// render prints v as indented JSON when --json is set, otherwise calls table
func render(cmd *cobra.Command, v any, table func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(out, 2, 0, 3, ' ', 0)
	table(tw)
	return tw.Flush()
}

// row writes one tab separated table row
func row(w io.Writer, cols ...any) {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(w, strings.Join(parts, "\t"))
}

// orDash keeps empty cells visible in tables
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatCooldown(seconds int) string {
	if seconds <= 0 {
		return "ready"
	}
	return (time.Duration(seconds) * time.Second).String()
}
