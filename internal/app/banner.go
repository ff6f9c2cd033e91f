package app

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintBanner writes the listening address, data file and route table to w.
func PrintBanner(w io.Writer, port, dbPath string) {
	title := color.New(color.FgGreen, color.Bold)
	method := color.New(color.FgCyan)

	title.Fprintf(w, "Yuletide Backend running on http://localhost:%s\n", port)
	fmt.Fprintf(w, "Database: %s\n", dbPath)
	fmt.Fprintln(w, "API endpoints:")
	for _, r := range APIRoutes {
		fmt.Fprintf(w, "   %s %-16s - %s\n", method.Sprintf("%-6s", r.Method), r.Path, r.Description)
	}
}
