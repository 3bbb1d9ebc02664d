package ui

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/fecha/internal/history"
	"github.com/javiermolinar/fecha/internal/picker"
)

// printResult prints the picker outcome: the value on stdout for
// scripted use, or a cancellation notice.
func printResult(r picker.Result) {
	if r.Canceled {
		fmt.Println(formatWarning("canceled"))
		return
	}
	if r.Value == nil {
		fmt.Println(formatMuted("no selection"))
		return
	}
	fmt.Println(formatValue(r.Value.String()))
}

// printHistory prints recorded selections, newest first.
func printHistory(entries []*history.Entry) {
	if len(entries) == 0 {
		fmt.Println(formatMuted("no recorded selections"))
		return
	}

	width := termWidth()
	if width > 60 {
		width = 60
	}

	fmt.Println(formatHeader("Recent selections"))
	fmt.Println(formatMuted(strings.Repeat("─", width)))
	for _, e := range entries {
		when := e.PickedAt.Format("2006-01-02 15:04")
		fmt.Printf("%s  %-6s  %s\n", formatMuted(when), e.Mode, formatValue(e.Value().String()))
	}
}
