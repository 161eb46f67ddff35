// Package ui renders screens: styled headings, tables and toasts. It is
// deliberately dumb — it formats what it is given and owns no state.
package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle = lipgloss.NewStyle().Bold(true)

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Title prints a screen heading.
func Title(w io.Writer, text string) {
	fmt.Fprintln(w, titleStyle.Render(text))
}

// Field prints a labelled value line on a detail screen.
func Field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label+":"), value)
}

// Dim prints secondary text.
func Dim(w io.Writer, text string) {
	fmt.Fprintln(w, dimStyle.Render(text))
}

// Table renders a bordered table with a header row.
func Table(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

// Toasts: every remote failure surfaces as exactly one of these and the
// screen keeps whatever it already rendered.

// ToastOK prints a success toast.
func ToastOK(w io.Writer, msg string) {
	fmt.Fprintln(w, okStyle.Render("✔ "+msg))
}

// ToastError prints a failure toast.
func ToastError(w io.Writer, msg string) {
	fmt.Fprintln(w, errStyle.Render("✘ "+msg))
}

// ToastWarn prints a warning toast.
func ToastWarn(w io.Writer, msg string) {
	fmt.Fprintln(w, warnStyle.Render("! "+msg))
}

// InlineError prints a field-level validation message next to the form
// output.
func InlineError(w io.Writer, field, msg string) {
	fmt.Fprintf(w, "  %s %s\n", warnStyle.Render(field+":"), msg)
}

// InvalidAccess is the terminal render state for a screen opened without
// its expected payload.
func InvalidAccess(w io.Writer) {
	fmt.Fprintln(w, errStyle.Render("Invalid access"))
	fmt.Fprintln(w, dimStyle.Render("This screen needs context that is no longer available. Re-open the notification to restart the flow."))
}

// Itoa is a tiny helper for table rows.
func Itoa(n int) string { return strconv.Itoa(n) }

// Ftoa formats a rating-style float.
func Ftoa(f float64) string { return strconv.FormatFloat(f, 'f', 1, 64) }
