package utils

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const headingWidth = 70

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	BookedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	FreeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// ResponseHeading writes a title framed by rule lines.
func ResponseHeading(w io.Writer, title string) {
	rule := strings.Repeat("=", headingWidth)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, headingStyle.Render(title), rule)
}

// ------------- Outcome messages -------------

func ResponseSuccess(w io.Writer, message string) {
	fmt.Fprintln(w, successStyle.Render(message))
}

// ResponseWarning is for recoverable input problems.
func ResponseWarning(w io.Writer, message string) {
	fmt.Fprintln(w, warningStyle.Render(message))
}

func ResponseError(w io.Writer, message string) {
	fmt.Fprintln(w, errorStyle.Render("Error: "+message))
}
