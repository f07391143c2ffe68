package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/camset/internal/preference"
)

// Printer writes styled command output.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the detected terminal width.
func (p *Printer) SetWidth(width int) *Printer {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	p.width = width
	return p
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintHeader prints a command banner.
func (p *Printer) PrintHeader(title, command string) {
	p.Println(RenderHeader(title, command, p.width))
}

// PrintGroup prints every setting in group with its selected label.
// Keys present in overrides are shown with the forced label instead.
func (p *Printer) PrintGroup(group *preference.Group, overrides map[string]string) {
	p.Println(RenderGroup(group, overrides))
}

// PrintRow prints one picker row.
func (p *Printer) PrintRow(d *TextDisplay) {
	p.Println(d.Render())
}

// PrintSuccess prints a success line followed by optional details.
func (p *Printer) PrintSuccess(title string, details ...string) {
	p.Println(SuccessTitleStyle.Render(SuccessMarker + "  " + title))
	for _, d := range details {
		p.Println(HintStyle.Render("   " + d))
	}
}

// PrintError prints a failure box.
func (p *Printer) PrintError(title string, err error, hints ...string) {
	lines := []string{ErrorTitleStyle.Render(FailureMarker + "  " + title)}
	if err != nil {
		lines = append(lines, ErrorMessageStyle.Render("Error: "+err.Error()))
	}
	for _, h := range hints {
		lines = append(lines, HintStyle.Render("• "+h))
	}
	p.Println(BoxStyle(p.width, ErrorColor).Render(strings.Join(lines, "\n")))
}

// RenderHeader renders a command header box
func RenderHeader(title, command string, width int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		HeaderTitleStyle.Render(strings.ToUpper(title)),
		HeaderCommandStyle.Render(command),
	)
	return BoxStyle(width, PrimaryColor).Render(content)
}

// RenderGroup renders settings as aligned "title  label (value)" lines.
func RenderGroup(group *preference.Group, overrides map[string]string) string {
	var lines []string
	for _, pref := range group.Preferences {
		label := pref.Entry()
		raw := pref.Value()
		if forced, ok := overrides[pref.Key]; ok {
			raw = forced
			label = pref.EntryAt(pref.FindIndexOfValue(forced))
			if label == "" {
				label = forced
			}
			label = lipgloss.NewStyle().Foreground(WarningColor).Render(label + " (scene)")
		} else {
			label = SettingValueStyle.Render(label)
		}
		lines = append(lines, "  "+SettingTitleStyle.Render(pref.Title)+label+" "+SettingRawStyle.Render(raw))
	}
	return strings.Join(lines, "\n")
}
