// Package printers renders editor state for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/memoria-modding/memkit/pkg/ability"
)

// PrettyPrint writes colored output to stdout. ShowBody controls
// whether entry bodies print under their headers.
type PrettyPrint struct {
	ShowBody bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// TitleWithCount prints a title plus a faint "- N noun" suffix, with the
// noun pluralized by adding "s".
func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)
	switch count {
	case 1:
		_, _ = c.Printf(" %s\n", noun)
	default:
		_, _ = c.Printf(" %ss\n", noun)
	}
}

// Entries prints ability entries, header first, with the target-type
// token highlighted. Bodies follow faintly when ShowBody is set.
func (pp *PrettyPrint) Entries(entries ...*ability.Entry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	t := color.New()
	ty := color.New(color.FgHiYellow)
	f := color.New(color.Faint)

	for _, e := range entries {
		_, _ = ty.Printf("%-14s", e.Type())
		_, _ = t.Println(e.Header)
		if pp.ShowBody {
			for _, line := range e.Body {
				_, _ = f.Printf("%s%s\n", strings.Repeat(" ", 14), line)
			}
		}
	}
	_, _ = t.Println("")
}

// Text prints a rendered body block verbatim.
func (pp *PrettyPrint) Text(text string) {
	fmt.Println(strings.TrimRight(text, "\n"))
}

// Warnf prints a yellow warning line.
func (pp *PrettyPrint) Warnf(format string, args ...interface{}) {
	w := color.New(color.FgYellow)
	_, _ = w.Printf(format+"\n", args...)
}

// Successf prints a green confirmation line.
func (pp *PrettyPrint) Successf(format string, args ...interface{}) {
	g := color.New(color.FgGreen)
	_, _ = g.Printf(format+"\n", args...)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}
