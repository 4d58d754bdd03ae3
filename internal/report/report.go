// Package report renders command results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"smokecheck/internal/domain"
)

// Printer writes PASS/FAIL lines. Colour is decided once at construction.
type Printer struct {
	out   io.Writer
	pass  func(a ...interface{}) string
	fail  func(a ...interface{}) string
	warn  func(a ...interface{}) string
	grey  func(a ...interface{}) string
	white func(a ...interface{}) string
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, useColor bool) *Printer {
	colors := map[string]*color.Color{
		"pass":  color.New(color.FgGreen),
		"fail":  color.New(color.FgHiRed, color.Bold),
		"warn":  color.New(color.FgYellow, color.Bold),
		"grey":  color.New(color.FgHiBlack),
		"white": color.New(color.FgHiWhite),
	}
	for _, c := range colors {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return &Printer{
		out:   out,
		pass:  colors["pass"].SprintFunc(),
		fail:  colors["fail"].SprintFunc(),
		warn:  colors["warn"].SprintFunc(),
		grey:  colors["grey"].SprintFunc(),
		white: colors["white"].SprintFunc(),
	}
}

// Check prints one line per fixture result followed by a summary.
func (p *Printer) Check(report *domain.CheckReport, excluded int) {
	if report == nil {
		return
	}

	width := 0
	for _, r := range report.Results {
		width = max(width, len(r.Fixture.Name))
	}

	for _, r := range report.Results {
		name := fmt.Sprintf("%-*s", width, r.Fixture.Name)
		if r.Passed() {
			fmt.Fprintf(p.out, "%s %s  %s\n", p.pass("PASS"), p.white(name), p.grey(r.Path))
			continue
		}
		fmt.Fprintf(p.out, "%s %s  %s: %s\n", p.fail("FAIL"), p.white(name), p.grey(r.Path), r.Err)
	}

	failed := len(report.Failed())
	summary := fmt.Sprintf("%d fixtures, %d failed", len(report.Results), failed)
	if excluded > 0 {
		summary += fmt.Sprintf(", %d excluded", excluded)
	}
	if failed > 0 {
		summary = p.fail(summary)
	} else {
		summary = p.pass(summary)
	}
	fmt.Fprintf(p.out, "%s %s\n", summary, p.grey("(run "+report.RunID+")"))
}

// Fetch prints what a fetch downloaded or skipped.
func (p *Printer) Fetch(downloaded, present, noSource []string) {
	for _, name := range downloaded {
		fmt.Fprintf(p.out, "%s %s\n", p.pass("GET "), p.white(name))
	}
	for _, name := range present {
		fmt.Fprintf(p.out, "%s %s\n", p.grey("SKIP"), p.white(name))
	}
	if len(noSource) > 0 {
		fmt.Fprintf(p.out, "%s no url for %s\n", p.warn("WARN"), strings.Join(noSource, ", "))
	}
}

// Jar prints the outcome of jar assertions.
func (p *Printer) Jar(path string, entries int, err error) {
	if err != nil {
		fmt.Fprintf(p.out, "%s %s  %s\n", p.fail("FAIL"), p.white(path), err)
		return
	}
	fmt.Fprintf(p.out, "%s %s  %s\n", p.pass("PASS"), p.white(path), p.grey(fmt.Sprintf("%d entries", entries)))
}
