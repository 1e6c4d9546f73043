package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes user-facing messages. Success and info go to out;
// warnings, errors and hints go to errOut.
type Printer struct {
	out     io.Writer
	errOut  io.Writer
	outR    *lipgloss.Renderer
	styles  Styles
	errSty  Styles
	verbose bool
}

// NewPrinter creates a Printer with one renderer per destination
func NewPrinter(out, errOut io.Writer) *Printer {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	return &Printer{
		out:    out,
		errOut: errOut,
		outR:   outR,
		styles: NewStyles(outR),
		errSty: NewStyles(errR),
	}
}

// SetVerbose enables Detail output
func (p *Printer) SetVerbose(v bool) {
	p.verbose = v
}

// Renderer returns the renderer bound to the standard output writer
func (p *Printer) Renderer() *lipgloss.Renderer {
	return p.outR
}

// Out returns the standard output writer
func (p *Printer) Out() io.Writer {
	return p.out
}

// Styles returns the styles bound to the standard output writer
func (p *Printer) Styles() Styles {
	return p.styles
}

func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.out, p.styles.Success.Render(IconSuccess), fmt.Sprintf(format, args...))
}

func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.out, IconInfo, fmt.Sprintf(format, args...))
}

// Detail prints only in verbose mode
func (p *Printer) Detail(format string, args ...any) {
	if !p.verbose {
		return
	}
	fmt.Fprintln(p.out, " ", p.styles.Detail.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.errOut, p.errSty.Warning.Render(IconWarning+" "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Error(err error) {
	fmt.Fprintln(p.errOut, p.errSty.Error.Render(IconError+" Error:"), err)
}

func (p *Printer) Hint(format string, args ...any) {
	fmt.Fprintln(p.errOut, " ", p.errSty.Hint.Render(IconHint+" "+fmt.Sprintf(format, args...)))
}
