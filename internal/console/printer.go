// Package console renders conversation output for the terminal.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const markdownWrapWidth = 100

// Printer writes session output. When markdown is enabled, assistant replies
// are rendered for the terminal; otherwise they are printed verbatim.
type Printer struct {
	out      io.Writer
	markdown bool

	titleStyle  lipgloss.Style
	labelStyle  lipgloss.Style
	noticeStyle lipgloss.Style
}

func NewPrinter(out io.Writer, markdown bool) *Printer {
	return &Printer{
		out:      out,
		markdown: markdown,

		titleStyle:  lipgloss.NewStyle().Bold(true),
		labelStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		noticeStyle: lipgloss.NewStyle().Faint(true),
	}
}

func (p *Printer) Banner() {
	fmt.Fprintf(p.out, "\n%s\n", p.titleStyle.Render("=== AMAZON REVIEW FRAMEWORK ==="))
}

func (p *Printer) InitialReviewPrompt() {
	fmt.Fprintf(p.out, "\nPlease enter your initial product experience/review:\n> ")
}

func (p *Printer) SessionStart() {
	fmt.Fprintf(p.out, "\n%s\n", p.noticeStyle.Render("Starting conversation with Claude. Type 'exit' to end the session."))
}

func (p *Printer) AssistantReply(text string) {
	fmt.Fprintf(p.out, "\n%s %s\n", p.labelStyle.Render("Claude:"), p.renderMarkdown(text))
}

func (p *Printer) UserPrompt() {
	fmt.Fprintf(p.out, "\nYou (type 'exit' to end):\n> ")
}

func (p *Printer) Saved(path string) {
	fmt.Fprintf(p.out, "\nConversation saved to '%s'\n", path)
}

// renderMarkdown renders an assistant reply for the terminal, falling back to
// the raw text when rendering fails
func (p *Printer) renderMarkdown(text string) string {
	if !p.markdown {
		return text
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWrapWidth),
	)
	if err != nil {
		return text
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(rendered, "\n")
}
