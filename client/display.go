package client

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Element ids of the page the handler was written for.
const (
	FormID      = "emailForm"
	ResultID    = "result"
	CategoriaID = "categoria"
	RespostaID  = "resposta"
)

// ErrorLabel is written into the categoria slot on any failure.
const ErrorLabel = "Erro"

// Display is the result region the handler writes to.
type Display interface {
	// Reset hides the region and clears both slots.
	Reset()
	// SetResult fills both slots and shows the region.
	SetResult(categoria, resposta string)
	// ShowError writes ErrorLabel and message and shows the region.
	ShowError(message string)
}

// Region is an in-memory Display.
type Region struct {
	mu        sync.Mutex
	hidden    bool
	categoria string
	resposta  string
	shown     int
}

// NewRegion returns a hidden, empty region.
func NewRegion() *Region {
	return &Region{hidden: true}
}

func (r *Region) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hidden = true
	r.categoria = ""
	r.resposta = ""
}

func (r *Region) SetResult(categoria, resposta string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categoria = categoria
	r.resposta = resposta
	r.hidden = false
	r.shown++
}

func (r *Region) ShowError(message string) {
	r.SetResult(ErrorLabel, message)
}

// Snapshot returns the slots and whether the region is visible.
func (r *Region) Snapshot() (categoria, resposta string, visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.categoria, r.resposta, !r.hidden
}

// Shown counts how many times the region was revealed.
func (r *Region) Shown() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shown
}

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	valueStyle = lipgloss.NewStyle().PaddingLeft(2)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87"))
)

// TerminalDisplay renders the region to a writer. Reset writes nothing;
// a terminal has no region to hide.
type TerminalDisplay struct {
	mu  sync.Mutex
	out io.Writer
}

func NewTerminalDisplay(out io.Writer) *TerminalDisplay {
	return &TerminalDisplay{out: out}
}

func (d *TerminalDisplay) Reset() {}

func (d *TerminalDisplay) SetResult(categoria, resposta string) {
	d.render(labelStyle.Render(categoria), resposta)
}

func (d *TerminalDisplay) ShowError(message string) {
	d.render(errorStyle.Render(ErrorLabel), message)
}

func (d *TerminalDisplay) render(categoria, resposta string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, "%s %s\n", labelStyle.Render("Categoria:"), categoria)
	fmt.Fprintf(d.out, "%s\n%s\n", labelStyle.Render("Resposta sugerida:"), valueStyle.Render(resposta))
}
