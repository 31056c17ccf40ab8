// Package tui implements the interactive URL builder.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dedene/urlcoder/querystring"
)

// State represents the current phase of the builder.
type State int

const (
	// StateEditing collects the base URL and parameters.
	StateEditing State = iota
	// StateDone means the builder is finished and ready to quit.
	StateDone
)

const (
	focusBase = iota
	focusParam
)

// EncodeFunc renders the live preview from the current form contents.
type EncodeFunc func(baseURL string, params querystring.Params) (string, error)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	urlStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// Builder is the bubbletea model for the URL builder form.
type Builder struct {
	state     State
	cancelled bool
	width     int
	ready     bool

	base     textinput.Model
	param    textinput.Model
	focusIdx int

	params   querystring.Params
	encode   EncodeFunc
	preview  string
	err      error
	inputErr error
}

// NewBuilder creates a Builder that previews through encode. A nil encode
// disables the preview.
func NewBuilder(encode EncodeFunc) Builder {
	base := textinput.New()
	base.Placeholder = "https://example.com/search"
	base.Prompt = ""
	base.Focus()

	param := textinput.New()
	param.Placeholder = "key=value"
	param.Prompt = ""

	return Builder{
		state:  StateEditing,
		base:   base,
		param:  param,
		params: querystring.Params{},
		encode: encode,
	}
}

// Init starts the cursor blink.
func (m Builder) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates model state.
func (m Builder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.base.Width = wsm.Width - 16
		m.param.Width = wsm.Width - 16
		m.ready = true

		return m, nil
	}

	if m.state == StateDone {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		m.state = StateDone

		return m, tea.Quit

	case "tab", "shift+tab", "up", "down":
		return m.toggleFocus()

	case "ctrl+x":
		if len(m.params) > 0 {
			m.params = m.params[:len(m.params)-1]
			m.refresh()
		}

		return m, nil

	case "enter":
		return m.handleEnter()
	}

	return m.updateFocused(msg)
}

// handleEnter moves from the base URL to the parameter input, adds a
// key=value parameter, or finishes on an empty parameter line.
func (m Builder) handleEnter() (tea.Model, tea.Cmd) {
	if m.focusIdx == focusBase {
		return m.toggleFocus()
	}

	line := m.param.Value()
	if line == "" {
		m.state = StateDone

		return m, tea.Quit
	}

	p, err := querystring.ParsePair(line)
	if err != nil {
		m.inputErr = err

		return m, nil
	}

	m.params = append(m.params, p)
	m.param.Reset()
	m.inputErr = nil
	m.refresh()

	return m, nil
}

func (m Builder) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focusIdx == focusBase {
		m.base.Blur()
		m.focusIdx = focusParam
		m.param.Focus()
	} else {
		m.param.Blur()
		m.focusIdx = focusBase
		m.base.Focus()
	}

	return m, textinput.Blink
}

// updateFocused delegates typing to the focused input.
func (m Builder) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.focusIdx == focusBase {
		before := m.base.Value()
		m.base, cmd = m.base.Update(msg)

		if m.base.Value() != before {
			m.refresh()
		}

		return m, cmd
	}

	m.param, cmd = m.param.Update(msg)
	m.inputErr = nil

	return m, cmd
}

func (m *Builder) refresh() {
	if m.encode == nil {
		return
	}

	m.preview, m.err = m.encode(m.base.Value(), m.params)
}

// View renders the form.
func (m Builder) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.state == StateDone {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Base URL: "), m.base.View())
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Parameter:"), m.param.View())

	if m.inputErr != nil {
		fmt.Fprintf(&b, "  %s\n", errStyle.Render(m.inputErr.Error()))
	}

	b.WriteString("\n")

	if len(m.params) == 0 {
		b.WriteString(helpStyle.Render("  no parameters yet") + "\n")
	}

	for i, p := range m.params {
		fmt.Fprintf(&b, "  %d. %s = %s\n", i+1, p.Key, p.Value)
	}

	b.WriteString("\n")

	switch {
	case m.err != nil:
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Preview:"), errStyle.Render(m.err.Error()))
	case m.preview != "":
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Preview:"), urlStyle.Render(m.preview))
	}

	b.WriteString(helpStyle.Render("\n  Enter: add parameter / finish on empty | Tab: switch field | Ctrl+X: remove last | Esc: quit") + "\n")

	return b.String()
}

// State returns the current builder state.
func (m Builder) State() State { return m.state }

// Cancelled returns true if the user quit without finishing.
func (m Builder) Cancelled() bool { return m.cancelled }

// BaseURL returns the base URL as typed.
func (m Builder) BaseURL() string { return m.base.Value() }

// Params returns the collected parameters in entry order.
func (m Builder) Params() querystring.Params { return m.params }

// URL returns the latest preview and the error that replaced it, if any.
func (m Builder) URL() (string, error) { return m.preview, m.err }
