package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dedene/urlcoder/querystring"
)

var errNoKeys = errors.New("no keys")

// fakeEncode joins base and raw pairs without escaping.
func fakeEncode(base string, params querystring.Params) (string, error) {
	if len(params) == 0 {
		return "", errNoKeys
	}

	out := base + "?"
	for i, p := range params {
		if i > 0 {
			out += "&"
		}
		out += p.Key + "=" + p.Value
	}

	return out, nil
}

func sizeMsg() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: 80, Height: 24}
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Builder, msgs ...tea.Msg) (Builder, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, msg := range msgs {
		var result tea.Model
		result, cmd = m.Update(msg)

		model, ok := result.(Builder)
		require.True(t, ok)
		m = model
	}

	return m, cmd
}

func readyBuilder(t *testing.T) Builder {
	t.Helper()

	m, _ := send(t, NewBuilder(fakeEncode), sizeMsg())

	return m
}

func TestNewBuilder_InitialState(t *testing.T) {
	m := NewBuilder(fakeEncode)

	assert.Equal(t, StateEditing, m.State())
	assert.False(t, m.Cancelled())
	assert.Empty(t, m.Params())
	assert.Empty(t, m.BaseURL())
	assert.False(t, m.ready)
	assert.Equal(t, focusBase, m.focusIdx)
}

func TestBuilder_ViewLoading(t *testing.T) {
	assert.Equal(t, "Loading...", NewBuilder(nil).View())
}

func TestBuilder_WindowSizeMsg(t *testing.T) {
	m := readyBuilder(t)

	assert.True(t, m.ready)
	assert.Equal(t, 80, m.width)
	assert.Contains(t, m.View(), "Base URL:")
}

func TestBuilder_FullFlow(t *testing.T) {
	m := readyBuilder(t)

	m, _ = send(t, m,
		typeText("https://example.com"),
		tea.KeyMsg{Type: tea.KeyEnter},
		typeText("q=a b"),
		tea.KeyMsg{Type: tea.KeyEnter},
		typeText("lang=en"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.Equal(t, "https://example.com", m.BaseURL())
	assert.Equal(t, querystring.Params{
		{Key: "q", Value: "a b"},
		{Key: "lang", Value: "en"},
	}, m.Params())

	u, err := m.URL()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com?q=a b&lang=en", u)
	assert.Contains(t, m.View(), "2. lang = en")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, StateDone, m.State())
	assert.False(t, m.Cancelled())
	assert.NotNil(t, cmd)
}

func TestBuilder_MalformedPair(t *testing.T) {
	m := readyBuilder(t)

	m, _ = send(t, m,
		tea.KeyMsg{Type: tea.KeyTab},
		typeText("novalue"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.Equal(t, StateEditing, m.State())
	assert.Empty(t, m.Params())
	assert.ErrorIs(t, m.inputErr, querystring.ErrMalformedPair)
	assert.Contains(t, m.View(), "expected key=value")
}

func TestBuilder_PreviewError(t *testing.T) {
	m := readyBuilder(t)

	m, _ = send(t, m, typeText("https://example.com"))

	_, err := m.URL()
	assert.ErrorIs(t, err, errNoKeys)
	assert.Contains(t, m.View(), "no keys")
}

func TestBuilder_RemoveLast(t *testing.T) {
	m := readyBuilder(t)

	m, _ = send(t, m,
		tea.KeyMsg{Type: tea.KeyTab},
		typeText("a=1"),
		tea.KeyMsg{Type: tea.KeyEnter},
		typeText("b=2"),
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyCtrlX},
	)

	assert.Equal(t, querystring.Params{{Key: "a", Value: "1"}}, m.Params())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlX}, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Empty(t, m.Params())
}

func TestBuilder_TabTogglesFocus(t *testing.T) {
	m := readyBuilder(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusParam, m.focusIdx)
	assert.True(t, m.param.Focused())
	assert.False(t, m.base.Focused())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusBase, m.focusIdx)
	assert.True(t, m.base.Focused())
}

func TestBuilder_CtrlCCancels(t *testing.T) {
	m := readyBuilder(t)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.Equal(t, StateDone, m.State())
	assert.True(t, m.Cancelled())
	assert.NotNil(t, cmd)
}

func TestBuilder_EscCancels(t *testing.T) {
	m := readyBuilder(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	assert.Equal(t, StateDone, m.State())
	assert.True(t, m.Cancelled())
}

func TestBuilder_NilEncode(t *testing.T) {
	m, _ := send(t, NewBuilder(nil), sizeMsg(), typeText("https://example.com"))

	u, err := m.URL()
	assert.Empty(t, u)
	require.NoError(t, err)
	assert.NotContains(t, m.View(), "Preview:")
}
