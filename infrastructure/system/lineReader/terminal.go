package lineReader

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rotisserie/eris"
	"github.com/t-kuni/jobconf/domain/system/lineReader"
	"github.com/t-kuni/jobconf/util/path"
)

var (
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	candidateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

// TerminalReader runs a one-line bubbletea program per question.
type TerminalReader struct {
	in  io.Reader
	out io.Writer
}

func NewTerminalReader(in io.Reader, out io.Writer) *TerminalReader {
	return &TerminalReader{
		in:  in,
		out: out,
	}
}

func (r *TerminalReader) ReadLine(ctx context.Context, prompt string, complete lineReader.Completer) (string, error) {
	p := tea.NewProgram(
		newInputModel(prompt, complete),
		tea.WithContext(ctx),
		tea.WithInput(r.in),
		tea.WithOutput(r.out),
	)

	final, err := p.Run()
	if err != nil {
		return "", eris.Wrap(err, "failed to read input")
	}

	m, ok := final.(*inputModel)
	if !ok || m.cancelled {
		return "", lineReader.ErrInterrupted
	}
	return m.input.Value(), nil
}

type inputModel struct {
	input      textinput.Model
	complete   lineReader.Completer
	candidates []string
	notice     string
	done       bool
	cancelled  bool
}

func newInputModel(prompt string, complete lineReader.Completer) *inputModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = promptStyle
	ti.Focus()

	return &inputModel{
		input:    ti,
		complete: complete,
	}
}

func (m *inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyTab:
			if m.complete != nil {
				m.applyCompletion()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inputModel) applyCompletion() {
	m.candidates = nil
	m.notice = ""

	result, err := m.complete(m.input.Value())
	if err != nil {
		m.notice = err.Error()
		return
	}

	if result.Descended {
		m.input.SetValue(result.Candidates[0])
		m.input.CursorEnd()
		return
	}

	if len(result.Candidates) == 0 {
		m.notice = "no matches"
		return
	}
	m.candidates = result.Candidates

	value := path.Normalize(m.input.Value())
	i := strings.LastIndex(value, "/")
	prefix, segment := value[:i+1], value[i+1:]
	if common := commonPrefix(result.Candidates); len(common) > len(segment) {
		m.input.SetValue(prefix + common)
		m.input.CursorEnd()
	}
}

func (m *inputModel) View() string {
	if m.done || m.cancelled {
		return promptStyle.Render(m.input.Prompt) + m.input.Value() + "\n"
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	if len(m.candidates) > 0 {
		b.WriteString("\n")
		b.WriteString(candidateStyle.Render(strings.Join(m.candidates, "  ")))
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
	}
	return b.String()
}

func commonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := []rune(values[0])
	for _, v := range values[1:] {
		runes := []rune(v)
		n := 0
		for n < len(prefix) && n < len(runes) && prefix[n] == runes[n] {
			n++
		}
		prefix = prefix[:n]
	}
	return string(prefix)
}
