// Package display provides the terminal front ends of the ordering
// console.
//
// [UI] drives the terminal through Bubble Tea: a status bar and an input
// prompt sit at the bottom while output scrolls above them via
// Program.Println, so concurrent writes never garble the display. [Plain]
// is a line console for pipes, scripts and dumb terminals.
package display

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Console is what the application loop talks to.
type Console interface {
	// Ask shows prompt and blocks until a line is entered. Secret input
	// is masked while typed. Returns io.EOF when input ends.
	Ask(ctx context.Context, prompt string, secret bool) (string, error)

	PrintHeader(text string)
	PrintLine(text string)
	PrintChat(text string)
	PrintHint(text string)
	PrintUrgent(text string)

	// SetStatus replaces the status bar text.
	SetStatus(text string)
}

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// BannerStyle is the muted slate used for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	chatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	// Section headers like "===== MENU =====".
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)

// ── UI ───────────────────────────────────────────────────────────

var _ Console = (*UI)(nil)

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Other goroutines may call the
// print helpers and [UI.Ask] at any time after [UI.WaitReady] returns.
type UI struct {
	program *tea.Program
	inputCh chan string
	readyCh chan struct{}
	quitCh  chan struct{}
	done    atomic.Bool
}

// NewUI creates the display. Call Run() to start.
func NewUI() *UI {
	return &UI{
		inputCh: make(chan string, inputBuffer),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
	}
}

// Println prints a line above the prompt. Thread-safe. Falls back to
// fmt.Println when the program is not running.
func (u *UI) Println(a ...any) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// ── Styled print helpers ─────────────────────────────────────────

// PrintHeader prints a section header.
func (u *UI) PrintHeader(text string) {
	u.Println(headerStyle.Render("  " + text))
}

// PrintLine prints a plain content line, such as a menu entry.
func (u *UI) PrintLine(text string) {
	u.Println(primaryStyle.Render("  " + text))
}

// PrintChat prints a short confirmation like "Order placed!".
func (u *UI) PrintChat(text string) {
	u.Println(chatStyle.Render("  " + text))
}

// PrintHint prints a secondary/dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(secondaryStyle.Render("  " + text))
}

// PrintUrgent prints an error line.
func (u *UI) PrintUrgent(text string) {
	u.Println(urgentOutputStyle.Render("  " + text))
}

// SetStatus updates the status bar.
func (u *UI) SetStatus(text string) {
	if u.program != nil && !u.done.Load() {
		u.program.Send(statusMsg(text))
	}
}

// Ask switches the prompt to label and waits for the next entered line.
// Returns io.EOF once the UI has quit (Ctrl+C).
func (u *UI) Ask(ctx context.Context, label string, secret bool) (string, error) {
	if u.done.Load() {
		return "", io.EOF
	}
	u.program.Send(promptMsg{label: label, secret: secret})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-u.quitCh:
		return "", io.EOF
	case v := <-u.inputCh:
		return v, nil
	}
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	ti := textinput.New()
	// Plain-text prompt: lipgloss-styled prompts add invisible ANSI bytes
	// that break textinput's offset math for long input.
	ti.Prompt = defaultPrompt
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.EchoCharacter = '*'
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60 // updated on first WindowSizeMsg

	m := model{
		input:   ti,
		inputCh: u.inputCh,
		readyCh: u.readyCh,
		status:  "Logged out",
		echoFn: func(prompt, v string) {
			u.Println(promptStyle.Render(prompt) + userInputEchoStyle.Render(v))
		},
	}

	u.program = tea.NewProgram(m)
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

const defaultPrompt = "gastro> "

// inputBuffer is how many entered lines can queue up before the app loop
// reads them. Lines typed ahead answer the following prompts in order.
const inputBuffer = 16

type model struct {
	input   textinput.Model
	inputCh chan<- string
	readyCh chan struct{}
	echoFn  func(prompt, value string) // prints the entered line into scrollback
	secret  bool
	status  string
	width   int
}

// Messages.
type (
	statusMsg string
	promptMsg struct {
		label  string
		secret bool
	}
)

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		signalReady(m.readyCh),
		tea.SetWindowTitle("Gastro"),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()

			echo := v
			if m.secret {
				echo = strings.Repeat("*", len([]rune(v)))
			}
			prompt := m.input.Prompt

			m.inputCh <- v

			// Echo from a Cmd so Println does not run inside Update.
			echoFn := m.echoFn
			return m, func() tea.Msg {
				echoFn(prompt, echo)
				return nil
			}
		}

	case promptMsg:
		m.secret = msg.secret
		m.input.Prompt = defaultPrompt
		if msg.label != "" {
			m.input.Prompt = msg.label + "> "
		}
		m.input.EchoMode = textinput.EchoNormal
		if msg.secret {
			m.input.EchoMode = textinput.EchoPassword
		}
		m.resize()
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, tea.SetWindowTitle("Gastro | " + m.status)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// resize lets the text input use the full width minus the prompt.
func (m *model) resize() {
	promptLen := len(m.input.Prompt)
	if m.width > promptLen {
		m.input.Width = m.width - promptLen
	}
}

func (m model) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(m.renderBar())
		b.WriteByte('\n')
	}

	// Blank line before prompt for visual separation.
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderBar() string {
	w := m.width
	if w <= 0 {
		w = 80
	}
	return barBg.Width(w).Render(" " + m.status + " ")
}
