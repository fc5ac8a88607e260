package display

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
)

var _ Console = (*Plain)(nil)

// Plain is an unstyled line console. Secret input is not masked, since
// there is no terminal to control. Safe for concurrent use.
type Plain struct {
	mu  sync.Mutex
	in  *bufio.Scanner
	out io.Writer
}

// NewPlain creates a console reading lines from in and writing to out.
func NewPlain(in io.Reader, out io.Writer) *Plain {
	return &Plain{in: bufio.NewScanner(in), out: out}
}

// Ask writes "prompt: " and reads one line. Returns io.EOF at the end of
// input.
func (p *Plain) Ask(ctx context.Context, prompt string, secret bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.out, "%s: ", prompt)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

func (p *Plain) PrintHeader(text string) { p.println(text) }
func (p *Plain) PrintLine(text string)   { p.println(text) }
func (p *Plain) PrintChat(text string)   { p.println(text) }
func (p *Plain) PrintHint(text string)   { p.println(text) }
func (p *Plain) PrintUrgent(text string) { p.println(text) }

// SetStatus is a no-op; the plain console has no status bar.
func (p *Plain) SetStatus(string) {}

func (p *Plain) println(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, text)
}
