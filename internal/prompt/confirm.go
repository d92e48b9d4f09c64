package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

var (
	// ErrDeclined is returned when the user answers no to a gating question.
	ErrDeclined = errors.New("declined by user")

	// ErrNoResponse is returned when input ends before a valid answer is read.
	ErrNoResponse = errors.New("no response received")
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// New returns the confirmer matching the environment: AlwaysYes when
// assumeYes is set, a huh form on a terminal, and a line reader otherwise.
func New(in *os.File, out io.Writer, assumeYes bool) Confirmer {
	if assumeYes {
		return AlwaysYes{}
	}
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return &HuhConfirmer{}
	}
	return NewReaderConfirmer(in, out)
}

// Require turns a negative answer into ErrDeclined.
func Require(ctx context.Context, c Confirmer, question string) error {
	ok, err := c.Confirm(ctx, question)
	if err != nil {
		return err
	}
	if !ok {
		return ErrDeclined
	}
	return nil
}

// AlwaysYes confirms every question without asking.
type AlwaysYes struct{}

// Confirm implements Confirmer.
func (AlwaysYes) Confirm(_ context.Context, _ string) (bool, error) {
	return true, nil
}

// HuhConfirmer renders the question as an interactive huh confirm field.
type HuhConfirmer struct{}

// Confirm implements Confirmer.
func (h *HuhConfirmer) Confirm(ctx context.Context, question string) (bool, error) {
	var answer bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		),
	).RunWithContext(ctx)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return answer, nil
}

// ReaderConfirmer reads Y/N answers line by line, re-asking on anything else.
type ReaderConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReaderConfirmer returns a ReaderConfirmer reading from in and writing prompts to out.
func NewReaderConfirmer(in io.Reader, out io.Writer) *ReaderConfirmer {
	return &ReaderConfirmer{in: bufio.NewReader(in), out: out}
}

// Confirm implements Confirmer.
func (r *ReaderConfirmer) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		fmt.Fprintf(r.out, "%s Input Y or N: ", question)

		line, err := r.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))

		switch answer {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, ErrNoResponse
			}
			return false, fmt.Errorf("read response: %w", err)
		}

		fmt.Fprintln(r.out, "Ensure your response is a Y or N")
	}
}
