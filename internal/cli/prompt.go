package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

// Prompter asks the user questions on the terminal.
type Prompter interface {
	// Confirm asks a yes/no question; anything but yes is a no.
	Confirm(question string) (bool, error)
	// Choose asks the user to pick one of choices.
	Choose(question string, choices []string) (string, error)
	// Ask reads a free-form answer, without echo when secret is set.
	Ask(question string, secret bool) (string, error)
}

// ReadlinePrompter implements Prompter on top of readline.
type ReadlinePrompter struct {
	stdin  io.ReadCloser
	stdout io.Writer
}

// NewReadlinePrompter returns a prompter reading stdin and echoing to stdout.
func NewReadlinePrompter(stdin io.ReadCloser, stdout io.Writer) *ReadlinePrompter {
	return &ReadlinePrompter{stdin: stdin, stdout: stdout}
}

func (p *ReadlinePrompter) instance(prompt string) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		Stdin:           p.stdin,
		Stdout:          p.stdout,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	return rl, nil
}

// Confirm implements Prompter.
func (p *ReadlinePrompter) Confirm(question string) (bool, error) {
	rl, err := p.instance(question + " (y/N) ")
	if err != nil {
		return false, err
	}
	defer rl.Close()

	line, err := rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// Choose implements Prompter. The answer is either the number or the text of
// a choice.
func (p *ReadlinePrompter) Choose(question string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", errors.New("nothing to choose from")
	}
	fmt.Fprintln(p.stdout, question)
	for i, choice := range choices {
		fmt.Fprintf(p.stdout, "  %d) %s\n", i+1, choice)
	}

	rl, err := p.instance(fmt.Sprintf("Select [1-%d]: ", len(choices)))
	if err != nil {
		return "", err
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		return "", err
	}
	return pickChoice(strings.TrimSpace(line), choices)
}

func pickChoice(answer string, choices []string) (string, error) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(choices) {
			return "", fmt.Errorf("choice %d is out of range", n)
		}
		return choices[n-1], nil
	}
	for _, choice := range choices {
		if strings.EqualFold(choice, answer) {
			return choice, nil
		}
	}
	return "", fmt.Errorf("%q is not one of the choices", answer)
}

// Ask implements Prompter.
func (p *ReadlinePrompter) Ask(question string, secret bool) (string, error) {
	rl, err := p.instance(question + ": ")
	if err != nil {
		return "", err
	}
	defer rl.Close()

	if secret {
		b, err := rl.ReadPassword(question + ": ")
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	line, err := rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Guard asks question unless the user opted out of confirmations. It never
// touches the prompter when NoConfirmation is set.
func Guard(p Prompter, opts Options, question string) (bool, error) {
	if opts.NoConfirmation {
		return true, nil
	}
	if p == nil {
		return false, errors.New("confirmation required: pass --noconfirmation to run non-interactively")
	}
	return p.Confirm(question)
}
