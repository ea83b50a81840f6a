package credentials

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the operator for values on an interactive terminal.
type Prompter struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter creates a prompter reading from in and writing labels to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     in,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask prints label and returns the trimmed line typed by the operator.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read %q: %w", strings.TrimSpace(label), err)
	}
	return strings.TrimSpace(line), nil
}

// AskSecret works like Ask but disables echo when reading from a terminal.
func (p *Prompter) AskSecret(label string) (string, error) {
	f, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.Ask(label)
	}

	fmt.Fprint(p.out, label)
	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", strings.TrimSpace(label), err)
	}
	return strings.TrimSpace(string(secret)), nil
}

// PromptSource asks the operator for the key pair.
type PromptSource struct {
	prompter *Prompter
}

// NewPromptSource creates a source backed by the given prompter.
func NewPromptSource(prompter *Prompter) *PromptSource {
	return &PromptSource{prompter: prompter}
}

// Name implements Source.
func (s *PromptSource) Name() string {
	return string(KindPrompt)
}

// Retrieve implements Source.
func (s *PromptSource) Retrieve(_ context.Context) (Credentials, error) {
	accessKey, err := s.prompter.Ask("Enter your Access Key : ")
	if err != nil {
		return Credentials{}, err
	}
	secretKey, err := s.prompter.AskSecret("Enter your Secret Key : ")
	if err != nil {
		return Credentials{}, err
	}

	creds := Credentials{AccessKeyID: accessKey, SecretAccessKey: secretKey}
	if creds.IsZero() {
		return Credentials{}, ErrMissingCredentials
	}
	return creds, nil
}
