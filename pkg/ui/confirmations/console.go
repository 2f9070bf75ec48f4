// Package confirmations provides UI implementations for confirmation dialogs.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/scrub/pkg/errors"
)

// DefaultToken is the literal answer that authorizes deletion
const DefaultToken = "DELETE"

// TokenPrompt asks for a single line and accepts it only if it equals Token
// after trimming surrounding whitespace. Matching is case-sensitive.
type TokenPrompt struct {
	Token   string
	Message string
}

// NewTokenPrompt creates a prompt asking the user to type token
func NewTokenPrompt(token string) *TokenPrompt {
	return &TokenPrompt{
		Token:   token,
		Message: fmt.Sprintf("Type %s to confirm deletion: ", token),
	}
}

// Confirm writes the prompt to out, reads one line from in and reports
// whether it matched. Running out of input counts as an empty answer.
func (p *TokenPrompt) Confirm(in io.Reader, out io.Writer) (bool, error) {
	if _, err := fmt.Fprint(out, p.Message); err != nil {
		return false, errors.Wrap(err, errors.ErrInternal, "failed to write prompt")
	}

	answer, err := ReadLine(in)
	if err == io.EOF {
		// Keep whatever follows off the prompt line
		fmt.Fprintln(out)
	} else if err != nil {
		return false, errors.Wrap(err, errors.ErrInputRead, "failed to read user input")
	}

	return p.Matches(answer), nil
}

// Matches reports whether answer authorizes the action
func (p *TokenPrompt) Matches(answer string) bool {
	return strings.TrimSpace(answer) == p.Token
}

// ReadLine reads up to and excluding the next newline. It returns io.EOF
// only when the input ended before a newline was seen; any partial line read
// before that is still returned.
func ReadLine(in io.Reader) (string, error) {
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}

	line, err := reader.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, err
}
