package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// prompter reads operator input token- and line-wise. In strict mode a
// malformed number is reported and re-prompted; otherwise it silently reads
// as zero, matching the historical behavior.
type prompter struct {
	in     *bufio.Reader
	out    io.Writer
	strict bool
}

func newPrompter(in io.Reader, out io.Writer, strict bool) *prompter {
	return &prompter{
		in:     bufio.NewReader(in),
		out:    out,
		strict: strict,
	}
}

// readToken skips leading whitespace and reads up to the next whitespace.
// The delimiter is left unread so a following readLine can skip it.
func (p *prompter) readToken() (string, error) {
	var b strings.Builder
	for {
		r, _, err := p.in.ReadRune()
		if err != nil {
			return "", err
		}
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
			break
		}
	}
	for {
		r, _, err := p.in.ReadRune()
		if err != nil {
			if err == io.EOF {
				return b.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			if err := p.in.UnreadRune(); err != nil {
				return "", err
			}
			break
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// readCommand prints the prompt and returns the first rune of the next token.
func (p *prompter) readCommand(prompt string) (rune, error) {
	fmt.Fprint(p.out, prompt)
	tok, err := p.readToken()
	if err != nil {
		return 0, err
	}
	return []rune(tok)[0], nil
}

// readLine prints the prompt, consumes pending whitespace (such as the
// newline left over from a previous token read) and returns the rest of the
// line. Interior spaces are preserved.
func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	for {
		r, _, err := p.in.ReadRune()
		if err != nil {
			return "", err
		}
		if !unicode.IsSpace(r) {
			if err := p.in.UnreadRune(); err != nil {
				return "", err
			}
			break
		}
	}
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *prompter) readInt(prompt string) (int, error) {
	for {
		fmt.Fprint(p.out, prompt)
		tok, err := p.readToken()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			if p.strict {
				fmt.Fprintln(p.out, "Invalid number entered. Please try again.")
				continue
			}
			return 0, nil
		}
		return n, nil
	}
}

func (p *prompter) readFloat(prompt string) (float64, error) {
	for {
		fmt.Fprint(p.out, prompt)
		tok, err := p.readToken()
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			if p.strict {
				fmt.Fprintln(p.out, "Invalid number entered. Please try again.")
				continue
			}
			return 0, nil
		}
		return f, nil
	}
}
