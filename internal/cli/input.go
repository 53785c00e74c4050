package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// InputSource supplies interactive answers. Tests replace the terminal with
// canned lines.
type InputSource interface {
	ReadLine(prompt string) (string, error)
}

type PromptInput struct {
	r *bufio.Reader
	w io.Writer
}

func NewPromptInput(r io.Reader, w io.Writer) *PromptInput {
	return &PromptInput{r: bufio.NewReader(r), w: w}
}

func (p *PromptInput) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.w, prompt)

	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
