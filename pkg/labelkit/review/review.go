// Package review implements the human confirmation loop over a record
// stream. One record at a time is presented to the operator, a label is
// read, validated against the manual vocabulary, and the record is
// persisted before the next one is touched.
package review

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cognicore/labelkit/pkg/labelkit/record"
	"github.com/cognicore/labelkit/pkg/labelkit/vocab"
)

// ErrPromptsExhausted is returned when the prompt source ends while
// records remain unconfirmed.
var ErrPromptsExhausted = errors.New("prompt source exhausted before end of records")

// Placeholder is displayed for any absent metadata field.
const Placeholder = "-"

// PromptSource supplies one operator response per call. Next blocks
// until a line is available and returns io.EOF when the source ends.
type PromptSource interface {
	Next() (string, error)
}

// ScannerSource reads operator responses line by line from an io.Reader,
// typically os.Stdin.
type ScannerSource struct {
	scanner *bufio.Scanner
}

// NewScannerSource wraps r as a prompt source.
func NewScannerSource(r io.Reader) *ScannerSource {
	return &ScannerSource{scanner: bufio.NewScanner(r)}
}

func (s *ScannerSource) Next() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// Summary reports what a confirmation run did.
type Summary struct {
	Records    int
	Downgraded int // invalid inputs substituted with the fallback
}

// Session drives the confirmation loop.
type Session struct {
	Vocab    vocab.Vocabulary
	Prompts  PromptSource
	Out      io.Writer // operator-facing display
	Fallback string    // substituted for invalid input; vocab.LabelNone when empty
}

// NewSession builds a session over the manual vocabulary.
func NewSession(prompts PromptSource, out io.Writer) *Session {
	return &Session{
		Vocab:    vocab.Manual(),
		Prompts:  prompts,
		Out:      out,
		Fallback: vocab.LabelNone,
	}
}

// Run confirms every record from in, committing each to out before the
// next is read. Invalid operator input is downgraded to the fallback
// label with a printed notice; the loop never re-prompts. The context
// is checked between records only, so a cancel lands on a record
// boundary and everything already written stays valid.
func (s *Session) Run(ctx context.Context, in *record.Reader, out *record.Writer) (Summary, error) {
	var sum Summary
	fallback := s.Fallback
	if fallback == "" {
		fallback = vocab.LabelNone
	}

	for {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		rec, err := in.Next()
		if err == io.EOF {
			return sum, nil
		}
		if err != nil {
			return sum, err
		}

		s.present(rec, sum.Records+1)

		input, err := s.Prompts.Next()
		if err == io.EOF {
			return sum, ErrPromptsExhausted
		}
		if err != nil {
			return sum, err
		}

		label := strings.TrimSpace(input)
		if !s.Vocab.Contains(label) {
			fmt.Fprintf(s.Out, "invalid label %q, storing %q\n", label, fallback)
			label = fallback
			sum.Downgraded++
		}

		rec.MLLabel = label
		if err := out.Write(rec); err != nil {
			return sum, err
		}
		sum.Records++
	}
}

func (s *Session) present(rec record.Record, n int) {
	fmt.Fprintf(s.Out, "\n--- record %d ---\n", n)
	fmt.Fprintf(s.Out, "text:       %s\n", rec.Text)
	fmt.Fprintf(s.Out, "image:      %s\n", orPlaceholder(rec.ImageFile))
	fmt.Fprintf(s.Out, "lot:        %s\n", orPlaceholder(rec.LotCode))
	fmt.Fprintf(s.Out, "brand:      %s\n", orPlaceholder(rec.Brand))
	fmt.Fprintf(s.Out, "type:       %s\n", orPlaceholder(rec.Type))
	fmt.Fprintf(s.Out, "category:   %s\n", orPlaceholder(rec.Category))
	fmt.Fprintf(s.Out, "confidence: %.2f\n", rec.Confidence)
	fmt.Fprintf(s.Out, "label:      %s\n", rec.DisplayLabel())
	fmt.Fprintf(s.Out, "label [%s]> ", strings.Join(s.Vocab.Labels(), "/"))
}

func orPlaceholder(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}
