// Package console reads integer answers to prompts from a line-oriented
// input stream.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// MaxLineSize bounds a single answer line, and so the number of digits.
const MaxLineSize = 1 << 20

// integerPattern accepts an optional sign and decimal digits, with single
// underscores allowed between digits ("1_000").
var integerPattern = regexp.MustCompile(`^[+-]?[0-9]+(_[0-9]+)*$`)

// ParseError reports an answer that is not a base-10 integer.
type ParseError struct {
	Input string // the name of the value being read, e.g. "A"
	Raw   string
	Err   error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.Err, io.ErrUnexpectedEOF):
		return fmt.Sprintf("invalid value for %s: no input", e.Input)
	case errors.Is(e.Err, bufio.ErrTooLong):
		return fmt.Sprintf("invalid value for %s: line longer than %d bytes", e.Input, MaxLineSize)
	default:
		return fmt.Sprintf("invalid value for %s: %q is not a base-10 integer", e.Input, e.Raw)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseInt parses raw as a signed base-10 integer of any magnitude after
// trimming surrounding whitespace. Leading zeros and underscores between
// digits are accepted.
func ParseInt(name, raw string) (*big.Int, error) {
	s := strings.TrimSpace(raw)
	if !integerPattern.MatchString(s) {
		return nil, &ParseError{Input: name, Raw: raw, Err: strconv.ErrSyntax}
	}

	n, ok := new(big.Int).SetString(strings.ReplaceAll(s, "_", ""), 10)
	if !ok {
		return nil, &ParseError{Input: name, Raw: raw, Err: strconv.ErrSyntax}
	}
	return n, nil
}

// Reader writes prompts to out and reads one answer line per prompt from in.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewReader creates a Reader over the given streams.
func NewReader(in io.Reader, out io.Writer) *Reader {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineSize)

	return &Reader{
		scanner: scanner,
		out:     out,
	}
}

// ReadInt writes prompt without a trailing newline, then reads and parses the
// next line. A missing line yields a ParseError wrapping io.ErrUnexpectedEOF,
// a line over MaxLineSize one wrapping bufio.ErrTooLong.
func (r *Reader) ReadInt(name, prompt string) (*big.Int, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return nil, fmt.Errorf("failed to write prompt for %s: %w", name, err)
	}

	if !r.scanner.Scan() {
		err := r.scanner.Err()
		switch {
		case err == nil:
			return nil, &ParseError{Input: name, Err: io.ErrUnexpectedEOF}
		case errors.Is(err, bufio.ErrTooLong):
			return nil, &ParseError{Input: name, Err: err}
		default:
			return nil, fmt.Errorf("failed to read value for %s: %w", name, err)
		}
	}

	return ParseInt(name, r.scanner.Text())
}
