package scanner

import (
	"strings"

	"github.com/leonardinius/zsharp/internal/token"
)

const indentSpaces = "    "

// Scanner splits declaration text into lines of whitespace-separated tokens.
type Scanner interface {
	Scan() []Line
}

type scanner struct {
	source string
}

// NewScanner returns a new Scanner.
func NewScanner(input string) Scanner {
	return &scanner{source: input}
}

// Scan implements Scanner.
func (s *scanner) Scan() []Line {
	rows := strings.Split(s.source, "\n")
	lines := make([]Line, 0, len(rows))

	for idx, row := range rows {
		lines = append(lines, s.scanLine(idx+1, row))
	}

	return lines
}

func (s *scanner) scanLine(number int, row string) Line {
	row = strings.TrimRight(row, "\r")
	body := strings.TrimLeft(row, " \t")
	indent := s.indentation(row[:len(row)-len(body)])

	words := strings.Fields(body)
	tokens := make([]token.Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, token.NewToken(token.Lookup(w), w, number))
	}

	return Line{Number: number, Indent: indent, Raw: body, Tokens: tokens}
}

// indentation counts tab levels of a leading whitespace run, every
// four-space run counting as one tab.
func (s *scanner) indentation(lead string) int {
	lead = strings.ReplaceAll(lead, indentSpaces, "\t")
	return strings.Count(lead, "\t")
}

var _ Scanner = (*scanner)(nil)
