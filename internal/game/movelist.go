package game

import (
	"bufio"
	"io"
	"strings"
)

// ReadMoveList reads notations separated by whitespace or commas. Text after
// a '#' up to the end of the line is a comment.
func ReadMoveList(r io.Reader) ([]string, error) {
	var moves []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		moves = append(moves, SplitMoves(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return moves, nil
}

// SplitMoves splits a single line of notations.
func SplitMoves(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
}
