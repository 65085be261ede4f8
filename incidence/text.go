// SPDX-License-Identifier: MIT

package incidence

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadText parses the line-oriented text encoding.
//
// Errors: ErrSyntax for a non-numeric token, ErrNotBinary for an integer
// outside {0,1}; both report the 1-based line and column. I/O errors from r
// are returned wrapped.
func ReadText(r io.Reader) ([][]int, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for col, tok := range fields {
			v, err := parseCell(tok)
			if err != nil {
				return nil, fmt.Errorf("ReadText: line %d, column %d: %w", line, col+1, err)
			}
			row[col] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadText: %w", err)
	}

	return rows, nil
}

// parseCell converts a single token into 0 or 1.
func parseCell(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", tok, ErrSyntax)
	}
	if v != 0 && v != 1 {
		return 0, fmt.Errorf("%d: %w", v, ErrNotBinary)
	}

	return v, nil
}

// WriteText renders rows as lines of space-separated digits.
func WriteText(w io.Writer, rows [][]int) error {
	var sb strings.Builder
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}

	return nil
}

// WriteList renders items on one line separated by spaces.
func WriteList(w io.Writer, items []string) error {
	if _, err := io.WriteString(w, strings.Join(items, " ")+"\n"); err != nil {
		return fmt.Errorf("WriteList: %w", err)
	}

	return nil
}
