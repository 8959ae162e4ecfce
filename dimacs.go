package satgo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS parses DIMACS CNF text. Lines beginning with 'c', 'p', '%',
// or a literal '0' are skipped entirely (not just comments and the problem
// line, as in stricter DIMACS readers); every other line is
// whitespace-separated signed integers, with a trailing 0 terminating the
// current clause.
//
// A clause that parses to zero literals is rejected as malformed input, as
// is an input that yields no clauses at all. The solver's own empty-clause
// fast path only fires for programmatically constructed problems that
// bypass this parser.
func ParseDIMACS(r io.Reader) ([][]int, error) {
	var clauses [][]int
	var clause []int

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if line == "" {
			continue
		}
		switch line[0] {
		case 'c', 'p', '%', '0':
			continue
		}

		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("satgo: invalid literal %q: %w", field, err)
			}
			if n == 0 {
				if len(clause) == 0 {
					return nil, errors.New("satgo: empty clause in input")
				}
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("satgo: reading input: %w", err)
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}

	if len(clauses) == 0 {
		return nil, errors.New("satgo: no valid clauses found in input")
	}
	return clauses, nil
}
