package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/statespace/knights"
)

// parseBoard reads a list of "row,col" squares separated by spaces or
// semicolons, e.g. "0,0 0,1;1,0". Shape errors wrap knights.ErrFormat and
// coordinate errors wrap knights.ErrRange.
func parseBoard(list string) (knights.State, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ' ' || r == ';' || r == '\t'
	})
	pairs := make([][]int, 0, len(fields))
	for _, f := range fields {
		parts := strings.Split(f, ",")
		pair := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return knights.State{}, fmt.Errorf("%w: %q is not row,col", knights.ErrFormat, f)
			}
			pair = append(pair, n)
		}
		pairs = append(pairs, pair)
	}

	return knights.FromPairs(pairs)
}
