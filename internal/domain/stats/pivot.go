package stats

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/iplt20-stats/internal/domain/match"
)

// NullLabel groups matches whose pivot field is empty, so every match lands in a cell.
const NullLabel = "(none)"

var ErrNothingToCompute = errors.New("nothing to compute: select at least one row field and one column field")

// UnknownFieldError reports a pivot field that is not part of the match schema.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown pivot field %q", e.Field)
}

type fieldFunc func(match.Match) string

var pivotFields = map[string]fieldFunc{
	"season":          func(m match.Match) string { return m.Season },
	"venue":           func(m match.Match) string { return m.Venue },
	"city":            func(m match.Match) string { return m.City },
	"team1":           func(m match.Match) string { return m.Team1Code },
	"team2":           func(m match.Match) string { return m.Team2Code },
	"toss_winner":     func(m match.Match) string { return m.TossWinnerCode },
	"winner":          func(m match.Match) string { return m.WinnerCode },
	"toss_decision":   func(m match.Match) string { return m.TossDecision },
	"result":          func(m match.Match) string { return m.Result },
	"player_of_match": func(m match.Match) string { return m.PlayerOfMatch },
}

// Derived column names accepted as aliases.
var pivotFieldAliases = map[string]string{
	"yr":                "season",
	"team1_short":       "team1",
	"team2_short":       "team2",
	"toss_winner_short": "toss_winner",
	"winner_short":      "winner",
}

// PivotFields lists the fields a pivot can group by.
func PivotFields() []string {
	out := make([]string, 0, len(pivotFields))
	for name := range pivotFields {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ResolvePivotField returns the canonical name of a pivot field.
func ResolvePivotField(name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := pivotFieldAliases[key]; ok {
		key = canonical
	}
	if _, ok := pivotFields[key]; !ok {
		return "", &UnknownFieldError{Field: name}
	}
	return key, nil
}

// PivotTable counts matches per combination of row and column field values.
// Counts[i][j] is the count for RowKeys[i] x ColKeys[j].
type PivotTable struct {
	RowFields []string
	ColFields []string
	RowKeys   [][]string
	ColKeys   [][]string
	Counts    [][]int
	Total     int
}

// Cell returns the count at the given row and column key, zero when absent.
func (p PivotTable) Cell(row, col []string) int {
	r := indexOfKey(p.RowKeys, row)
	c := indexOfKey(p.ColKeys, col)
	if r < 0 || c < 0 {
		return 0
	}
	return p.Counts[r][c]
}

// CrossTab builds a contingency table of match counts. Missing combinations are zero.
func CrossTab(f Filtered, rows, cols []string) (PivotTable, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return PivotTable{}, ErrNothingToCompute
	}

	rowFields, rowFns, err := resolveFields(rows)
	if err != nil {
		return PivotTable{}, err
	}
	colFields, colFns, err := resolveFields(cols)
	if err != nil {
		return PivotTable{}, err
	}

	rowKeys := make(map[string][]string)
	colKeys := make(map[string][]string)
	counts := make(map[string]map[string]int)

	for _, m := range f.Matches {
		rk := keyOf(m, rowFns)
		ck := keyOf(m, colFns)
		rj := joinKey(rk)
		cj := joinKey(ck)
		rowKeys[rj] = rk
		colKeys[cj] = ck

		byCol, ok := counts[rj]
		if !ok {
			byCol = make(map[string]int)
			counts[rj] = byCol
		}
		byCol[cj]++
	}

	out := PivotTable{
		RowFields: rowFields,
		ColFields: colFields,
		RowKeys:   sortedTuples(rowKeys),
		ColKeys:   sortedTuples(colKeys),
		Total:     len(f.Matches),
	}
	out.Counts = make([][]int, len(out.RowKeys))
	for i, rk := range out.RowKeys {
		out.Counts[i] = make([]int, len(out.ColKeys))
		byCol := counts[joinKey(rk)]
		for j, ck := range out.ColKeys {
			out.Counts[i][j] = byCol[joinKey(ck)]
		}
	}
	return out, nil
}

func resolveFields(names []string) ([]string, []fieldFunc, error) {
	fields := make([]string, 0, len(names))
	fns := make([]fieldFunc, 0, len(names))
	for _, name := range names {
		canonical, err := ResolvePivotField(name)
		if err != nil {
			return nil, nil, err
		}
		fields = append(fields, canonical)
		fns = append(fns, pivotFields[canonical])
	}
	return fields, fns, nil
}

func keyOf(m match.Match, fns []fieldFunc) []string {
	out := make([]string, len(fns))
	for i, fn := range fns {
		value := fn(m)
		if value == "" {
			value = NullLabel
		}
		out[i] = value
	}
	return out
}

func joinKey(parts []string) string {
	return strings.Join(parts, "\x1f")
}

func sortedTuples(set map[string][]string) [][]string {
	out := make([][]string, 0, len(set))
	for _, tuple := range set {
		out = append(out, tuple)
	}
	sort.Slice(out, func(i, j int) bool {
		return lessTuple(out[i], out[j])
	})
	return out
}

func lessTuple(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func indexOfKey(keys [][]string, key []string) int {
	target := joinKey(key)
	for i, k := range keys {
		if joinKey(k) == target {
			return i
		}
	}
	return -1
}
