package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jszwec/csvutil"
)

// ErrMissingColumns is returned when a table lacks one of its required columns.
var ErrMissingColumns = errors.New("missing required columns")

// ErrMalformedValue is returned for a non-null cell that does not parse as its column type.
var ErrMalformedValue = errors.New("malformed value")

const ctxCheckEvery = 4096

// Cell values read as null, the same tokens the common IPL exports use for missing data.
var nullTokens = map[string]struct{}{
	"":     {},
	"na":   {},
	"nan":  {},
	"null": {},
	"none": {},
}

func isNull(value string) bool {
	_, ok := nullTokens[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

// decodeRows reads a header, enforces the required columns and decodes every
// following record into T by column name.
func decodeRows[T any](ctx context.Context, table string, r io.Reader, required []string) ([]T, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, crerr.Wrapf(ErrMissingColumns, "%s: empty file, want %s", table, strings.Join(required, ", "))
	}
	if err != nil {
		return nil, crerr.Wrapf(err, "%s: read header", table)
	}
	header = normalizeHeader(header)
	if missing := missingColumns(header, required); len(missing) > 0 {
		return nil, crerr.Wrapf(ErrMissingColumns, "%s: %s", table, strings.Join(missing, ", "))
	}

	dec, err := csvutil.NewDecoder(reader, header...)
	if err != nil {
		return nil, crerr.Wrapf(err, "%s: create decoder", table)
	}
	dec.Map = func(field, _ string, _ any) string {
		if isNull(field) {
			return ""
		}
		return strings.TrimSpace(field)
	}

	var out []T
	for line := 2; ; line++ {
		if line%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, crerr.Wrapf(err, "%s: decode cancelled", table)
			}
		}

		var row T
		if err := dec.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, crerr.Wrapf(err, "%s: line %d", table, line)
		}
		out = append(out, row)
	}
	return out, nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, col := range header {
		col = strings.TrimPrefix(col, "\ufeff")
		out[i] = strings.ToLower(strings.TrimSpace(col))
	}
	return out
}

func missingColumns(header, required []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, col := range header {
		present[col] = struct{}{}
	}
	var missing []string
	for _, col := range required {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// parseInt reads an integer cell. Null cells are zero; pandas float exports such as "4.0" are accepted.
func parseInt(column, value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, crerr.Wrapf(ErrMalformedValue, "%s=%q is not an integer", column, value)
	}
	return int64(f), nil
}

// parseFlag reads is_wicket style cells: 0/1 or true/false.
func parseFlag(column, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "", "0", "0.0", "false", "f", "no":
		return false, nil
	case "1", "1.0", "true", "t", "yes":
		return true, nil
	}
	return false, crerr.Wrapf(ErrMalformedValue, "%s=%q is not a flag", column, value)
}
