package team

import "sort"

// LegendEntry lists the franchise names folded into one short code.
type LegendEntry struct {
	Code  string
	Names []string
}

// Legend returns the alias entries for the given codes, ordered by code.
// Codes without an alias (pass-through names) are listed with no names.
func Legend(present []string) []LegendEntry {
	namesByCode := make(map[string][]string)
	for name, code := range aliases {
		namesByCode[code] = append(namesByCode[code], name)
	}

	seen := make(map[string]struct{}, len(present))
	out := make([]LegendEntry, 0, len(present))
	for _, code := range present {
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}

		names := append([]string(nil), namesByCode[code]...)
		sort.Strings(names)
		out = append(out, LegendEntry{Code: code, Names: names})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
