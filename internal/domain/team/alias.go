package team

import "sort"

// aliases maps every historical franchise name found in the match table to the
// short code used for display and grouping. Renamed franchises share a code.
// Some distinct franchises are collapsed onto one code (Gujarat Lions and
// Gujarat Titans, Rising Pune Supergiant(s) and Pune Warriors); that is kept
// as-is because the source data does not disambiguate them.
var aliases = map[string]string{
	"Royal Challengers Bangalore": "RCB",
	"Royal Challengers Bengaluru": "RCB",
	"Kings XI Punjab":             "PBKS",
	"Punjab Kings":                "PBKS",
	"Delhi Daredevils":            "DD",
	"Delhi Capitals":              "DD",
	"Mumbai Indians":              "MI",
	"Kolkata Knight Riders":       "KKR",
	"Rajasthan Royals":            "RR",
	"Deccan Chargers":             "SRH",
	"Sunrisers Hyderabad":         "SRH",
	"Chennai Super Kings":         "CSK",
	"Kochi Tuskers Kerala":        "KTK",
	"Pune Warriors":               "PW",
	"Rising Pune Supergiants":     "PW",
	"Rising Pune Supergiant":      "PW",
	"Gujarat Lions":               "GT",
	"Gujarat Titans":              "GT",
	"Lucknow Super Giants":        "LSG",
}

// Lookup returns the short code registered for raw. ok is false when raw is
// not a known franchise name.
func Lookup(raw string) (code string, ok bool) {
	code, ok = aliases[raw]
	return code, ok
}

// Normalize maps raw to its short code, passing unknown names through
// unchanged. An empty name stays empty.
func Normalize(raw string) string {
	if code, ok := Lookup(raw); ok {
		return code
	}
	return raw
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for name, code := range aliases {
		out[name] = code
	}
	return out
}

// Codes returns the distinct short codes in ascending order.
func Codes() []string {
	seen := make(map[string]struct{}, len(aliases))
	out := make([]string, 0, len(aliases))
	for _, code := range aliases {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
