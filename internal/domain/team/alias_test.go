package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_KnownNamesMapToCode(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Mumbai Indians":              "MI",
		"Delhi Daredevils":            "DD",
		"Delhi Capitals":              "DD",
		"Deccan Chargers":             "SRH",
		"Rising Pune Supergiant":      "PW",
		"Royal Challengers Bengaluru": "RCB",
	}
	for raw, want := range cases {
		if got := Normalize(raw); got != want {
			t.Fatalf("Normalize(%q)=%q, want %q", raw, got, want)
		}
	}
}

func TestNormalize_IsIdempotentForEveryAlias(t *testing.T) {
	t.Parallel()

	for raw := range Aliases() {
		once := Normalize(raw)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", raw, once, twice)
		}
	}
}

func TestNormalize_UnknownNamesPassThrough(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "Kochi", "mumbai indians", "Sunrisers  Hyderabad", "XYZ"} {
		if got := Normalize(raw); got != raw {
			t.Fatalf("Normalize(%q)=%q, want pass-through", raw, got)
		}
	}
}

func TestLookup_ReportsMissingNames(t *testing.T) {
	t.Parallel()

	code, ok := Lookup("Chennai Super Kings")
	require.True(t, ok)
	assert.Equal(t, "CSK", code)

	code, ok = Lookup("")
	assert.False(t, ok)
	assert.Empty(t, code)
}

func TestAliases_ReturnsCopy(t *testing.T) {
	t.Parallel()

	copied := Aliases()
	copied["Mumbai Indians"] = "XX"

	assert.Equal(t, "MI", Normalize("Mumbai Indians"))
}

func TestCodes_SortedAndDistinct(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"CSK", "DD", "GT", "KKR", "KTK", "LSG", "MI", "PBKS", "PW", "RCB", "RR", "SRH"},
		Codes(),
	)
}

func TestLegend_GroupsNamesByPresentCode(t *testing.T) {
	t.Parallel()

	got := Legend([]string{"SRH", "DD", "SRH", "", "Unknown XI"})
	require.Len(t, got, 3)

	assert.Equal(t, "DD", got[0].Code)
	assert.Equal(t, []string{"Delhi Capitals", "Delhi Daredevils"}, got[0].Names)
	assert.Equal(t, "SRH", got[1].Code)
	assert.Equal(t, []string{"Deccan Chargers", "Sunrisers Hyderabad"}, got[1].Names)
	assert.Equal(t, "Unknown XI", got[2].Code)
	assert.Empty(t, got[2].Names)
}
