package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filamvp/card-tracker/pkg/parse"
)

func TestNormalizeTeamName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "abbreviation", in: "bvb", want: "Borussia Dortmund"},
		{name: "nickname", in: "gladbach", want: "Borussia Mönchengladbach"},
		{name: "mixed case alias", in: "Man City", want: "Manchester City FC"},
		{name: "greek transliteration", in: "ντόρτμουντ", want: "Borussia Dortmund"},
		{name: "already canonical lowercased", in: "fc bayern münchen", want: "FC Bayern Munich"},
		{name: "padded alias", in: "  juve  ", want: "Juventus FC"},
		{name: "various special case", in: "various", want: "Multiple Teams"},
		// unknown input passes through trimmed, never fails
		{name: "unknown passthrough", in: "  FC Nowhere 1899  ", want: "FC Nowhere 1899"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parse.NormalizeTeamName(tt.in))
		})
	}
}

func TestOfficialTeams(t *testing.T) {
	t.Parallel()

	groups := parse.OfficialTeams()
	require.NotEmpty(t, groups)

	leagues := make(map[string]bool, len(groups))
	for _, g := range groups {
		assert.NotEmpty(t, g.League)
		assert.NotEmpty(t, g.Teams)
		assert.False(t, leagues[g.League], "duplicate league %q", g.League)
		leagues[g.League] = true
	}
	assert.True(t, leagues["Germany: Bundesliga"])
	assert.True(t, leagues["England: Premier League"])
}
