package tubesort

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, tubes ...[]string) Board {
	t.Helper()
	b, err := NewBoard(tubes)
	require.NoError(t, err)
	return b
}

func tube(names ...string) []string {
	if names == nil {
		return []string{}
	}
	return names
}

// solveSession plays a solver path through the click interface.
func solveSession(t *testing.T, s *Session) {
	t.Helper()
	path, err := Solve(s.Board(), s.opts.WinRule.Goal(), 0)
	require.NoError(t, err)
	for _, m := range path {
		require.False(t, s.ClickTube(m.From), "first click only selects")
		require.True(t, s.ClickTube(m.To), "pour %s should succeed", m)
	}
}
