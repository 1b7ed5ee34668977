package testing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixtures(t *testing.T) {
	families, goods := RWAVExample()
	require.Len(t, families, 2)
	require.Equal(t, 10, families[0].NumMembers(nil))
	require.Equal(t, 5, families[1].NumMembers(nil))
	require.Len(t, goods, 4)

	families, _ = EnhancedRWAVExample()
	n, err := families[0].NumMembersWhoWant("y")
	require.NoError(t, err)
	require.Equal(t, 6, n)

	families, goods = DemoGroups()
	require.Equal(t, 10, families[1].NumMembers(nil))
	require.Len(t, goods, 5)

	fam, _ := IdenticalPairs()
	require.Len(t, fam.Members, 2)

	families, goods = AdditiveGroups()
	require.Len(t, families, 3)
	require.Equal(t, 9, families[0].NumMembers(nil))
	require.Len(t, goods, 6)
}

func TestTestLogger(t *testing.T) {
	logger := NewTestLogger(t)
	require.NotPanics(t, func() {
		logger.Debug("turn", "family", "Group 1", "dangling")
		logger.Info("done")
		logger.Warn("no convergence", "iterations", 8)
		logger.Error("failed")
	})
	require.Equal(t, " a=1 b=<missing>", formatKeyValues([]any{"a", 1, "b"}))
}
