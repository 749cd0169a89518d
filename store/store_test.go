package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/report"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenCreatesSchema(t *testing.T) {
	s := openTemp(t)

	runs, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestInsertAndRecent(t *testing.T) {
	s := openTemp(t)

	started := time.Unix(1700000000, 0)
	first := report.Build(7, 5040, 3*time.Millisecond, 2, "aa", started)
	second := report.Build(8, 40320, 9*time.Millisecond, -1, "", started.Add(time.Minute))

	require.NoError(t, s.Insert(first))
	require.NoError(t, s.Insert(second))

	runs, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first
	assert.Equal(t, second, runs[0])
	assert.Equal(t, first, runs[1])
}

func TestRecentHonorsLimit(t *testing.T) {
	s := openTemp(t)

	started := time.Now()
	for n := 3; n <= 8; n++ {
		r := report.Build(n, 1, time.Millisecond, -1, "", started)
		require.NoError(t, s.Insert(r))
	}

	runs, err := s.Recent(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 8, runs[0].N)
	assert.Equal(t, 7, runs[1].N)
}

func TestOpenBadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "nested", "history.db"))
	assert.Error(t, err)
}

func TestReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Insert(report.Build(5, 120, time.Millisecond, -1, "d5", time.Now())))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	runs, err := s.Recent(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, uint64(120), runs[0].Total)
	assert.Equal(t, "d5", runs[0].Digest)
}
