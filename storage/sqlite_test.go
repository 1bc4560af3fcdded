package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "runs.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestOpenTwiceKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveRun(Run{Source: SourceSim, StartLevel: 0, EndLevel: 2, LevelsCompleted: 2})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.RecentRuns(5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 2, runs[0].LevelsCompleted)
}

func TestSaveRunRoundTrip(t *testing.T) {
	store := openTemp(t)

	id, err := store.SaveRun(Run{
		Source:          SourcePlay,
		Pilot:           "human",
		StartLevel:      1,
		EndLevel:        3,
		LevelsCompleted: 2,
		Deaths:          4,
		Frames:          3600,
		Duration:        61500 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	runs, err := store.RecentRuns(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	r := runs[0]
	assert.Equal(t, id, r.ID)
	assert.Equal(t, SourcePlay, r.Source)
	assert.Equal(t, "human", r.Pilot)
	assert.Equal(t, 1, r.StartLevel)
	assert.Equal(t, 3, r.EndLevel)
	assert.Equal(t, 4, r.Deaths)
	assert.Equal(t, 3600, r.Frames)
	assert.Equal(t, 61500*time.Millisecond, r.Duration)
	assert.False(t, r.CreatedAt.IsZero())
}

func TestBestRunsOrdering(t *testing.T) {
	store := openTemp(t)

	for _, r := range []Run{
		{Source: SourceSim, LevelsCompleted: 1, Deaths: 0},
		{Source: SourceSim, LevelsCompleted: 3, Deaths: 5},
		{Source: SourceSim, LevelsCompleted: 3, Deaths: 1},
		{Source: SourcePlay, LevelsCompleted: 0, Deaths: 9},
	} {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	best, err := store.BestRuns(3)
	require.NoError(t, err)
	require.Len(t, best, 3)
	assert.Equal(t, 3, best[0].LevelsCompleted)
	assert.Equal(t, 1, best[0].Deaths)
	assert.Equal(t, 5, best[1].Deaths)
	assert.Equal(t, 1, best[2].LevelsCompleted)
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 4; i++ {
		_, err := store.SaveRun(Run{Source: SourceSim, Frames: i})
		require.NoError(t, err)
	}

	runs, err := store.RecentRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 4)
	assert.Equal(t, 3, runs[0].Frames)
	assert.Equal(t, 0, runs[3].Frames)
}
