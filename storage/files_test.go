package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex-pricope/live-event-voting/logging"
)

func TestMain(m *testing.M) {
	logging.Log = logrus.New()
	os.Exit(m.Run())
}

func sampleDocument(id string) *VoteDocument {
	return &VoteDocument{
		Metadata: VoteMetadata{
			ID:              id,
			Title:           "Demo day",
			CreatedAt:       time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
			MaxVotesPerUser: 2,
			Teams: []Team{
				{ID: "a", Name: "Alpha"},
				{ID: "b", Name: "Beta"},
			},
		},
		Votes:    map[string]int{"a": 0, "b": 0},
		Voters:   map[string]*VoterRecord{},
		Messages: []Message{},
	}
}

func TestFileVoteStorage(t *testing.T) {
	store := &FileVoteStorage{Dir: t.TempDir()}

	t.Run("Happy path - create, get, exists", func(t *testing.T) {
		doc := sampleDocument("vote-1")
		require.NoError(t, store.Create(context.Background(), doc))

		got, err := store.Get(context.Background(), "vote-1")
		require.NoError(t, err)
		assert.Equal(t, doc, got)

		exists, err := store.Exists(context.Background(), "vote-1")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Happy path - put overwrites whole document", func(t *testing.T) {
		doc := sampleDocument("vote-2")
		require.NoError(t, store.Create(context.Background(), doc))

		doc.Votes["a"] = 3
		doc.Voters["10.0.0.1"] = &VoterRecord{VotedTeams: []string{"a"}, VoteCount: 1}
		require.NoError(t, store.Put(context.Background(), doc))

		got, err := store.Get(context.Background(), "vote-2")
		require.NoError(t, err)
		assert.Equal(t, 3, got.Votes["a"])
		assert.Equal(t, 1, got.Voters["10.0.0.1"].VoteCount)
	})

	t.Run("Happy path - no temp files left behind", func(t *testing.T) {
		doc := sampleDocument("vote-3")
		require.NoError(t, store.Create(context.Background(), doc))

		entries, err := os.ReadDir(store.Dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.Equal(t, ".json", filepath.Ext(e.Name()))
		}
	})

	t.Run("Unhappy path - get unknown id", func(t *testing.T) {
		_, err := store.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrVoteNotFound)

		exists, err := store.Exists(context.Background(), "missing")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Unhappy path - create twice", func(t *testing.T) {
		doc := sampleDocument("vote-4")
		require.NoError(t, store.Create(context.Background(), doc))
		assert.ErrorIs(t, store.Create(context.Background(), doc), ErrVoteAlreadyExists)
	})
}

func TestFilePrizeListStorage(t *testing.T) {
	store := &FilePrizeListStorage{Dir: t.TempDir()}

	t.Run("Happy path - put, get, get all, delete", func(t *testing.T) {
		list := &PrizeList{
			ID:        "list-1",
			Name:      "Closing raffle",
			Prizes:    []string{"Mug", "Sticker pack", "Gift card"},
			CreatedAt: time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC),
		}
		require.NoError(t, store.Put(context.Background(), list))

		got, err := store.Get(context.Background(), "list-1")
		require.NoError(t, err)
		assert.Equal(t, list, got)

		all, err := store.GetAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, all, 1)

		require.NoError(t, store.Delete(context.Background(), "list-1"))
		_, err = store.Get(context.Background(), "list-1")
		assert.ErrorIs(t, err, ErrPrizeListNotFound)
	})

	t.Run("Happy path - get all on empty dir", func(t *testing.T) {
		empty := &FilePrizeListStorage{Dir: filepath.Join(t.TempDir(), "never-created")}
		all, err := empty.GetAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("Unhappy path - get unknown list", func(t *testing.T) {
		_, err := store.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrPrizeListNotFound)
	})

	t.Run("Happy path - delete is idempotent", func(t *testing.T) {
		assert.NoError(t, store.Delete(context.Background(), "missing"))
	})
}
