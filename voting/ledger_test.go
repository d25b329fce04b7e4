package voting

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex-pricope/live-event-voting/logging"
	"github.com/alex-pricope/live-event-voting/storage"
)

func TestMain(m *testing.M) {
	logging.Log = logrus.New()
	os.Exit(m.Run())
}

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return NewLedger(&storage.FileVoteStorage{Dir: t.TempDir()})
}

func twoTeams() []storage.Team {
	return []storage.Team{
		{ID: "a", Name: "Alpha"},
		{ID: "b", Name: "Beta"},
	}
}

func TestCreateVote(t *testing.T) {
	ledger := newTestLedger(t)

	t.Run("Happy path - create initializes a zero tally", func(t *testing.T) {
		doc, err := ledger.Create(context.Background(), "Demo day", 2, twoTeams())

		require.NoError(t, err)
		assert.NotEmpty(t, doc.Metadata.ID)
		assert.Equal(t, "Demo day", doc.Metadata.Title)
		assert.False(t, doc.Metadata.Ended)
		assert.Equal(t, map[string]int{"a": 0, "b": 0}, doc.Votes)
		assert.Empty(t, doc.Voters)
		assert.Empty(t, doc.Messages)
	})

	t.Run("Happy path - blank team ids are generated", func(t *testing.T) {
		doc, err := ledger.Create(context.Background(), "Demo day", 1, []storage.Team{
			{Name: "Alpha"},
			{Name: "Beta"},
		})

		require.NoError(t, err)
		for _, team := range doc.Metadata.Teams {
			assert.NotEmpty(t, team.ID)
		}
	})

	t.Run("Unhappy path - fewer than 2 teams", func(t *testing.T) {
		_, err := ledger.Create(context.Background(), "Demo day", 1, []storage.Team{{ID: "a", Name: "Alpha"}})

		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Unhappy path - zero max votes", func(t *testing.T) {
		_, err := ledger.Create(context.Background(), "Demo day", 0, twoTeams())

		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Unhappy path - duplicate team ids", func(t *testing.T) {
		_, err := ledger.Create(context.Background(), "Demo day", 1, []storage.Team{
			{ID: "a", Name: "Alpha"},
			{ID: "a", Name: "Beta"},
		})

		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestGetVote(t *testing.T) {
	ledger := newTestLedger(t)

	t.Run("Happy path - round trip", func(t *testing.T) {
		created, err := ledger.Create(context.Background(), "Demo day", 1, twoTeams())
		require.NoError(t, err)

		got, err := ledger.Get(context.Background(), created.Metadata.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Metadata.ID, got.Metadata.ID)
		assert.Equal(t, created.Votes, got.Votes)
	})

	t.Run("Unhappy path - unknown id", func(t *testing.T) {
		_, err := ledger.Get(context.Background(), "does-not-exist")

		assert.ErrorIs(t, err, storage.ErrVoteNotFound)
	})
}

func TestApplyVote(t *testing.T) {
	t.Run("Happy path - single team, quota then exhausted", func(t *testing.T) {
		ledger := newTestLedger(t)
		doc, err := ledger.Create(context.Background(), "Demo day", 1, twoTeams())
		require.NoError(t, err)
		id := doc.Metadata.ID

		result, err := ledger.ApplyVote(context.Background(), id, "voter-x", []string{"a"}, "")
		require.NoError(t, err)
		assert.Equal(t, 0, result.RemainingVotes)
		assert.Equal(t, 1, result.Votes["a"])

		// A second submission from the same identity is out of quota and
		// must not move the other team's tally
		_, err = ledger.ApplyVote(context.Background(), id, "voter-x", []string{"b"}, "")
		assert.ErrorIs(t, err, ErrQuotaExhausted)

		stored, err := ledger.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Votes["a"])
		assert.Equal(t, 0, stored.Votes["b"])
	})

	t.Run("Happy path - vote appends a feed message with team names", func(t *testing.T) {
		ledger := newTestLedger(t)
		doc, err := ledger.Create(context.Background(), "Demo day", 2, twoTeams())
		require.NoError(t, err)

		_, err = ledger.ApplyVote(context.Background(), doc.Metadata.ID, "voter-x", []string{"a", "b"}, "go go go")
		require.NoError(t, err)

		stored, err := ledger.Get(context.Background(), doc.Metadata.ID)
		require.NoError(t, err)
		require.Len(t, stored.Messages, 1)
		assert.Equal(t, storage.MessageTypeVote, stored.Messages[0].Type)
		assert.Equal(t, "go go go", stored.Messages[0].Content)
		assert.Equal(t, []string{"Alpha", "Beta"}, stored.Messages[0].TeamNames)
	})

	t.Run("Happy path - tally reconciles with accepted submissions", func(t *testing.T) {
		ledger := newTestLedger(t)
		doc, err := ledger.Create(context.Background(), "Demo day", 2, twoTeams())
		require.NoError(t, err)
		id := doc.Metadata.ID

		accepted := 0
		submissions := [][]string{{"a"}, {"a", "b"}, {"b"}, {"a"}}
		for i, teams := range submissions {
			identity := fmt.Sprintf("voter-%d", i)
			if _, err := ledger.ApplyVote(context.Background(), id, identity, teams, ""); err == nil {
				accepted += len(teams)
			}
		}

		stored, err := ledger.Get(context.Background(), id)
		require.NoError(t, err)
		total := 0
		for _, count := range stored.Votes {
			total += count
		}
		assert.Equal(t, accepted, total, "no lost or phantom votes")
	})

	t.Run("Unhappy path - duplicate team for the same voter", func(t *testing.T) {
		ledger := newTestLedger(t)
		doc, err := ledger.Create(context.Background(), "Demo day", 2, twoTeams())
		require.NoError(t, err)

		_, err = ledger.ApplyVote(context.Background(), doc.Metadata.ID, "voter-x", []string{"a"}, "")
		require.NoError(t, err)

		_, err = ledger.ApplyVote(context.Background(), doc.Metadata.ID, "voter-x", []string{"a"}, "")
		assert.ErrorIs(t, err, ErrDuplicateTeam)
	})

	t.Run("Unhappy path - unknown team", func(t *testing.T) {
		ledger := newTestLedger(t)
		doc, err := ledger.Create(context.Background(), "Demo day", 1, twoTeams())
		require.NoError(t, err)

		_, err = ledger.ApplyVote(context.Background(), doc.Metadata.ID, "voter-x", []string{"nope"}, "")
		assert.ErrorIs(t, err, ErrUnknownTeam)
	})

	t.Run("Unhappy path - too many teams in one submission", func(t *testing.T) {
		ledger := newTestLedger(t)
		doc, err := ledger.Create(context.Background(), "Demo day", 1, twoTeams())
		require.NoError(t, err)

		_, err = ledger.ApplyVote(context.Background(), doc.Metadata.ID, "voter-x", []string{"a", "b"}, "")
		assert.ErrorIs(t, err, ErrTooManyTeams)

		// The denial must leave the document untouched
		stored, err := ledger.Get(context.Background(), doc.Metadata.ID)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"a": 0, "b": 0}, stored.Votes)
		assert.Empty(t, stored.Messages)
	})

	t.Run("Unhappy path - unknown vote id", func(t *testing.T) {
		ledger := newTestLedger(t)

		_, err := ledger.ApplyVote(context.Background(), "does-not-exist", "voter-x", []string{"a"}, "")
		assert.ErrorIs(t, err, storage.ErrVoteNotFound)
	})
}

func TestEndVote(t *testing.T) {
	ledger := newTestLedger(t)
	doc, err := ledger.Create(context.Background(), "Demo day", 1, twoTeams())
	require.NoError(t, err)
	id := doc.Metadata.ID

	_, err = ledger.ApplyVote(context.Background(), id, "voter-x", []string{"a"}, "")
	require.NoError(t, err)

	require.NoError(t, ledger.EndVote(context.Background(), id))

	// Ending twice is an idempotent no-op
	require.NoError(t, ledger.EndVote(context.Background(), id))

	before, err := ledger.Get(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, before.Metadata.Ended)

	// No submission or comment gets through once ended, and the document
	// stays exactly as it was
	_, err = ledger.ApplyVote(context.Background(), id, "voter-y", []string{"b"}, "")
	assert.ErrorIs(t, err, ErrVoteEnded)

	_, err = ledger.AppendComment(context.Background(), id, "too late")
	assert.ErrorIs(t, err, ErrVoteEnded)

	after, err := ledger.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAppendComment(t *testing.T) {
	ledger := newTestLedger(t)
	doc, err := ledger.Create(context.Background(), "Demo day", 1, twoTeams())
	require.NoError(t, err)
	id := doc.Metadata.ID

	first, err := ledger.AppendComment(context.Background(), id, "first!")
	require.NoError(t, err)
	second, err := ledger.AppendComment(context.Background(), id, "second")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	stored, err := ledger.Get(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, stored.Messages, 2)
	assert.Equal(t, "first!", stored.Messages[0].Content)
	assert.Equal(t, "second", stored.Messages[1].Content)
	assert.Equal(t, storage.MessageTypeComment, stored.Messages[0].Type)
}

// TestConcurrentSubmissions drives 100 parallel submissions with distinct
// identities and teams through one vote and checks that none of the
// read-modify-write cycles lost an update.
func TestConcurrentSubmissions(t *testing.T) {
	ledger := newTestLedger(t)

	const voters = 100
	teams := make([]storage.Team, 0, voters)
	for i := 0; i < voters; i++ {
		teams = append(teams, storage.Team{
			ID:   fmt.Sprintf("team-%d", i),
			Name: fmt.Sprintf("Team %d", i),
		})
	}

	doc, err := ledger.Create(context.Background(), "Everyone at once", voters, teams)
	require.NoError(t, err)
	id := doc.Metadata.ID

	var wg sync.WaitGroup
	errs := make(chan error, voters)
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := ledger.ApplyVote(context.Background(), id,
				fmt.Sprintf("voter-%d", n), []string{fmt.Sprintf("team-%d", n)}, "")
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	stored, err := ledger.Get(context.Background(), id)
	require.NoError(t, err)
	total := 0
	for _, count := range stored.Votes {
		total += count
	}
	assert.Equal(t, voters, total, "every accepted submission must be counted")
	assert.Len(t, stored.Voters, voters)
	assert.Len(t, stored.Messages, voters)
}
