package voting

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alex-pricope/live-event-voting/logging"
	"github.com/alex-pricope/live-event-voting/storage"
)

// Ledger owns the vote documents: every mutation of tallies, voter records
// and the message feed goes through it. Neither storage backend gives us an
// atomic read-modify-write, so the ledger serializes ApplyVote / EndVote /
// AppendComment per vote id with an in-process lock. Submissions for
// different votes proceed in parallel.
type Ledger struct {
	store storage.VoteDocumentStorage

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// SubmitResult is what an accepted submission reports back: the tally after
// the update and how many votes the identity has left.
type SubmitResult struct {
	Votes          map[string]int
	RemainingVotes int
}

func NewLedger(store storage.VoteDocumentStorage) *Ledger {
	return &Ledger{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

func (l *Ledger) lockFor(id string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[id] = lock
	}
	return lock
}

// Create validates the configuration and stores a fresh document with a zero
// tally for every team.
func (l *Ledger) Create(ctx context.Context, title string, maxVotesPerUser int, teams []storage.Team) (*storage.VoteDocument, error) {
	if len(teams) < 2 || maxVotesPerUser < 1 {
		return nil, ErrInvalidConfig
	}

	seen := make(map[string]bool, len(teams))
	for i := range teams {
		if strings.TrimSpace(teams[i].Name) == "" {
			return nil, ErrInvalidConfig
		}
		if teams[i].ID == "" {
			teams[i].ID = uuid.NewString()
		}
		if seen[teams[i].ID] {
			return nil, ErrInvalidConfig
		}
		seen[teams[i].ID] = true
	}

	doc := &storage.VoteDocument{
		Metadata: storage.VoteMetadata{
			ID:              uuid.NewString(),
			Title:           title,
			CreatedAt:       time.Now().UTC(),
			MaxVotesPerUser: maxVotesPerUser,
			Teams:           teams,
			Ended:           false,
		},
		Votes:    make(map[string]int, len(teams)),
		Voters:   make(map[string]*storage.VoterRecord),
		Messages: []storage.Message{},
	}
	for _, t := range teams {
		doc.Votes[t.ID] = 0
	}

	if err := l.store.Create(ctx, doc); err != nil {
		return nil, err
	}

	logging.Log.Infof("LEDGER: created vote %s (%q) with %d teams, max %d per user",
		doc.Metadata.ID, title, len(teams), maxVotesPerUser)
	return doc, nil
}

func (l *Ledger) Get(ctx context.Context, id string) (*storage.VoteDocument, error) {
	return l.store.Get(ctx, id)
}

// ApplyVote runs the whole read-decide-write sequence for one submission as
// a critical section. On any denial the stored document is left untouched.
func (l *Ledger) ApplyVote(ctx context.Context, id, identity string, requestedTeams []string, comment string) (*SubmitResult, error) {
	lock := l.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	doc, err := l.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.Metadata.Ended {
		return nil, ErrVoteEnded
	}

	teamNames := make([]string, 0, len(requestedTeams))
	for _, teamID := range requestedTeams {
		name, ok := teamName(doc.Metadata.Teams, teamID)
		if !ok {
			return nil, ErrUnknownTeam
		}
		teamNames = append(teamNames, name)
	}

	updated, err := Decide(doc.Voters[identity], requestedTeams, doc.Metadata.MaxVotesPerUser)
	if err != nil {
		logging.Log.Infof("LEDGER: denied submission for vote %s by %s: %v", id, identity, err)
		return nil, err
	}

	for _, teamID := range requestedTeams {
		doc.Votes[teamID]++
	}
	if doc.Voters == nil {
		doc.Voters = make(map[string]*storage.VoterRecord)
	}
	doc.Voters[identity] = updated
	doc.Messages = append(doc.Messages, storage.Message{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Type:      storage.MessageTypeVote,
		Content:   comment,
		TeamNames: teamNames,
	})

	if err := l.store.Put(ctx, doc); err != nil {
		return nil, err
	}

	return &SubmitResult{
		Votes:          doc.Votes,
		RemainingVotes: doc.Metadata.MaxVotesPerUser - updated.VoteCount,
	}, nil
}

// EndVote flips the document to its terminal state. Ending an already ended
// vote is a no-op success.
func (l *Ledger) EndVote(ctx context.Context, id string) error {
	lock := l.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	doc, err := l.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if doc.Metadata.Ended {
		return nil
	}

	doc.Metadata.Ended = true
	if err := l.store.Put(ctx, doc); err != nil {
		return err
	}

	logging.Log.Infof("LEDGER: ended vote %s", id)
	return nil
}

// AppendComment adds a free-text message to the feed. Commenting is open to
// everyone while the vote is running, independent of voting eligibility.
func (l *Ledger) AppendComment(ctx context.Context, id, content string) (*storage.Message, error) {
	lock := l.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	doc, err := l.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.Metadata.Ended {
		return nil, ErrVoteEnded
	}

	msg := storage.Message{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Type:      storage.MessageTypeComment,
		Content:   content,
	}
	doc.Messages = append(doc.Messages, msg)

	if err := l.store.Put(ctx, doc); err != nil {
		return nil, err
	}
	return &msg, nil
}

func teamName(teams []storage.Team, id string) (string, bool) {
	for _, t := range teams {
		if t.ID == id {
			return t.Name, true
		}
	}
	return "", false
}
