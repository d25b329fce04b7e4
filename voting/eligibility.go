package voting

import "github.com/alex-pricope/live-event-voting/storage"

// Decide is the eligibility policy for one submission: given the voter's
// current record (nil for a first-time voter), the requested team ids and
// the per-user cap, it either returns the updated record to persist or the
// denial reason. Pure function: it never touches storage and leaves the
// input record untouched.
//
// Rules, in order:
//  1. requesting more teams than the cap allows in one go is rejected whole,
//     never truncated
//  2. a voter who already spent the cap is out of votes
//  3. a team can be voted for at most once per voter
func Decide(record *storage.VoterRecord, requestedTeams []string, maxVotesPerUser int) (*storage.VoterRecord, error) {
	if len(requestedTeams) > maxVotesPerUser {
		return nil, ErrTooManyTeams
	}

	var votedTeams []string
	var voteCount int
	if record != nil {
		votedTeams = record.VotedTeams
		voteCount = record.VoteCount
	}

	if voteCount+len(requestedTeams) > maxVotesPerUser {
		return nil, ErrQuotaExhausted
	}

	seen := make(map[string]bool, len(votedTeams)+len(requestedTeams))
	for _, id := range votedTeams {
		seen[id] = true
	}
	for _, id := range requestedTeams {
		if seen[id] {
			return nil, ErrDuplicateTeam
		}
		seen[id] = true
	}

	updated := &storage.VoterRecord{
		VotedTeams: make([]string, 0, len(votedTeams)+len(requestedTeams)),
		VoteCount:  voteCount + len(requestedTeams),
	}
	updated.VotedTeams = append(updated.VotedTeams, votedTeams...)
	updated.VotedTeams = append(updated.VotedTeams, requestedTeams...)

	return updated, nil
}
