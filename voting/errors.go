package voting

import "errors"

var ErrInvalidConfig = errors.New("a vote needs at least 2 teams and maxVotesPerUser >= 1")
var ErrVoteEnded = errors.New("vote has ended")
var ErrUnknownTeam = errors.New("requested team is not part of this vote")
var ErrTooManyTeams = errors.New("more teams selected than allowed per user")
var ErrQuotaExhausted = errors.New("maximum number of votes reached")
var ErrDuplicateTeam = errors.New("team was already voted for by this user")
