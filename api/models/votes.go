package models

import "github.com/alex-pricope/live-event-voting/storage"

type ErrorResponse struct {
	Error string `json:"error"`
}

type TeamEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateVoteRequest struct {
	Title           string      `json:"title"`
	MaxVotesPerUser int         `json:"maxVotesPerUser"`
	Teams           []TeamEntry `json:"teams"`
}

type CreateVoteResponse struct {
	ID string `json:"id"`
}

type SubmitVoteRequest struct {
	Teams   []string `json:"teams"`
	Comment string   `json:"comment,omitempty"`
}

type SubmitVoteResponse struct {
	Success        bool           `json:"success"`
	RemainingVotes int            `json:"remainingVotes"`
	Votes          map[string]int `json:"votes"`
}

type EndVoteResponse struct {
	Success bool `json:"success"`
}

type MessageRequest struct {
	Content string `json:"content"`
}

type MessageResponse struct {
	Success bool            `json:"success"`
	Message storage.Message `json:"message"`
}

type IPResponse struct {
	IP string `json:"ip"`
}

func TransformTeamsToStorage(teams []TeamEntry) []storage.Team {
	out := make([]storage.Team, 0, len(teams))
	for _, t := range teams {
		out = append(out, storage.Team{ID: t.ID, Name: t.Name})
	}
	return out
}
