package storage

import "time"

const (
	MessageTypeVote    = "vote"
	MessageTypeComment = "comment"
)

type Team struct {
	ID   string `dynamodbav:"ID" json:"id"`
	Name string `dynamodbav:"Name" json:"name"`
}

type VoteMetadata struct {
	ID              string    `dynamodbav:"ID" json:"id"`
	Title           string    `dynamodbav:"Title" json:"title"`
	CreatedAt       time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
	MaxVotesPerUser int       `dynamodbav:"MaxVotesPerUser" json:"maxVotesPerUser"`
	Teams           []Team    `dynamodbav:"Teams" json:"teams"`
	Ended           bool      `dynamodbav:"Ended" json:"ended"`
}

// VoterRecord tracks how many submissions one identity has spent and which
// teams it already picked.
type VoterRecord struct {
	VotedTeams []string `dynamodbav:"VotedTeams" json:"votedTeams"`
	VoteCount  int      `dynamodbav:"VoteCount" json:"voteCount"`
}

type Message struct {
	ID        string    `dynamodbav:"ID" json:"id"`
	Timestamp time.Time `dynamodbav:"Timestamp" json:"timestamp"`
	Type      string    `dynamodbav:"Type" json:"type"`
	Content   string    `dynamodbav:"Content" json:"content"`
	TeamNames []string  `dynamodbav:"TeamNames,omitempty" json:"teamNames,omitempty"`
}

// VoteDocument is the unit of storage: one item (or file) per vote activity,
// always read and written whole.
type VoteDocument struct {
	Metadata VoteMetadata            `dynamodbav:"Metadata" json:"metadata"`
	Votes    map[string]int          `dynamodbav:"Votes" json:"votes"`
	Voters   map[string]*VoterRecord `dynamodbav:"Voters" json:"voters"`
	Messages []Message               `dynamodbav:"Messages" json:"messages"`
}

type PrizeList struct {
	ID        string    `dynamodbav:"PK" json:"id"`
	Name      string    `dynamodbav:"Name" json:"name"`
	Prizes    []string  `dynamodbav:"Prizes" json:"prizes"`
	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
}
