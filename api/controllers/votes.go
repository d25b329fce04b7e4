package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alex-pricope/live-event-voting/api/models"
	"github.com/alex-pricope/live-event-voting/logging"
	"github.com/alex-pricope/live-event-voting/storage"
	"github.com/alex-pricope/live-event-voting/voting"
)

// voterTokenCookie is set on the first submission and echoed back by the
// browser so one device keeps one identity across submissions.
const voterTokenCookie = "voter_token"
const voterTokenMaxAge = 30 * 24 * 60 * 60

type VoteController struct {
	ledger *voting.Ledger
}

func NewVoteController(ledger *voting.Ledger) *VoteController {
	return &VoteController{ledger: ledger}
}

func (c *VoteController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/votes", c.createVote)
	group.GET("/votes/:id", c.getVote)
	group.POST("/votes/:id/vote", c.submitVote)
	group.POST("/votes/:id/end", c.endVote)
	group.POST("/votes/:id/message", c.postMessage)
	group.GET("/ip", c.getClientIP)
}

// createVote godoc
// @Summary Create a new vote activity
// @Description Creates a vote with a title, a team list and a per-user vote cap
// @Tags votes
// @Accept json
// @Produce json
// @Param vote body models.CreateVoteRequest true "Vote configuration"
// @Success 200 {object} models.CreateVoteResponse
// @Failure 400 {object} models.ErrorResponse "Invalid configuration"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/votes [post]
func (c *VoteController) createVote(g *gin.Context) {
	var req models.CreateVoteRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	doc, err := c.ledger.Create(g.Request.Context(), req.Title, req.MaxVotesPerUser, models.TransformTeamsToStorage(req.Teams))
	if err != nil {
		if errors.Is(err, voting.ErrInvalidConfig) {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
			return
		}
		logging.Log.Errorf("failed to create vote: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create vote"})
		return
	}

	g.JSON(http.StatusOK, &models.CreateVoteResponse{ID: doc.Metadata.ID})
}

// getVote godoc
// @Summary Fetch a vote activity
// @Description Returns the full vote document: metadata, tally, voters and message feed
// @Tags votes
// @Produce json
// @Param id path string true "Vote ID"
// @Success 200 {object} storage.VoteDocument
// @Failure 404 {object} models.ErrorResponse "Vote not found"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/votes/{id} [get]
func (c *VoteController) getVote(g *gin.Context) {
	id := g.Param("id")
	if id == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "vote id is required"})
		return
	}

	doc, err := c.ledger.Get(g.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrVoteNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "vote not found or ended"})
			return
		}
		logging.Log.Errorf("failed to get vote %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load vote"})
		return
	}

	g.JSON(http.StatusOK, doc)
}

// submitVote godoc
// @Summary Submit a vote
// @Description Applies a team selection for the calling voter, identified by IP and voter token
// @Tags votes
// @Accept json
// @Produce json
// @Param id path string true "Vote ID"
// @Param submission body models.SubmitVoteRequest true "Selected team ids and optional comment"
// @Success 200 {object} models.SubmitVoteResponse
// @Failure 400 {object} models.ErrorResponse "Invalid selection"
// @Failure 404 {object} models.ErrorResponse "Vote not found"
// @Failure 409 {object} models.ErrorResponse "Submission rejected by eligibility rules"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/votes/{id}/vote [post]
func (c *VoteController) submitVote(g *gin.Context) {
	id := g.Param("id")

	var req models.SubmitVoteRequest
	if err := g.ShouldBindJSON(&req); err != nil || len(req.Teams) == 0 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "select at least one team"})
		return
	}

	identity := c.resolveVoter(g)

	result, err := c.ledger.ApplyVote(g.Request.Context(), id, identity, req.Teams, req.Comment)
	if err != nil {
		respondDenial(g, id, err)
		return
	}

	g.JSON(http.StatusOK, &models.SubmitVoteResponse{
		Success:        true,
		RemainingVotes: result.RemainingVotes,
		Votes:          result.Votes,
	})
}

// endVote godoc
// @Security AdminToken
// @Summary End a vote activity
// @Description Marks the vote as ended; repeated calls are a no-op
// @Tags votes
// @Produce json
// @Param id path string true "Vote ID"
// @Success 200 {object} models.EndVoteResponse
// @Failure 404 {object} models.ErrorResponse "Vote not found"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/votes/{id}/end [post]
func (c *VoteController) endVote(g *gin.Context) {
	id := g.Param("id")

	if err := c.ledger.EndVote(g.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrVoteNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "vote not found or ended"})
			return
		}
		logging.Log.Errorf("failed to end vote %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not end vote"})
		return
	}

	g.JSON(http.StatusOK, &models.EndVoteResponse{Success: true})
}

// postMessage godoc
// @Summary Post a free-text message
// @Description Appends a comment to the vote's message feed, independent of voting eligibility
// @Tags votes
// @Accept json
// @Produce json
// @Param id path string true "Vote ID"
// @Param message body models.MessageRequest true "Message content"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Empty message"
// @Failure 404 {object} models.ErrorResponse "Vote not found"
// @Failure 409 {object} models.ErrorResponse "Vote has ended"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/votes/{id}/message [post]
func (c *VoteController) postMessage(g *gin.Context) {
	id := g.Param("id")

	var req models.MessageRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Content == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "message content is required"})
		return
	}

	msg, err := c.ledger.AppendComment(g.Request.Context(), id, req.Content)
	if err != nil {
		respondDenial(g, id, err)
		return
	}

	g.JSON(http.StatusOK, &models.MessageResponse{Success: true, Message: *msg})
}

// getClientIP godoc
// @Summary Echo the client address
// @Description Used by the share page to display the address a voter will be identified by
// @Tags votes
// @Produce json
// @Success 200 {object} models.IPResponse
// @Router /api/ip [get]
func (c *VoteController) getClientIP(g *gin.Context) {
	ip := g.ClientIP()
	if ip == "" {
		ip = voting.UnknownIdentity
	}
	g.JSON(http.StatusOK, &models.IPResponse{IP: ip})
}

// resolveVoter derives the voter identity from the client address plus the
// persistent cookie token, minting and setting the token on first contact.
func (c *VoteController) resolveVoter(g *gin.Context) string {
	token, err := g.Cookie(voterTokenCookie)
	if err != nil || token == "" {
		token = voting.NewVoterToken()
		if token != "" {
			g.SetCookie(voterTokenCookie, token, voterTokenMaxAge, "/", "", false, true)
		}
	}
	return voting.ResolveIdentity(g.ClientIP(), token)
}

func respondDenial(g *gin.Context, id string, err error) {
	switch {
	case errors.Is(err, storage.ErrVoteNotFound):
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "vote not found or ended"})
	case errors.Is(err, voting.ErrVoteEnded),
		errors.Is(err, voting.ErrQuotaExhausted),
		errors.Is(err, voting.ErrDuplicateTeam):
		g.JSON(http.StatusConflict, &models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, voting.ErrUnknownTeam),
		errors.Is(err, voting.ErrTooManyTeams):
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
	default:
		logging.Log.Errorf("failed to update vote %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not process submission"})
	}
}
