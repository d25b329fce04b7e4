package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/alex-pricope/live-event-voting/api/models"
	"github.com/alex-pricope/live-event-voting/api/transport"
	"github.com/alex-pricope/live-event-voting/logging"
	"github.com/alex-pricope/live-event-voting/storage"
)

const prizeListIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// WheelController manages the prize lists the lucky-wheel page spins over,
// so a list prepared on one device shows up on the venue screen too. The
// spin itself stays client-side.
type WheelController struct {
	storage storage.PrizeListStorage
}

func NewWheelController(s storage.PrizeListStorage) *WheelController {
	return &WheelController{storage: s}
}

func (c *WheelController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/wheel/lists")

	group.GET("", c.getAll)
	group.GET("/:id", c.get)
	group.POST("", transport.AdminAuthMiddleware(), c.create)
	group.PUT("/:id", transport.AdminAuthMiddleware(), c.update)
	group.DELETE("/:id", transport.AdminAuthMiddleware(), c.delete)
}

// @Summary Get all prize lists
// @Tags wheel
// @Produce json
// @Success 200 {array} models.PrizeListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/wheel/lists [get]
func (c *WheelController) getAll(g *gin.Context) {
	lists, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("WHEEL: failed to get all prize lists: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]models.PrizeListResponse, 0, len(lists))
	for _, l := range lists {
		responses = append(responses, models.TransformPrizeListFromStorage(l))
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Get a prize list by ID
// @Tags wheel
// @Produce json
// @Param id path string true "Prize list ID"
// @Success 200 {object} models.PrizeListResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/wheel/lists/{id} [get]
func (c *WheelController) get(g *gin.Context) {
	id := g.Param("id")

	list, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrPrizeListNotFound) {
			g.JSON(http.StatusNotFound, gin.H{"error": "prize list not found"})
			return
		}
		logging.Log.Errorf("WHEEL: failed to get prize list %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	g.JSON(http.StatusOK, models.TransformPrizeListFromStorage(list))
}

// @Security AdminToken
// @Summary Create a prize list
// @Tags wheel
// @Accept json
// @Produce json
// @Param request body models.PrizeListRequest true "Prize list"
// @Success 200 {object} models.PrizeListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/wheel/lists [post]
func (c *WheelController) create(g *gin.Context) {
	var req models.PrizeListRequest
	// A wheel with fewer than 2 prizes has nothing to pick between
	if err := g.ShouldBindJSON(&req); err != nil || req.Name == "" || len(req.Prizes) < 2 {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid request, need a name and at least 2 prizes"})
		return
	}

	id, err := gonanoid.Generate(prizeListIDAlphabet, 8)
	if err != nil {
		logging.Log.Errorf("WHEEL: failed to generate prize list id: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": "could not create prize list"})
		return
	}

	list := &storage.PrizeList{
		ID:        id,
		Name:      req.Name,
		Prizes:    req.Prizes,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.storage.Put(g.Request.Context(), list); err != nil {
		logging.Log.Errorf("WHEEL: failed to store prize list: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": "could not create prize list"})
		return
	}

	logging.Log.Infof("WHEEL: created prize list %s (%q) with %d prizes", list.ID, list.Name, len(list.Prizes))
	g.JSON(http.StatusOK, models.TransformPrizeListFromStorage(list))
}

// @Security AdminToken
// @Summary Update a prize list
// @Tags wheel
// @Accept json
// @Produce json
// @Param id path string true "Prize list ID"
// @Param request body models.PrizeListRequest true "Prize list"
// @Success 200 {object} models.PrizeListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/wheel/lists/{id} [put]
func (c *WheelController) update(g *gin.Context) {
	id := g.Param("id")

	var req models.PrizeListRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Name == "" || len(req.Prizes) < 2 {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid request, need a name and at least 2 prizes"})
		return
	}

	existing, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrPrizeListNotFound) {
			g.JSON(http.StatusNotFound, gin.H{"error": "prize list not found"})
			return
		}
		logging.Log.Errorf("WHEEL: failed to load prize list %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	existing.Name = req.Name
	existing.Prizes = req.Prizes
	if err := c.storage.Put(g.Request.Context(), existing); err != nil {
		logging.Log.Errorf("WHEEL: failed to update prize list %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": "could not update prize list"})
		return
	}

	g.JSON(http.StatusOK, models.TransformPrizeListFromStorage(existing))
}

// @Security AdminToken
// @Summary Delete a prize list
// @Tags wheel
// @Produce json
// @Param id path string true "Prize list ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/wheel/lists/{id} [delete]
func (c *WheelController) delete(g *gin.Context) {
	id := g.Param("id")

	if err := c.storage.Delete(g.Request.Context(), id); err != nil {
		logging.Log.Errorf("WHEEL: failed to delete prize list %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Infof("WHEEL: deleted prize list %s", id)
	g.JSON(http.StatusOK, gin.H{"deleted": id})
}
