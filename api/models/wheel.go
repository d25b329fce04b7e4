package models

import (
	"time"

	"github.com/alex-pricope/live-event-voting/storage"
)

type PrizeListRequest struct {
	Name   string   `json:"name"`
	Prizes []string `json:"prizes"`
}

type PrizeListResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Prizes    []string  `json:"prizes"`
	CreatedAt time.Time `json:"createdAt"`
}

func TransformPrizeListFromStorage(list *storage.PrizeList) PrizeListResponse {
	return PrizeListResponse{
		ID:        list.ID,
		Name:      list.Name,
		Prizes:    list.Prizes,
		CreatedAt: list.CreatedAt,
	}
}
