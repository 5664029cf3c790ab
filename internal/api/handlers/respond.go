package handlers

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/Cheertaboi/coupon-feed-service/internal/errx"
	"github.com/Cheertaboi/coupon-feed-service/internal/models"
)

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeFeedError(w http.ResponseWriter, err error) {
	writeJSON(w, errx.StatusOf(err), models.FeedResponse{
		Success: false,
		Message: errx.MessageOf(err),
	})
}
