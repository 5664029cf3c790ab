package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/Cheertaboi/coupon-feed-service/internal/errx"
	"github.com/Cheertaboi/coupon-feed-service/internal/models"
	"github.com/Cheertaboi/coupon-feed-service/internal/observability"
	"github.com/Cheertaboi/coupon-feed-service/internal/service"
	logx "github.com/Cheertaboi/coupon-feed-service/pkg/logger"
)

// MaxFeedBytes bounds the ingestion body.
const MaxFeedBytes = 8 << 20

type FeedHandler struct {
	service  *service.FeedService
	metrics  *observability.Metrics
	keyParam string
}

func NewFeedHandler(svc *service.FeedService, metrics *observability.Metrics, keyParam string) *FeedHandler {
	return &FeedHandler{service: svc, metrics: metrics, keyParam: keyParam}
}

// Ingest handles the producer push. The credential is checked before the
// body is read.
func (h *FeedHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	keys, present := r.URL.Query()[h.keyParam]
	key := ""
	if present && len(keys) > 0 {
		key = keys[0]
	}
	if err := h.service.Authorize(key, present); err != nil {
		logx.Warn().Str("remote", r.RemoteAddr).Msg("rejected coupon feed: bad api key")
		h.count("forbidden")
		writeFeedError(w, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxFeedBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		msg := "Unable to read request body"
		if errors.As(err, &tooLarge) {
			msg = "Request body too large"
		}
		h.count("bad_request")
		writeFeedError(w, errx.BadRequest(msg, err))
		return
	}

	n, err := h.service.Ingest(r.Context(), body)
	if err != nil {
		if errx.StatusOf(err) == http.StatusBadRequest {
			logx.Warn().Err(err).Msg("rejected coupon feed: bad payload")
			h.count("bad_request")
		} else {
			h.count("error")
		}
		writeFeedError(w, err)
		return
	}

	h.count("ok")
	h.metrics.SnapshotItems.Set(float64(n))
	writeJSON(w, http.StatusOK, models.FeedResponse{Success: true, Message: "Data updated successfully"})
}

func (h *FeedHandler) count(result string) {
	h.metrics.IngestTotal.WithLabelValues(result).Inc()
}
