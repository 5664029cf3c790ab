package service

import (
	"context"
	"crypto/subtle"

	"github.com/Cheertaboi/coupon-feed-service/internal/errx"
	"github.com/Cheertaboi/coupon-feed-service/internal/models"
	logx "github.com/Cheertaboi/coupon-feed-service/pkg/logger"
)

// SnapshotRepo persists the current feed (use an interface to allow mocking).
type SnapshotRepo interface {
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, p models.FeedPayload) error
}

type FeedService struct {
	repo   SnapshotRepo
	apiKey string
}

func NewFeedService(repo SnapshotRepo, apiKey string) *FeedService {
	return &FeedService{repo: repo, apiKey: apiKey}
}

// Authorize checks the shared secret. An unconfigured secret rejects everything.
func (s *FeedService) Authorize(key string, present bool) error {
	if !present || s.apiKey == "" {
		return errx.Auth("Invalid API key")
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(s.apiKey)) != 1 {
		return errx.Auth("Invalid API key")
	}
	return nil
}

// Ingest parses body and replaces the stored snapshot. It returns the number
// of items received. Callers must Authorize first.
func (s *FeedService) Ingest(ctx context.Context, body []byte) (int, error) {
	payload, err := ParseFeedPayload(body)
	if err != nil {
		return 0, err
	}

	if err := s.repo.Save(ctx, payload); err != nil {
		logx.Error().Err(err).Int("items", len(payload.Items)).Msg("failed to store coupon snapshot")
		return 0, errx.WrapStore(err)
	}

	logx.Info().
		Int("items", len(payload.Items)).
		Bool("exchangeRate", payload.ExchangeRate != nil).
		Bool("executionTime", payload.ExecutionTime != nil).
		Msg("coupon snapshot updated")
	return len(payload.Items), nil
}
