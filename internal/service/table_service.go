package service

import (
	"bytes"
	"context"
	"io"

	"github.com/Cheertaboi/coupon-feed-service/internal/models"
	logx "github.com/Cheertaboi/coupon-feed-service/pkg/logger"
)

// TableRenderer turns a derived table into an HTML fragment.
type TableRenderer interface {
	RenderTable(w io.Writer, t *Table) error
	RenderEmpty(w io.Writer) error
}

// RenderState tells which fragment a render produced.
type RenderState string

const (
	StateTable RenderState = "table"
	StateEmpty RenderState = "empty"
	// StateDegraded means a storage or template failure fell back to the empty state.
	StateDegraded RenderState = "degraded"
)

type TableService struct {
	repo     SnapshotRepo
	renderer TableRenderer
}

func NewTableService(repo SnapshotRepo, renderer TableRenderer) *TableService {
	return &TableService{repo: repo, renderer: renderer}
}

// Render is the content hook for page templates: it always returns a
// fragment ready for embedding.
func (s *TableService) Render(ctx context.Context) string {
	var buf bytes.Buffer
	s.RenderTo(ctx, &buf)
	return buf.String()
}

// RenderTo writes the coupon table, or the empty state, to w. It never fails;
// write errors on w are the caller's concern.
func (s *TableService) RenderTo(ctx context.Context, w io.Writer) RenderState {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		logx.Error().Err(err).Msg("failed to load coupon snapshot")
		return s.empty(w, StateDegraded)
	}
	return s.renderSnapshot(w, snap)
}

func (s *TableService) renderSnapshot(w io.Writer, snap *models.Snapshot) RenderState {
	table, anomalies := BuildTable(snap)
	for _, a := range anomalies {
		logx.Warn().Err(a).Msg("coupon data anomaly")
	}
	if table == nil {
		return s.empty(w, StateEmpty)
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderTable(&buf, table); err != nil {
		logx.Error().Err(err).Int("rows", len(table.Rows)).Msg("failed to render coupon table")
		return s.empty(w, StateDegraded)
	}
	_, _ = buf.WriteTo(w)
	return StateTable
}

func (s *TableService) empty(w io.Writer, state RenderState) RenderState {
	if err := s.renderer.RenderEmpty(w); err != nil {
		logx.Error().Err(err).Msg("failed to render empty state")
	}
	return state
}
