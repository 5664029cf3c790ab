package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/Cheertaboi/coupon-feed-service/internal/models"
)

type stubRepo struct {
	snap *models.Snapshot
}

func (r stubRepo) Load(context.Context) (*models.Snapshot, error) { return r.snap, nil }

func (r stubRepo) Save(context.Context, models.FeedPayload) error { return nil }

type stubRenderer struct {
	failTable bool
}

func (s stubRenderer) RenderTable(w io.Writer, t *Table) error {
	if s.failTable {
		io.WriteString(w, "partial")
		return errors.New("template exploded")
	}
	_, err := fmt.Fprintf(w, "table:%d", len(t.Rows))
	return err
}

func (stubRenderer) RenderEmpty(w io.Writer) error {
	_, err := io.WriteString(w, "empty")
	return err
}

func TestTableServiceRender(t *testing.T) {
	withRows := &models.Snapshot{Items: []models.CouponItem{{Coupon: "A"}, {Coupon: ""}, {Coupon: "B"}}}

	cases := []struct {
		name      string
		repo      SnapshotRepo
		renderer  stubRenderer
		want      string
		wantState RenderState
	}{
		{"rows", stubRepo{snap: withRows}, stubRenderer{}, "table:2", StateTable},
		{"never stored", stubRepo{}, stubRenderer{}, "empty", StateEmpty},
		{"no items", stubRepo{snap: &models.Snapshot{Items: []models.CouponItem{}}}, stubRenderer{}, "empty", StateEmpty},
		{"store down", failingRepo{}, stubRenderer{}, "empty", StateDegraded},
		{"template failure", stubRepo{snap: withRows}, stubRenderer{failTable: true}, "empty", StateDegraded},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := NewTableService(c.repo, c.renderer)
			var sb strings.Builder
			state := svc.RenderTo(context.Background(), &sb)
			if sb.String() != c.want || state != c.wantState {
				t.Errorf("got %q/%s, want %q/%s", sb.String(), state, c.want, c.wantState)
			}
			if got := svc.Render(context.Background()); got != c.want {
				t.Errorf("Render = %q, want %q", got, c.want)
			}
		})
	}
}
