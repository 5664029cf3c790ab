package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/Cheertaboi/coupon-feed-service/internal/models"
)

// SnapshotRepo maps the snapshot onto three option slots.
type SnapshotRepo struct {
	store OptionStore
}

func NewSnapshotRepo(store OptionStore) *SnapshotRepo {
	return &SnapshotRepo{store: store}
}

// Load returns nil when no feed has ever been stored.
func (r *SnapshotRepo) Load(ctx context.Context) (*models.Snapshot, error) {
	vals, err := r.store.GetOptions(ctx,
		models.OptionItems,
		models.OptionExchangeRate,
		models.OptionExecutionTime,
	)
	if err != nil {
		if errors.Is(err, ErrNoSchema) {
			return nil, nil
		}
		return nil, fmt.Errorf("get options: %w", err)
	}

	raw, ok := vals[models.OptionItems]
	if !ok {
		return nil, nil
	}

	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap.Items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", models.OptionItems, err)
	}
	if snap.ExchangeRate, err = decodeString(vals, models.OptionExchangeRate); err != nil {
		return nil, err
	}
	if snap.ExecutionTime, err = decodeString(vals, models.OptionExecutionTime); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Save overwrites the items slot and only those metadata slots the payload
// carries; absent metadata keeps its stored value.
func (r *SnapshotRepo) Save(ctx context.Context, p models.FeedPayload) error {
	items := p.Items
	if items == nil {
		items = []models.CouponItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	values := map[string][]byte{models.OptionItems: b}

	if p.ExchangeRate != nil {
		if values[models.OptionExchangeRate], err = json.Marshal(*p.ExchangeRate); err != nil {
			return fmt.Errorf("encode exchange rate: %w", err)
		}
	}
	if p.ExecutionTime != nil {
		if values[models.OptionExecutionTime], err = json.Marshal(*p.ExecutionTime); err != nil {
			return fmt.Errorf("encode execution time: %w", err)
		}
	}

	if err := r.store.SetOptions(ctx, values); err != nil {
		return fmt.Errorf("set options: %w", err)
	}
	return nil
}

func decodeString(vals map[string][]byte, name string) (string, error) {
	raw, ok := vals[name]
	if !ok {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return s, nil
}
