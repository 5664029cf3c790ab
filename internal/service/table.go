package service

import (
	"slices"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/coupon-feed-service/internal/models"
	"github.com/Cheertaboi/coupon-feed-service/pkg/money"
)

// TodayLabel replaces the earliest date column header.
const TodayLabel = "本日"

// Row is one display row derived from a coupon item.
type Row struct {
	Item     models.CouponItem
	Discount DiscountDisplay
	// DateCells holds the item's own markers ordered by sorted date key.
	DateCells []string
	// ValidPeriod is the mobile validity summary, UnsetMarker when absent.
	ValidPeriod string
}

// Table is everything the renderer needs for a non-empty snapshot.
type Table struct {
	Banner      string
	DateHeaders []string
	Rows        []Row
}

// FilterRows drops items without a coupon code, keeping order.
func FilterRows(items []models.CouponItem) []models.CouponItem {
	out := make([]models.CouponItem, 0, len(items))
	for _, it := range items {
		if it.HasCode() {
			out = append(out, it)
		}
	}
	return out
}

// SortRows orders items by numeric order price, then numeric discount price.
// Rows equal on both keys keep their relative order.
func SortRows(items []models.CouponItem) {
	type keyed struct {
		order, discount decimal.Decimal
		item            models.CouponItem
	}
	ks := make([]keyed, len(items))
	for i, it := range items {
		ks[i] = keyed{
			order:    money.ParseAmount(it.OrderPrice),
			discount: money.ParseAmount(it.DiscountPrice),
			item:     it,
		}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		if c := a.order.Cmp(b.order); c != 0 {
			return c
		}
		return a.discount.Cmp(b.discount)
	})
	for i := range ks {
		items[i] = ks[i].item
	}
}

// SortedDateKeys returns the item's validity keys in chronological order.
func SortedDateKeys(item models.CouponItem) []string {
	keys := make([]string, 0, len(item.ValidPeriodDetails))
	for k := range item.ValidPeriodDetails {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DeriveColumnsFromFirstItem takes the date columns from the first row only.
// Rows whose key sets differ from the first one are not realigned, so their
// cells can drift from the headers.
func DeriveColumnsFromFirstItem(items []models.CouponItem) []string {
	if len(items) == 0 {
		return nil
	}
	return SortedDateKeys(items[0])
}

// DateHeaderLabels turns sorted YYYYMMDD keys into column headers.
func DateHeaderLabels(keys []string) []string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if i == 0 {
			labels[i] = TodayLabel
			continue
		}
		labels[i] = monthDay(k)
	}
	return labels
}

func monthDay(key string) string {
	if len(key) != 8 {
		return key
	}
	month, err1 := strconv.Atoi(key[4:6])
	day, err2 := strconv.Atoi(key[6:8])
	if err1 != nil || err2 != nil {
		return key
	}
	return strconv.Itoa(month) + "/" + strconv.Itoa(day)
}

// ExchangeBanner composes the line shown above the table.
func ExchangeBanner(rate, executionTime string) string {
	switch {
	case rate != "" && executionTime != "":
		return "(" + rate + " 【" + executionTime + " 更新】)"
	case rate != "":
		return "(" + rate + ")"
	default:
		return ""
	}
}

// BuildTable derives the display table from a snapshot. It returns nil when
// there is nothing to show, along with any data anomalies met on the way.
func BuildTable(snap *models.Snapshot) (*Table, []error) {
	if snap.Empty() {
		return nil, nil
	}
	items := FilterRows(snap.Items)
	if len(items) == 0 {
		return nil, nil
	}
	SortRows(items)

	var anomalies []error
	t := &Table{
		Banner:      ExchangeBanner(snap.ExchangeRate, snap.ExecutionTime),
		DateHeaders: DateHeaderLabels(DeriveColumnsFromFirstItem(items)),
		Rows:        make([]Row, 0, len(items)),
	}
	for _, it := range items {
		disc, err := deriveDiscount(it)
		if err != nil {
			anomalies = append(anomalies, err)
		}

		keys := SortedDateKeys(it)
		cells := make([]string, len(keys))
		for i, k := range keys {
			cells[i] = it.ValidPeriodDetails[k]
		}

		validPeriod := UnsetMarker
		if it.ValidPeriod != nil {
			validPeriod = *it.ValidPeriod
		}

		t.Rows = append(t.Rows, Row{
			Item:        it,
			Discount:    disc,
			DateCells:   cells,
			ValidPeriod: validPeriod,
		})
	}
	return t, anomalies
}
