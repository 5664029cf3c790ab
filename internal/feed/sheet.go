// Package feed builds the coupon payload from a CSV export of the "Coupons"
// sheet and pushes it to the ingestion endpoint.
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Cheertaboi/coupon-feed-service/internal/models"
)

// Sheet layout (0-based columns).
const (
	firstDataRow    = 6 // 1-based, rows above are headers
	exchangeRateRow = 2 // 1-based, cell E2
	exchangeRateCol = 4

	colDollarText = 3 // D
	colRate       = 4 // E
	colYenText    = 5 // F
	colCode       = 6 // G
	colValidity   = 7 // H
	colFirstDay   = 8 // I
	colLastDay    = 39
	colLinkURL    = 40 // AO, optional
)

// ErrNoRows means the sheet has no data rows; nothing should be pushed.
var ErrNoRows = errors.New("sheet has no coupon rows")

// ReadSheet parses the CSV export. Per-day markers in columns I..AN map to
// date keys starting at today.
func ReadSheet(r io.Reader, now time.Time) (models.FeedPayload, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return models.FeedPayload{}, fmt.Errorf("read csv: %w", err)
	}
	if len(records) < firstDataRow {
		return models.FeedPayload{}, ErrNoRows
	}

	rate := cell(records[exchangeRateRow-1], exchangeRateCol)
	execTime := ExecutionTime(now)
	payload := models.FeedPayload{
		ExchangeRate:  &rate,
		ExecutionTime: &execTime,
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, row := range records[firstDataRow-1:] {
		payload.Items = append(payload.Items, rowToItem(row, today))
	}
	return payload, nil
}

func rowToItem(row []string, today time.Time) models.CouponItem {
	yenText := cell(row, colYenText)
	orderPrice, discountPrice := ParseYenText(yenText)

	item := models.CouponItem{
		Coupon:                 cell(row, colCode),
		CouponURL:              cell(row, colLinkURL),
		OrderPrice:             strconv.Itoa(orderPrice),
		DiscountPrice:          strconv.Itoa(discountPrice),
		DiscountAmountInDollar: cell(row, colDollarText),
		DiscountAmountInYen:    yenText,
		ValidPeriodDetails:     map[string]string{},
	}
	// an empty validity cell is still sent and renders as a blank cell
	validity := cell(row, colValidity)
	item.ValidPeriod = &validity
	if rate, ok := ParseRate(cell(row, colRate)); ok {
		item.DiscountRate = &rate
	}
	for col := colFirstDay; col <= colLastDay; col++ {
		if v := cell(row, col); v != "" {
			item.ValidPeriodDetails[DateKey(today, col-colFirstDay)] = v
		}
	}
	return item
}

func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
