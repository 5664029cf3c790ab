package service

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/valyala/fastjson"

	"github.com/Cheertaboi/coupon-feed-service/internal/errx"
	"github.com/Cheertaboi/coupon-feed-service/internal/models"
)

// ParseFeedPayload validates the top-level shape of an ingestion body and
// decodes it leniently: item fields of an unexpected type are treated as
// absent instead of failing the request.
func ParseFeedPayload(body []byte) (models.FeedPayload, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return models.FeedPayload{}, errx.BadRequest("Empty request body", nil)
	}

	var p fastjson.Parser
	v, err := p.ParseBytes(body)
	if err != nil {
		return models.FeedPayload{}, errx.BadRequest("Invalid JSON: "+err.Error(), err)
	}

	items := v.Get("items")
	if v.Type() != fastjson.TypeObject || items == nil || items.Type() != fastjson.TypeArray {
		return models.FeedPayload{}, errx.BadRequest("Missing or invalid items data", nil)
	}

	arr, _ := items.Array()
	payload := models.FeedPayload{Items: make([]models.CouponItem, 0, len(arr))}
	for _, iv := range arr {
		payload.Items = append(payload.Items, decodeItem(iv))
	}

	if s, ok := scalarText(v.Get("exchangeRate")); ok {
		payload.ExchangeRate = &s
	}
	if s, ok := scalarText(v.Get("executionTime")); ok {
		payload.ExecutionTime = &s
	}
	return payload, nil
}

func decodeItem(v *fastjson.Value) models.CouponItem {
	var item models.CouponItem
	if v == nil || v.Type() != fastjson.TypeObject {
		return item
	}

	item.Coupon, _ = scalarText(v.Get("coupon"))
	item.CouponURL, _ = scalarText(v.Get("couponUrl"))
	item.OrderPrice, _ = scalarText(v.Get("orderPrice"))
	item.DiscountPrice, _ = scalarText(v.Get("discountPrice"))
	item.DiscountAmountInDollar, _ = scalarText(v.Get("discountAmountInDollar"))
	item.DiscountAmountInYen, _ = scalarText(v.Get("discountAmountInYen"))

	if s, ok := scalarText(v.Get("validPeriod")); ok {
		item.ValidPeriod = &s
	}
	if rate, ok := ratio(v.Get("discountRate")); ok {
		item.DiscountRate = &rate
	}

	if details := v.Get("validPeriodDetails"); details != nil && details.Type() == fastjson.TypeObject {
		obj, _ := details.Object()
		item.ValidPeriodDetails = make(map[string]string, obj.Len())
		obj.Visit(func(key []byte, dv *fastjson.Value) {
			if s, ok := scalarText(dv); ok {
				item.ValidPeriodDetails[string(key)] = s
			}
		})
	}
	return item
}

// scalarText renders a JSON scalar as display text. Numbers are written in
// plain decimal form, so 1e3 becomes "1000". Null, objects and arrays report
// ok=false.
func scalarText(v *fastjson.Value) (string, bool) {
	if v == nil {
		return "", false
	}
	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes()), true
	case fastjson.TypeNumber:
		lit := v.String()
		if d, err := decimal.NewFromString(lit); err == nil {
			return d.String(), true
		}
		return lit, true
	case fastjson.TypeTrue:
		return "1", true
	case fastjson.TypeFalse:
		return "", true
	default:
		return "", false
	}
}

func ratio(v *fastjson.Value) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch v.Type() {
	case fastjson.TypeNumber:
		f, err := v.Float64()
		return f, err == nil
	case fastjson.TypeString:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(v.GetStringBytes())), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
