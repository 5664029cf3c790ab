package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Cheertaboi/coupon-feed-service/internal/errx"
)

func TestParseFeedPayloadRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
		msg  string
	}{
		{"empty", "", "Empty request body"},
		{"whitespace", "  \n", "Empty request body"},
		{"invalid json", "{items:", ""},
		{"null", "null", "Missing or invalid items data"},
		{"array root", "[]", "Missing or invalid items data"},
		{"no items", `{"exchangeRate":"1"}`, "Missing or invalid items data"},
		{"items object", `{"items":{}}`, "Missing or invalid items data"},
		{"items string", `{"items":"a"}`, "Missing or invalid items data"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseFeedPayload([]byte(c.body))
			if !errors.Is(err, errx.ErrBadRequest) {
				t.Fatalf("expected bad request, got %v", err)
			}
			if errx.StatusOf(err) != http.StatusBadRequest {
				t.Errorf("status = %d", errx.StatusOf(err))
			}
			if c.msg != "" && errx.MessageOf(err) != c.msg {
				t.Errorf("message = %q, want %q", errx.MessageOf(err), c.msg)
			}
		})
	}
}

func TestParseFeedPayloadLenientItems(t *testing.T) {
	body := `{
		"items": [
			{"coupon":"ABC123","couponUrl":"https://example.com/a","orderPrice":4279,"discountPrice":"¥443",
			 "discountRate":0.10344,"validPeriod":"7/14(月)16時〜7/21(月)16時",
			 "validPeriodDetails":{"20250714":"×","20250713":"○","20250715":1}},
			{"coupon":12345,"discountRate":"0.2","validPeriodDetails":[1,2]},
			{"coupon":null,"discountRate":"abc","orderPrice":{"x":1}},
			"not an object",
			{"coupon":"EXP","orderPrice":1e3,"discountPrice":2.50E1}
		],
		"exchangeRate":"$1 = ¥147.5",
		"executionTime":null
	}`
	p, err := ParseFeedPayload([]byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Items) != 5 {
		t.Fatalf("items = %d, want 5", len(p.Items))
	}

	first := p.Items[0]
	if first.Coupon != "ABC123" || first.OrderPrice != "4279" || first.DiscountPrice != "¥443" {
		t.Errorf("first item decoded as %+v", first)
	}
	if first.DiscountRate == nil || *first.DiscountRate != 0.10344 {
		t.Errorf("discount rate = %v", first.DiscountRate)
	}
	if first.ValidPeriod == nil || *first.ValidPeriod != "7/14(月)16時〜7/21(月)16時" {
		t.Errorf("valid period = %v", first.ValidPeriod)
	}
	if got := first.ValidPeriodDetails["20250715"]; got != "1" {
		t.Errorf("numeric marker = %q", got)
	}
	if len(first.ValidPeriodDetails) != 3 {
		t.Errorf("details = %v", first.ValidPeriodDetails)
	}

	second := p.Items[1]
	if second.Coupon != "12345" {
		t.Errorf("numeric coupon = %q", second.Coupon)
	}
	if second.DiscountRate == nil || *second.DiscountRate != 0.2 {
		t.Errorf("string rate = %v", second.DiscountRate)
	}
	if second.ValidPeriodDetails != nil {
		t.Errorf("array details should be ignored, got %v", second.ValidPeriodDetails)
	}

	third := p.Items[2]
	if third.HasCode() || third.DiscountRate != nil || third.OrderPrice != "" {
		t.Errorf("malformed fields should be absent, got %+v", third)
	}
	if p.Items[3].HasCode() {
		t.Error("non-object item should decode empty")
	}

	if exp := p.Items[4]; exp.OrderPrice != "1000" || exp.DiscountPrice != "25" {
		t.Errorf("exponent prices = %q %q, want 1000 25", exp.OrderPrice, exp.DiscountPrice)
	}

	if p.ExchangeRate == nil || *p.ExchangeRate != "$1 = ¥147.5" {
		t.Errorf("exchange rate = %v", p.ExchangeRate)
	}
	if p.ExecutionTime != nil {
		t.Errorf("null execution time should be absent, got %q", *p.ExecutionTime)
	}
}

func TestParseFeedPayloadEmptyItems(t *testing.T) {
	p, err := ParseFeedPayload([]byte(`{"items":[]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Items == nil || len(p.Items) != 0 {
		t.Errorf("items = %#v", p.Items)
	}
	if p.ExchangeRate != nil || p.ExecutionTime != nil {
		t.Error("absent metadata must stay nil")
	}
}
