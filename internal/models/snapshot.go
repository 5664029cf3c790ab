package models

// Option slot names for the persisted snapshot.
const (
	OptionItems         = "coupon_data"
	OptionExchangeRate  = "coupon_exchange_rate"
	OptionExecutionTime = "coupon_execution_time"
)

// Snapshot is the current coupon feed as last pushed by the producer.
type Snapshot struct {
	Items         []CouponItem `json:"items"`
	ExchangeRate  string       `json:"exchangeRate,omitempty"`
	ExecutionTime string       `json:"executionTime,omitempty"`
}

// Empty reports whether there is nothing to render.
func (s *Snapshot) Empty() bool {
	return s == nil || len(s.Items) == 0
}

// FeedPayload is the body accepted by the ingestion endpoint. Nil pointers
// mean the field was absent and the stored value must be kept.
type FeedPayload struct {
	Items         []CouponItem `json:"items"`
	ExchangeRate  *string      `json:"exchangeRate,omitempty"`
	ExecutionTime *string      `json:"executionTime,omitempty"`
}

// FeedResponse is the acknowledgment written for every ingestion call.
type FeedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
