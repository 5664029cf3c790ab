package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Cheertaboi/coupon-feed-service/internal/feed"
	logx "github.com/Cheertaboi/coupon-feed-service/pkg/logger"
)

// go run ./cmd/coupon-feed -csv=coupons.csv -endpoint=https://example.com/
// go run ./cmd/coupon-feed -csv=coupons.csv -dry-run
func main() {
	csvPath := flag.String("csv", "coupons.csv", "CSV export of the Coupons sheet")
	endpoint := flag.String("endpoint", "http://localhost:8080/", "ingestion URL")
	dryRun := flag.Bool("dry-run", false, "parse the sheet and log the payload without pushing")
	flag.Parse()

	_ = godotenv.Load()
	logx.Init()

	f, err := os.Open(*csvPath)
	if err != nil {
		logx.Fatal().Err(err).Str("csv", *csvPath).Msg("failed to open sheet export")
	}
	defer f.Close()

	payload, err := feed.ReadSheet(f, time.Now())
	if errors.Is(err, feed.ErrNoRows) {
		logx.Info().Str("csv", *csvPath).Msg("no coupon rows, nothing to push")
		return
	}
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to read sheet export")
	}

	if *dryRun {
		logx.Info().Int("items", len(payload.Items)).Interface("payload", payload).Msg("dry run")
		return
	}

	client := feed.NewClient(*endpoint, os.Getenv("COUPON_API_KEY"))
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	ack, err := client.Push(ctx, payload)
	if err != nil {
		logx.Fatal().Err(err).Msg("API Error")
	}
	logx.Info().Int("items", len(payload.Items)).Str("message", ack.Message).Msg("coupon feed pushed")
}
