package main

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/pricer/internal/config"
	"github.com/noah-isme/pricer/internal/obs"
	"github.com/noah-isme/pricer/internal/pricing"
)

const rawBatch = `[
	{"id": "batch-1", "items": [
		{"name": "keyboard", "price": 1000, "quantity": 1},
		{"name": "cable", "price": 50, "quantity": 2}
	]},
	{"id": "batch-2", "items": [
		{"name": "mouse", "price": 80, "quantity": 1},
		{"name": "monitor", "price": 300, "quantity": 2}
	]}
]`

const rawMalformed = `[{"id": "batch-3", "items": "pending"}]`

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("component", "pricer").Logger()

	params := pricing.Params{
		DiscountThreshold: cfg.DiscountThreshold,
		DiscountRate:      cfg.DiscountRate,
		TaxRate:           cfg.TaxRate,
	}

	logger.Info().
		Float64("discount_threshold", params.DiscountThreshold).
		Float64("discount_rate", params.DiscountRate).
		Float64("tax_rate", params.TaxRate).
		Msg("pricing parameters loaded")

	summary := pricing.Compute(sampleOrders(), params)
	logSummary(logger, "typed batch priced", summary)

	runUntyped(logger, params)
}

func sampleOrders() []pricing.Order {
	return []pricing.Order{
		{ID: uuid.NewString(), Items: []pricing.Item{
			{Name: "keyboard", Price: 1000, Quantity: 1},
			{Name: "cable", Price: 50, Quantity: 2},
		}},
		{ID: uuid.NewString(), Items: []pricing.Item{
			{Name: "mouse", Price: 80, Quantity: 1},
			{Name: "monitor", Price: 300, Quantity: 2},
		}},
	}
}

func runUntyped(logger zerolog.Logger, params pricing.Params) {
	var doc any
	if err := json.Unmarshal([]byte(rawBatch), &doc); err != nil {
		logger.Error().Err(err).Msg("decode batch document")
		return
	}

	total, err := pricing.ComputeTotal(doc, params.DiscountThreshold, params.DiscountRate, params.TaxRate)
	if err != nil {
		logger.Error().Err(err).Msg("price batch document")
		return
	}
	logger.Info().Float64("total", total).Msg("untyped batch priced")

	var malformed any
	if err := json.Unmarshal([]byte(rawMalformed), &malformed); err != nil {
		logger.Error().Err(err).Msg("decode malformed document")
		return
	}
	if _, err := pricing.ComputeTotal(malformed, params.DiscountThreshold, params.DiscountRate, params.TaxRate); err != nil {
		logger.Warn().Err(err).Msg("rejected malformed batch")
	}
}

func logSummary(logger zerolog.Logger, msg string, s pricing.Summary) {
	logger.Info().
		Float64("subtotal", s.Subtotal).
		Float64("discount", s.Discount).
		Float64("tax", s.Tax).
		Float64("total", s.Total).
		Msg(msg)
}
