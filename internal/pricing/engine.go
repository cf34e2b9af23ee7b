package pricing

import "math"

// Item describes a line used for pricing calculation. Name is informational
// and never inspected.
type Item struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// Order groups the lines priced together under one opaque identifier.
type Order struct {
	ID    string `json:"id"`
	Items []Item `json:"items"`
}

// Params carries the discount and tax inputs for a pricing run.
// Rates are fractions: 0.1 means 10%.
type Params struct {
	DiscountThreshold float64 `json:"discountThreshold"`
	DiscountRate      float64 `json:"discountRate"`
	TaxRate           float64 `json:"taxRate"`
}

// Summary aggregates computed pricing components. Only Total is rounded;
// the intermediate components are reported as computed.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Compute calculates order totals given the provided inputs. The threshold
// comparison is inclusive: a subtotal exactly at the threshold earns the
// discount. Negative prices and quantities pass through unchanged, so refund
// lines reduce the subtotal. Inputs are never mutated.
func Compute(orders []Order, p Params) Summary {
	var subtotal float64
	for _, o := range orders {
		for _, it := range o.Items {
			subtotal += it.Price * it.Quantity
		}
	}
	var discount float64
	if subtotal >= p.DiscountThreshold {
		discount = subtotal * p.DiscountRate
	}
	discounted := subtotal - discount
	tax := discounted * p.TaxRate
	return Summary{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    round2(discounted + tax),
	}
}

// Total returns only the final rounded amount.
func Total(orders []Order, p Params) float64 {
	return Compute(orders, p).Total
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
