package pricing

import (
	"encoding/json"
	"errors"
)

// Shape validation errors for documents arriving from untyped sources.
// Callers branch with errors.Is; the message strings are part of the
// contract and must not change.
var (
	// ErrOrdersNotArray is returned when the orders document is not a sequence.
	ErrOrdersNotArray = errors.New("orders must be an array")
	// ErrRatesNotNumber is returned when the threshold or either rate is not numeric.
	ErrRatesNotNumber = errors.New("Threshold and rates must be numbers")
	// ErrItemsNotArray is returned when an order carries no items sequence.
	ErrItemsNotArray = errors.New("Each order must have an items array")
	// ErrItemNotNumber is returned when an item's price or quantity is not numeric.
	ErrItemNotNumber = errors.New("Item price and quantity must be numbers")
)

// ComputeTotal validates an untyped pricing request and returns the final
// rounded total. It is the dynamic counterpart of Total for callers holding
// data straight out of json.Unmarshal: orders must be a sequence of orders,
// each with an items sequence of numeric price/quantity pairs, and the
// threshold and both rates must be numeric. Validation aborts on the first
// failing rule; there is no partial result.
func ComputeTotal(orders, discountThreshold, discountRate, taxRate any) (float64, error) {
	seq, ok := toSequence(orders)
	if !ok {
		return 0, ErrOrdersNotArray
	}
	params, err := DecodeParams(discountThreshold, discountRate, taxRate)
	if err != nil {
		return 0, err
	}
	decoded, err := decodeOrderSeq(seq)
	if err != nil {
		return 0, err
	}
	return Total(decoded, params), nil
}

// DecodeOrders validates an untyped document into orders usable by Compute.
func DecodeOrders(v any) ([]Order, error) {
	seq, ok := toSequence(v)
	if !ok {
		return nil, ErrOrdersNotArray
	}
	return decodeOrderSeq(seq)
}

// DecodeParams validates the threshold and rate inputs.
func DecodeParams(discountThreshold, discountRate, taxRate any) (Params, error) {
	threshold, ok := toNumber(discountThreshold)
	if !ok {
		return Params{}, ErrRatesNotNumber
	}
	rate, ok := toNumber(discountRate)
	if !ok {
		return Params{}, ErrRatesNotNumber
	}
	tax, ok := toNumber(taxRate)
	if !ok {
		return Params{}, ErrRatesNotNumber
	}
	return Params{DiscountThreshold: threshold, DiscountRate: rate, TaxRate: tax}, nil
}

func decodeOrderSeq(seq []any) ([]Order, error) {
	orders := make([]Order, 0, len(seq))
	for _, raw := range seq {
		order, err := decodeOrder(raw)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func decodeOrder(v any) (Order, error) {
	obj, _ := v.(map[string]any)
	items, ok := toSequence(obj["items"])
	if !ok {
		return Order{}, ErrItemsNotArray
	}
	order := Order{Items: make([]Item, 0, len(items))}
	if id, ok := obj["id"].(string); ok {
		order.ID = id
	}
	for _, raw := range items {
		item, err := decodeItem(raw)
		if err != nil {
			return Order{}, err
		}
		order.Items = append(order.Items, item)
	}
	return order, nil
}

func decodeItem(v any) (Item, error) {
	obj, _ := v.(map[string]any)
	price, priceOK := toNumber(obj["price"])
	qty, qtyOK := toNumber(obj["quantity"])
	if !priceOK || !qtyOK {
		return Item{}, ErrItemNotNumber
	}
	item := Item{Price: price, Quantity: qty}
	if name, ok := obj["name"].(string); ok {
		item.Name = name
	}
	return item, nil
}

func toSequence(v any) ([]any, bool) {
	seq, ok := v.([]any)
	return seq, ok
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
