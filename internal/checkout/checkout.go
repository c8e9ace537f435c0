package checkout

import (
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mvsaqua/aquastore-backend/pkg/enums"
	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

// DefaultItemWeightKg substitutes for products created before weight was
// tracked.
const DefaultItemWeightKg = 0.1

const orderIDLength = 9

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Totals is the derived money/weight breakdown for a cart.
type Totals struct {
	Subtotal       float64
	TotalWeight    float64
	ShippingCharge float64
	Tax            float64
	Total          float64
}

// ComputeTotals derives order totals from cart lines. Shipping is the
// weight rounded up to whole kilograms times the configured rate; tax is
// currently always zero. Money math runs through decimals so repeated
// float sums cannot drift.
func ComputeTotals(items []models.CartItem, ratePerKg float64) Totals {
	subtotal := decimal.Zero
	weight := decimal.Zero

	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		subtotal = subtotal.Add(decimal.NewFromFloat(item.Price).Mul(qty))

		w := item.Weight
		if w <= 0 {
			w = DefaultItemWeightKg
		}
		weight = weight.Add(decimal.NewFromFloat(w).Mul(qty))
	}

	shipping := weight.Ceil().Mul(decimal.NewFromFloat(ratePerKg))
	tax := decimal.Zero
	total := subtotal.Add(shipping).Add(tax)

	return Totals{
		Subtotal:       subtotal.InexactFloat64(),
		TotalWeight:    weight.InexactFloat64(),
		ShippingCharge: shipping.InexactFloat64(),
		Tax:            tax.InexactFloat64(),
		Total:          total.InexactFloat64(),
	}
}

// NewOrderID draws a random short code, re-drawing on collision with an
// existing order. The probability of even one collision is tiny at this
// scale, but the check is cheap and closes the hole for good.
func NewOrderID(existing []models.Order) string {
	taken := make(map[string]struct{}, len(existing))
	for _, order := range existing {
		taken[order.ID] = struct{}{}
	}

	for {
		id := randomCode(orderIDLength)
		if _, dup := taken[id]; !dup {
			return id
		}
	}
}

func randomCode(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = orderIDAlphabet[rand.IntN(len(orderIDAlphabet))]
	}
	return string(buf)
}

// OrderInput carries everything needed to snapshot a cart into an order.
type OrderInput struct {
	Cart          []models.CartItem
	Existing      []models.Order
	CustomerName  string
	CustomerEmail string
	Address       string
	RatePerKg     float64
	Now           time.Time
}

// NewOrder builds an immutable order from the cart. The item list is a
// deep copy so later cart or catalog mutations cannot reach back into it.
func NewOrder(in OrderInput) models.Order {
	items := make([]models.CartItem, len(in.Cart))
	copy(items, in.Cart)

	totals := ComputeTotals(items, in.RatePerKg)

	return models.Order{
		ID:              NewOrderID(in.Existing),
		Date:            in.Now.Format("02 Jan 2006, 3:04:05 PM"),
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerAddress: in.Address,
		Items:           items,
		Subtotal:        totals.Subtotal,
		TotalWeight:     totals.TotalWeight,
		ShippingCharge:  totals.ShippingCharge,
		Tax:             totals.Tax,
		Total:           totals.Total,
		Status:          enums.OrderStatusProcessing,
	}
}
