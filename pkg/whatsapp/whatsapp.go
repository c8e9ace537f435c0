// Package whatsapp builds the outbound checkout hand-off: a plaintext order
// summary URL-encoded into a wa.me deep link. Opening that link is the
// system's only "checkout submission"; there is no server-side order API.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mvsaqua/aquastore-backend/pkg/config"
	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

const countryPrefix = "91"

// OrderLink renders the order summary message and wraps it in a wa.me URL
// for the store's WhatsApp number.
func OrderLink(cfg config.StoreConfig, order models.Order) string {
	return fmt.Sprintf(
		"https://wa.me/%s%s?text=%s",
		countryPrefix,
		cfg.WhatsAppNumber,
		url.QueryEscape(OrderMessage(cfg, order)),
	)
}

// ChatLink is the bare storefront chat entry, without a prefilled message.
func ChatLink(cfg config.StoreConfig) string {
	return fmt.Sprintf("https://wa.me/%s%s", countryPrefix, cfg.WhatsAppNumber)
}

// OrderMessage renders the plaintext summary: ID, date, line items, weight,
// totals, shipping address and the fixed payment instructions.
func OrderMessage(cfg config.StoreConfig, order models.Order) string {
	address := order.CustomerAddress
	if strings.TrimSpace(address) == "" {
		address = "No Address Provided"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s - NEW ORDER REQUEST*\n", strings.ToUpper(cfg.Name))
	b.WriteString("--------------------------------\n")
	fmt.Fprintf(&b, "*Order ID:* #%s\n", order.ID)
	fmt.Fprintf(&b, "*Date:* %s\n\n", order.Date)

	b.WriteString("*Items:*\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s (x%d) - ₹%s\n", item.Name, item.Quantity, FormatAmount(item.Price*float64(item.Quantity)))
	}

	b.WriteString("\n*Order Summary:*\n")
	fmt.Fprintf(&b, "• Total Weight: %.2f KG\n", order.TotalWeight)
	fmt.Fprintf(&b, "• Subtotal: ₹%s\n", FormatAmount(order.Subtotal))
	fmt.Fprintf(&b, "• Shipping (₹%s/KG): ₹%s\n", FormatAmount(cfg.ShippingRatePerKg), FormatAmount(order.ShippingCharge))
	fmt.Fprintf(&b, "*GRAND TOTAL: ₹%s*\n\n", FormatAmount(order.Total))

	fmt.Fprintf(&b, "*Shipping Address:*\n%s\n\n", address)
	b.WriteString("*Instructions:*\n")
	fmt.Fprintf(&b, "Please share payment screenshot for confirmation (GPay: %s).", cfg.GPayNumber)

	return b.String()
}

// FormatAmount renders a rupee amount with Indian digit grouping
// (12,34,567). Paise are shown only when present. Rounding happens in
// paise before the split so a fraction that rounds to 100 carries into
// the rupee column.
func FormatAmount(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	paise := int64(amount*100 + 0.5)
	whole := paise / 100
	frac := paise % 100

	out := groupIndian(fmt.Sprintf("%d", whole))
	if frac != 0 {
		out = fmt.Sprintf("%s.%02d", out, frac)
	}
	if negative {
		out = "-" + out
	}
	return out
}

// groupIndian inserts separators after the last three digits, then every
// two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	parts = append(parts, tail)
	return strings.Join(parts, ",")
}
