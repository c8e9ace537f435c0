package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvsaqua/aquastore-backend/pkg/config"
	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

func storeConfig() config.StoreConfig {
	return config.StoreConfig{
		Name:              "MVS Aqua",
		WhatsAppNumber:    "9490255775",
		GPayNumber:        "9490255775",
		ShippingRatePerKg: 80,
	}
}

func sampleOrder() models.Order {
	return models.Order{
		ID:              "A1B2C3D4E",
		Date:            "01 Jun 2025, 10:30:00 AM",
		CustomerAddress: "12 Canal Road, Tirupati",
		Items: []models.CartItem{
			{Product: models.Product{Name: "Neon Tetra (XL)", Price: 40}, Quantity: 2},
			{Product: models.Product{Name: "ADA Amazonia Ver. 2 (9L)", Price: 3800}, Quantity: 1},
		},
		Subtotal:       3880,
		TotalWeight:    9.1,
		ShippingCharge: 800,
		Total:          4680,
	}
}

func TestOrderMessageContainsEverySection(t *testing.T) {
	msg := OrderMessage(storeConfig(), sampleOrder())

	for _, want := range []string{
		"*MVS AQUA - NEW ORDER REQUEST*",
		"*Order ID:* #A1B2C3D4E",
		"• Neon Tetra (XL) (x2) - ₹80",
		"• ADA Amazonia Ver. 2 (9L) (x1) - ₹3,800",
		"• Total Weight: 9.10 KG",
		"• Subtotal: ₹3,880",
		"• Shipping (₹80/KG): ₹800",
		"*GRAND TOTAL: ₹4,680*",
		"12 Canal Road, Tirupati",
		"GPay: 9490255775",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestOrderMessageDefaultsMissingAddress(t *testing.T) {
	order := sampleOrder()
	order.CustomerAddress = "  "

	msg := OrderMessage(storeConfig(), order)
	if !strings.Contains(msg, "No Address Provided") {
		t.Fatalf("expected address placeholder:\n%s", msg)
	}
}

func TestOrderLinkEncodesMessage(t *testing.T) {
	link := OrderLink(storeConfig(), sampleOrder())

	if !strings.HasPrefix(link, "https://wa.me/919490255775?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link must be a valid URL: %v", err)
	}
	text := parsed.Query().Get("text")
	if !strings.Contains(text, "GRAND TOTAL") {
		t.Fatalf("decoded text missing summary: %s", text)
	}
}

func TestFormatAmountIndianGrouping(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{40, "40"},
		{800, "800"},
		{3880, "3,880"},
		{14500, "14,500"},
		{123456, "1,23,456"},
		{1234567, "12,34,567"},
		{1499.5, "1,499.50"},
		// Paise rounding to 100 must carry into the rupee column.
		{1.995, "2"},
		{1.999, "2"},
		{999.999, "1,000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatAmount(tc.in), "FormatAmount(%v)", tc.in)
	}
}
