package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AQUASTORE_JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.IsDev() {
		t.Fatalf("expected development default, got %q", cfg.App.Env)
	}
	if cfg.Store.ShippingRatePerKg != 80 {
		t.Fatalf("expected default shipping rate 80, got %v", cfg.Store.ShippingRatePerKg)
	}
	if cfg.LocalDB.Dir == "" {
		t.Fatalf("expected a default localdb dir")
	}
}

func TestLoadRejectsNegativeShippingRate(t *testing.T) {
	t.Setenv("AQUASTORE_JWT_SECRET", "test-secret")
	t.Setenv("AQUASTORE_STORE_SHIPPING_RATE_PER_KG", "-1")

	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error for negative rate")
	}
}

func TestLoadHonorsOverrides(t *testing.T) {
	t.Setenv("AQUASTORE_JWT_SECRET", "test-secret")
	t.Setenv("AQUASTORE_APP_ENV", "production")
	t.Setenv("AQUASTORE_STORE_SHIPPING_RATE_PER_KG", "120")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.IsProd() {
		t.Fatalf("expected production env")
	}
	if cfg.Store.ShippingRatePerKg != 120 {
		t.Fatalf("expected overridden rate, got %v", cfg.Store.ShippingRatePerKg)
	}
}
