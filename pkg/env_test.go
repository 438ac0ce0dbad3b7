package pkg

import "testing"

func TestGetenvDefault(t *testing.T) {
	t.Setenv("LOGISTICS_TEST_VALUE", "")
	if got := GetenvDefault("LOGISTICS_TEST_VALUE", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	t.Setenv("LOGISTICS_TEST_VALUE", "set")
	if got := GetenvDefault("LOGISTICS_TEST_VALUE", "fallback"); got != "set" {
		t.Fatalf("expected set, got %q", got)
	}
}
