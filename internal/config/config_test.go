package config

import "testing"

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("DAYLUX_TEST_FLOAT", "450.5")
	if got := getEnvFloat("DAYLUX_TEST_FLOAT", 300); got != 450.5 {
		t.Errorf("getEnvFloat() = %v, want 450.5", got)
	}
	if got := getEnvFloat("DAYLUX_TEST_UNSET", 300); got != 300 {
		t.Errorf("getEnvFloat() fallback = %v, want 300", got)
	}

	t.Setenv("DAYLUX_TEST_FLOAT", "not-a-number")
	if got := getEnvFloat("DAYLUX_TEST_FLOAT", 300); got != 300 {
		t.Errorf("getEnvFloat() on garbage = %v, want fallback 300", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("DAYLUX_TEST_INT", "8")
	if got := getEnvInt("DAYLUX_TEST_INT", 0); got != 8 {
		t.Errorf("getEnvInt() = %v, want 8", got)
	}
	if got := getEnvInt("DAYLUX_TEST_UNSET", 4); got != 4 {
		t.Errorf("getEnvInt() fallback = %v, want 4", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("DAYLUX_TEST_BOOL", "true")
	if !getEnvBool("DAYLUX_TEST_BOOL", false) {
		t.Error("getEnvBool() = false, want true")
	}
	t.Setenv("DAYLUX_TEST_BOOL", "garbage")
	if getEnvBool("DAYLUX_TEST_BOOL", false) {
		t.Error("getEnvBool() on garbage = true, want fallback false")
	}
}
