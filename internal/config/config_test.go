package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "REDIS_URL", "FORM_TTL_MINUTES", "STUDENT_COUNT",
		"ASPECT_COUNT", "ALLOWED_ORIGINS", "ROSTER_FILE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ServerPort != "8080" {
		t.Fatalf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.RedisURL != "" {
		t.Fatalf("RedisURL = %q, want empty", cfg.RedisURL)
	}
	if cfg.FormTTL != 2*time.Hour {
		t.Fatalf("FormTTL = %v, want 2h", cfg.FormTTL)
	}
	if cfg.StudentCount != 10 || cfg.AspectCount != 4 {
		t.Fatalf("counts = %d, %d, want 10, 4", cfg.StudentCount, cfg.AspectCount)
	}
	if cfg.StudentNamePrefix != "Mahasiswa" || cfg.AspectNamePrefix != "Aspek Penilaian" {
		t.Fatalf("prefixes = %q, %q", cfg.StudentNamePrefix, cfg.AspectNamePrefix)
	}
	if cfg.AllowedOrigins != nil {
		t.Fatalf("AllowedOrigins = %v, want nil", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("FORM_TTL_MINUTES", "15")
	t.Setenv("STUDENT_COUNT", "25")
	t.Setenv("ASPECT_COUNT", "bad")
	t.Setenv("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")

	cfg := Load()
	if cfg.ServerPort != "9090" {
		t.Fatalf("ServerPort = %q, want 9090", cfg.ServerPort)
	}
	if cfg.FormTTL != 15*time.Minute {
		t.Fatalf("FormTTL = %v, want 15m", cfg.FormTTL)
	}
	if cfg.StudentCount != 25 {
		t.Fatalf("StudentCount = %d, want 25", cfg.StudentCount)
	}
	if cfg.AspectCount != 4 {
		t.Fatalf("AspectCount = %d, want fallback 4", cfg.AspectCount)
	}
	if want := []string{"http://a.test", "http://b.test"}; !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Fatalf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
}

func TestCacheKey(t *testing.T) {
	if got := CacheKey.FormKey("abc"); got != "form:abc" {
		t.Fatalf("FormKey = %q", got)
	}
	if got := CacheKey.FormGradesKey("abc"); got != "form:abc:grades" {
		t.Fatalf("FormGradesKey = %q", got)
	}
}
