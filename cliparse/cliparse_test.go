package cliparse

import "testing"

func TestDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("ALLOWED_ORIGIN", "")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("Expected default database type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "file:livepoll.db" {
		t.Errorf("Expected default sqlite URL, got %q", cfg.DatabaseURL)
	}
	if cfg.AllowedOrigin != "*" {
		t.Errorf("Expected default origin *, got %q", cfg.AllowedOrigin)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "sqlite")
	t.Setenv("DATABASE_URL", "file:env.db")

	cfg, err := ParseFlags([]string{"-p", "3000", "-d", "file:flag.db"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("Expected flag port 3000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:flag.db" {
		t.Errorf("Expected flag database URL, got %q", cfg.DatabaseURL)
	}
}

func TestPostgresRequiresURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := ParseFlags([]string{"-t", "postgres"})
	if err == nil {
		t.Error("Expected error when postgres is selected without a database URL")
	}
}

func TestInvalidDatabaseType(t *testing.T) {
	_, err := ParseFlags([]string{"-t", "oracle"})
	if err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestInvalidPortEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	_, err := ParseFlags(nil)
	if err == nil {
		t.Error("Expected error for invalid PORT env variable")
	}
}
