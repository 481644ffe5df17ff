// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"path/filepath"
	"testing"
)

func TestOpenRejectsUnknownType(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestCreateSchemaIsIdempotent(t *testing.T) {
	conn, err := Open("sqlite", "file:"+filepath.Join(t.TempDir(), "schema_test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("First CreateSchema failed: %v", err)
	}
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}

	// All three tables exist and are queryable
	for _, table := range []string{"poll", "poll_option", "ballot"} {
		if _, err := conn.Exec("SELECT * FROM " + table + " LIMIT 1"); err != nil {
			t.Errorf("Table %s not usable: %v", table, err)
		}
	}
}

func TestSchemaEnforcesBallotUniqueness(t *testing.T) {
	conn, err := Open("sqlite", "file:"+filepath.Join(t.TempDir(), "unique_test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	insert := `INSERT INTO ballot (poll_id, voter_id, ip) VALUES ($1, $2, $3)`
	if _, err := conn.Exec(insert, "p1", "v1", "1.2.3.4"); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}
	if _, err := conn.Exec(insert, "p1", "v1", "5.6.7.8"); err == nil {
		t.Error("Expected unique violation on duplicate (poll_id, voter_id)")
	}
	// Same voter, different poll is allowed
	if _, err := conn.Exec(insert, "p2", "v1", "1.2.3.4"); err != nil {
		t.Errorf("Insert on second poll failed: %v", err)
	}
}
