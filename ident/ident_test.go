// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"strings"
	"testing"
)

func TestNewPollIDLength(t *testing.T) {
	id, err := NewPollID()
	if err != nil {
		t.Fatalf("NewPollID failed: %v", err)
	}
	if len(id) != PollIDLength {
		t.Errorf("Expected id of length %d, got %d (%q)", PollIDLength, len(id), id)
	}
}

func TestNewIDAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		id, err := NewID(32)
		if err != nil {
			t.Fatalf("NewID failed: %v", err)
		}
		for _, c := range id {
			if !strings.ContainsRune(alphabet, c) {
				t.Fatalf("id %q contains %q outside the alphabet", id, c)
			}
		}
	}
}

func TestNewIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := NewPollID()
		if err != nil {
			t.Fatalf("NewPollID failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}
