// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/rand"
	"fmt"
)

// URL-safe, 64 symbols so each random byte maps to one symbol without bias.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// PollIDLength keeps share links short while staying collision-free for
// practical purposes (64^10 ids).
const PollIDLength = 10

// NewID returns n random symbols from the URL-safe alphabet.
func NewID(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random id: %w", err)
	}
	for i := range b {
		b[i] = alphabet[int(b[i])&63]
	}
	return string(b), nil
}

// NewPollID creates a fresh URL-safe poll identifier.
func NewPollID() (string, error) {
	return NewID(PollIDLength)
}
