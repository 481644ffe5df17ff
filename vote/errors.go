// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package vote

import "errors"

// Sentinel errors for the client-facing failure modes. Anything else
// reaching the caller is a storage fault and maps to a 5xx. Validation
// failures wrap ErrValidation with the specific complaint.
var (
	ErrValidation   = errors.New("invalid input")
	ErrAlreadyVoted = errors.New("you have already voted on this poll")
	ErrNotFound     = errors.New("poll or option not found")
)
