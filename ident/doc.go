// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates random identifiers.

Poll ids are 10 symbols from a 64-symbol URL-safe alphabet (A-Z, a-z, 0-9,
"-", "_"), short enough for share links and collision-free for practical
purposes:

	pollID, err := ident.NewPollID()

Option ids use the same alphabet at a different length:

	optionID, err := ident.NewID(12)

Voter ids are NOT generated here: a voter id is an opaque token the client
generates and persists for itself. The server never verifies it; the ballot
table's uniqueness constraint is the only enforcement point.
*/
package ident
