// Package core defines the Token data model shared by every lexlath package,
// and provides in-memory backing stores for the two collaborator contracts of
// chain generation: candidate lookup (TokenGraph) and pairwise frequency
// lookup (FreqTable).
//
// This file declares Token, Sentinel, canonicalization, and sentinel errors.
//
// Errors:
//
//	ErrEmptyToken       - a real (non-Sentinel) token was required but empty.
//	ErrNoRuleCandidates - AddRule was called with an empty candidate list.
//	ErrNegativeCount    - a negative co-occurrence count was supplied.
package core

import (
	"errors"
	"strings"
)

// Sentinel errors for core store operations.
var (
	// ErrEmptyToken indicates that a display token was empty where a real
	// token is required; the empty string is reserved for Sentinel.
	ErrEmptyToken = errors.New("core: token is empty")

	// ErrNoRuleCandidates indicates AddRule was called without candidates.
	// Every registered token must offer at least one continuation.
	ErrNoRuleCandidates = errors.New("core: rule has no candidates")

	// ErrNegativeCount indicates a negative frequency count was supplied.
	ErrNegativeCount = errors.New("core: negative frequency count")
)

// Token is a case-sensitive display string, or the distinguished Sentinel.
type Token string

// Sentinel is the terminal token signaling end-of-sequence. It may appear
// among rule candidates, it stops generation when selected, and it is never
// part of rendered output.
const Sentinel Token = ""

// IsSentinel reports whether t is the terminal Sentinel token.
func (t Token) IsSentinel() bool { return t == Sentinel }

// Canonical returns the lower-cased form of t used for store lookups.
// Canonicalization applies only when matching against TokenGraph rules and
// FreqTable counts; tokens stored in chains and rendered output keep their
// original casing.
func (t Token) Canonical() Token { return Token(strings.ToLower(string(t))) }
