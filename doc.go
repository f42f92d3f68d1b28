// Package lexlath is your in-memory playground for heuristic-guided greedy
// chain generation over token graphs — from frequency-weighted n-gram
// selection to arbitrary caller-supplied heuristics.
//
// 🚀 What is lexlath?
//
//	A small, deterministic, zero-dependency engine that brings together:
//		• Core primitives: tokens, the terminal Sentinel, in-memory rule graphs
//		• Frequency tables: pairwise co-occurrence counts with catch-all defaults
//		• Heuristics: Zero, Frequency, LongestWord, ShortestWord, chain-length
//		  strategies, and weighted composition
//		• The generator: greedy arg-max selection with a first-wins tie-break
//
// ✨ Why choose lexlath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Fully deterministic – fixed inputs always produce the identical sentence
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – any func(prefix, candidate) float64 is a heuristic
//
// Under the hood, everything is organized under three subpackages:
//
//	core/      — Token, Sentinel, TokenGraph rule store & FreqTable counts
//	heuristic/ — scoring strategies ranking candidate continuations
//	chain/     — the greedy selection state machine & sentence rendering
//
// Quick ASCII example:
//
//	    There ──▶ is ────▶ no ──▶ cow ──▶ level ──▶ ∎
//	        └──▶ isn't ──▶ a ──▶ dog
//
//	each arrow is a rule candidate; ∎ is the Sentinel that ends the chain.
//
// The same engine recovers classic frequency-weighted chain generation
// (score = co-occurrence count of the last token and the candidate) and
// arbitrary heuristic search (score = anything you can compute from the
// prefix and the candidate) as two instantiations of one selection loop.
//
//	go get github.com/lexlath/lexlath
package lexlath
