// SPDX-License-Identifier: MPL-2.0

// Package settings implements the tiered settings resolution used by the
// launcher: built-in defaults, a resource file, the process environment, and
// command-line arguments are merged into a single immutable session, with
// per-key provenance recording which tier supplied each final value.
//
// Precedence is data-driven. A Policy declares, per key, which tiers apply
// and in what order; keys are free to skip tiers entirely (argument-only
// keys, keys that never consult the resource file, and so on). The default
// tier is always the floor: a key that no tier supplies resolves to its
// declared default, which may be empty.
//
// Resolution happens in two passes. The first pass merges literal tier
// values per the policy. The second pass expands ${NAME} references between
// settings against the *resolved* values, so a path template that embeds
// another setting always sees that setting's final value regardless of which
// tiers the two values came from. Unknown references and reference cycles
// are preserved literally and reported as warnings on the session.
//
// The resolver performs no I/O and never mutates process state; callers
// snapshot the environment and read resource files up front, and export
// resolved values after resolution completes.
package settings
