// Package catalog holds the static, language-keyed Git command reference.
//
// Each locale is a TOML document embedded in the binary (data/*.toml). A locale
// carries its display strings, an ordered list of categories (always starting
// with the "all" pseudo-category) and an ordered list of sections, each holding
// the documented commands.
//
// # Loading
//
// [Default] returns the embedded catalog, parsed and validated once. [Parse]
// and [Load] build a catalog from arbitrary documents, which is what tests use.
//
// # Invariants
//
// Validation rejects a catalog when:
//
//   - a command entry has an empty command, description or example
//   - two sections of one locale share an id
//   - a section id has no matching category
//   - the "all" category is missing
//
// Structural parity between locales (identical section ids) is not enforced:
// the Gujarati locale currently covers only part of the sections. [Parity]
// reports the difference so "gitref doctor" can surface it.
//
// # Lookups
//
// Unknown language codes and category ids fail with an error wrapping
// [ErrNotFound].
package catalog
