// Package doctor provides diagnostics for gitref's catalog and environment.
//
// The doctor package detects:
//
//   - Catalog issues: locale documents that fail to parse or violate the
//     catalog invariants (missing "all" category, duplicate sections,
//     sections without a category, incomplete command entries).
//
//   - Parity gaps: sections present in the reference language but missing
//     from a translation, or the other way round. These are warnings; the
//     browser shows an empty result for a category without a section.
//
//   - Config issues: an unreadable or invalid config file, or a configured
//     language the catalog does not provide.
//
//   - Clipboard: no clipboard utility available, so copying cannot work.
//
// # Usage
//
//	report := doctor.Check(doctor.Input{Catalog: cat, Config: cfg})
//	err := doctor.Run(ctx, input)  // check and print
package doctor
