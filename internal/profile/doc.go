// Package profile provides the participant profile snapshot types.
//
// This package contains type definitions only. All other internal packages
// import profile; profile imports nothing internal. This keeps the data
// model the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Snapshots are read-only: entities are created and owned entirely by
//     the upstream data supplier. Nothing in this module mutates them.
//   - All JSON and YAML tags use snake_case, matching the upstream API.
//   - Dates are ISO strings ("2006-01-02" or RFC 3339), never time.Time.
//     Validation is the upstream boundary's job; derivation code treats
//     date strings as opaque until it needs calendar arithmetic.
//   - Optional scalar fields are plain zero-value strings/numbers, not
//     pointers. An empty expiry_date means "never expires", not "expired".
package profile
