// Package types defines the storefront entity types, the closed table
// identifier set with per-table column schemas, the patch-list write format,
// the Config object, and the standard errors shared by the store, the domain
// services, and the CLI.
package types
