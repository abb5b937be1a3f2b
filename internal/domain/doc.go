// Package domain contains the core worksheet model for mathsheets.
//
// The domain is rendering- and persistence-agnostic: it does not depend on HTML,
// YAML parsing, or the filesystem. Infra/adapters map into/from these types.
package domain
