// Package domain contains the core model for profilegen.
//
// The domain does not depend on YAML parsing, terminals or the filesystem.
// Infra adapters map into and out of these types.
package domain
