// Package domain contains the core model for skillglyph.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// embedded manifests, or the filesystem. Infra/adapters map into/from these types.
//
// The icon registry and the resolver live here because they are pure: the registry is
// built once from explicit icon sets and is read-only afterwards, so both are safe for
// concurrent use without locking.
package domain
