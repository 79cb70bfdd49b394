// Package writers turns analysis results into serialized outputs.
//
// Writers own all presentation knowledge (report layout, JSON shapes);
// the core packages stay domain-only. JSON goes through pkg/api (v1)
// for a stable wire format.
package writers
