// Package distill extracts the primary readable content from HTML pages.
// It parses arbitrary, possibly malformed HTML into a DOM, scores candidate
// blocks to find the main article, strips boilerplate, and serializes the
// result as JSON. A C-shared build (cmd/libdistill) exposes the pipeline to
// non-Go hosts through a two-function FFI surface with explicit buffer
// ownership.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., readability/, sqlite/, arena/).
package distill
