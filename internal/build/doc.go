// Package build runs a complete uwiki conversion.
//
// A run moves through fixed stages: scan → render_html → render_markdown →
// assemble → write. Every output is held in memory until the write stage, so
// a failure in any earlier stage leaves the output directory untouched.
package build
