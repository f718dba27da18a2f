// Package git reads revision information from the repository that contains
// the converted source tree. It never modifies the repository.
package git
