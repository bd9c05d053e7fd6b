// Package magetasks holds the build, test and lint tasks behind the
// Magefile. Tasks shell out through mage's sh helpers and report progress
// with the same render theme the sqboot binary uses.
package magetasks
