// Package smoke holds the smoke suite: it checks that the fixtures later test
// stages depend on are present in the repository.
package smoke
