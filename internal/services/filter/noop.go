package filter

import "smokecheck/internal/domain"

// NoOpFilter is a filter that never excludes any fixtures.
type NoOpFilter struct{}

// NewNoOpFilter creates a new no-op filter.
func NewNoOpFilter() *NoOpFilter {
	return &NoOpFilter{}
}

// ShouldExclude always returns false, never excluding any fixtures.
func (f *NoOpFilter) ShouldExclude(_ domain.Fixture) bool {
	return false
}
