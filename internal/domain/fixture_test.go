package domain

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixture_Path(t *testing.T) {
	fixture := Fixture{Name: "datafile", Segments: []string{"tests", "smoke", "data", "datafile.txt"}}

	assert.Equal(t, filepath.Join("tests", "smoke", "data", "datafile.txt"), fixture.Path())
}

func TestCheckReport_Failed(t *testing.T) {
	report := &CheckReport{
		Results: []CheckResult{
			{Fixture: Fixture{Name: "a"}},
			{Fixture: Fixture{Name: "b"}, Err: errors.New("could not read b")},
			{Fixture: Fixture{Name: "c"}},
		},
	}

	failed := report.Failed()

	assert.Len(t, failed, 1)
	assert.Equal(t, "b", failed[0].Fixture.Name)
	assert.True(t, report.Results[0].Passed())
}
