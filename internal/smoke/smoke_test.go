package smoke_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smokecheck/internal/adapters/filesystem"
	smokeerrors "smokecheck/internal/errors"
	"smokecheck/internal/fixture"
	"smokecheck/internal/testutil"
)

// TestDataFilePresent runs from the repository root, the working directory the
// smoke suite is launched from.
func TestDataFilePresent(t *testing.T) {
	t.Chdir(testutil.ModuleRoot())
	checker := fixture.NewChecker(filesystem.New(), testutil.Logger())

	err := checker.Check(context.Background(), "", fixture.DataFile)

	require.NoError(t, err)
}

func TestDataFileAbsent(t *testing.T) {
	t.Chdir(t.TempDir())
	checker := fixture.NewChecker(filesystem.New(), testutil.Logger())

	err := checker.Check(context.Background(), "", fixture.DataFile)

	require.Error(t, err)
	assert.EqualError(t, err, "could not read datafile")
	assert.True(t, smokeerrors.IsMissingFixture(err))
}
