package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleInstanceLock(t *testing.T) {
	guard, err := AcquireSingleInstance("elevate-lock-test")
	require.NoError(t, err)

	_, err = AcquireSingleInstance("elevate-lock-test")
	require.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance("elevate-lock-test")
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	require.NoError(t, guard.Release())
}
