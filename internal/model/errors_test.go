package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := NewCLIError(ExitDestConflict, "destination not empty")
		assert.Equal(t, "destination not empty", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := fmt.Errorf("exit status 1")
		err := WrapCLIError(ExitCloneFailed, "failed to clone", cause)
		assert.Equal(t, "failed to clone: exit status 1", err.Error())
	})
}

func TestCLIError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("exit status 1")
	err := WrapCLIError(ExitInstallFailed, "failed to install neovim", cause)

	assert.True(t, errors.Is(err, cause))

	var cliErr *CLIError
	require.ErrorAs(t, fmt.Errorf("pipeline: %w", err), &cliErr)
	assert.Equal(t, ExitInstallFailed, cliErr.Code)
}
