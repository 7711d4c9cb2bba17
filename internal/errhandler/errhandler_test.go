package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled(terminal.InterruptErr))
	assert.True(t, IsCancelled(huh.ErrUserAborted))
	assert.True(t, IsCancelled(fmt.Errorf("menu: %w", huh.ErrUserAborted)))

	assert.False(t, IsCancelled(nil))
	assert.False(t, IsCancelled(errors.New("invalid amount")))
}
