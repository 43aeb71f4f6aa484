//go:build deadlock

package syncutil

import (
	"testing"
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
	"github.com/stretchr/testify/assert"
)

func TestDeadlockEnabledByTag(t *testing.T) {
	assert.True(t, DeadlockEnabled)
	assert.Equal(t, 30*time.Second, deadlock.Opts.DeadlockTimeout)
}
