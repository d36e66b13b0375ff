package state

import (
	"time"

	"go.uber.org/zap"
)

// newLocalEnv creates a new LocalEnv instance. Logger is a no-op one until
// configuration is loaded, so early code paths can log unconditionally.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		Log:   zap.NewNop(),
		start: time.Now(),
	}
}
