//go:build !deadlock

// Package syncutil provides the mutex used to serialize bus transactions.
// Build with -tags=deadlock to swap in go-deadlock's detector.
package syncutil

import "sync"

// DeadlockEnabled is true if the deadlock detector is enabled.
const DeadlockEnabled = false

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	sync.Mutex
}
