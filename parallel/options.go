// SPDX-License-Identifier: MIT
// Package: gravix/parallel
//
// options.go — worker-pool tuning knobs.

package parallel

import "runtime"

// Options carries the resolved pool configuration.
type Options struct {
	// Workers bounds the number of concurrently running goroutines.
	Workers int
}

// DefaultOptions sizes the pool to the scheduler's processor count.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// Option mutates Options before a batch call runs.
type Option func(*Options)

// WithWorkers bounds the pool to n goroutines. Values below one fall
// back to the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Workers = n
		}
	}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
