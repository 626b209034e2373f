// SPDX-License-Identifier: MIT

// Package cmtm: functional options for block-matrix construction.
//
// Option values never panic; an invalid order is reported by BlockMatrix and
// ElementMatrices as ErrNonPositiveOrder or ErrOrderExceeded.

package cmtm

// Option configures a single BlockMatrix call.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	order    int  // requested output order
	orderSet bool // false ⇒ use CMTM.Order()
}

// WithOrder requests a block matrix of order k (k×k blocks). Without it the
// full order of the CMTM is used.
func WithOrder(k int) Option {
	return func(o *Options) {
		o.order = k
		o.orderSet = true
	}
}

// gatherOptions applies opts over the zero Options.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
