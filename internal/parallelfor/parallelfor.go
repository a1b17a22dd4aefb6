// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package parallelfor implements the data-parallel for-loop the
// simulation loop's per-atom passes are built on: the neighbor scan and
// the integrator's drift/kick/force update both read shared, read-only
// state (box, neighbor list, potential) and write only to the atom they
// own, so the iteration is dispatched across workers with no locking.
package parallelfor

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Do calls fn(i) for every i in [0,n), distributing contiguous ranges of
// indices across GOMAXPROCS workers. It blocks until all workers return,
// and returns the first non-nil error any call produced (a worker stops
// at the first error in its own range, skipping the rest of that range;
// the other workers still run their ranges to completion; fn must not
// depend on other indices' results
// within the same Do, matching the atom-ownership rule of the simulation
// loop: each call writes only its own record).
func Do(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
