// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package marker turns a per-cell error indicator into the Boolean
// marked-cell vector refine.Poly and coarsen.Poly consume. The error
// indicator itself comes from an external estimator; this package
// only implements the marking rule.
package marker

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Method selects the marking strategy.
type Method int

const (
	// MAX marks every cell whose indicator is at least theta * max(eta).
	MAX Method = iota
	// L2 is the Dörfler strategy: mark the smallest, highest-indicator
	// subset whose squared-indicator sum reaches theta of the total.
	L2
)

// Mark returns isMarkedCell, sized len(eta)+1 with the last slot
// always false (the sentinel-padding convention of cell arrays),
// given a per-cell error indicator eta, a threshold theta in (0, 1],
// and a marking Method.
func Mark(eta []float64, theta float64, method Method) ([]bool, error) {
	if theta <= 0 || theta > 1 {
		return nil, chk.Err("theta=%g must be in (0, 1]\n", theta)
	}
	nc := len(eta)
	marked := make([]bool, nc+1)
	switch method {
	case MAX:
		mx := 0.0
		for _, e := range eta {
			if e > mx {
				mx = e
			}
		}
		cut := theta * mx
		for c, e := range eta {
			if e >= cut {
				marked[c] = true
			}
		}
	case L2:
		order := make([]int, nc)
		total := 0.0
		for c, e := range eta {
			order[c] = c
			total += e * e
		}
		sort.Slice(order, func(i, j int) bool { return eta[order[i]] > eta[order[j]] })
		target := theta * total
		sum := 0.0
		for _, c := range order {
			if sum >= target {
				break
			}
			marked[c] = true
			sum += eta[c] * eta[c]
		}
	default:
		return nil, chk.Err("unknown marking method %v\n", method)
	}
	return marked, nil
}
