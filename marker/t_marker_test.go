// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marker

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_marker01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("marker01. maximum strategy")

	eta := []float64{0.1, 0.9, 0.5, 1.0, 0.2}

	marked, err := Mark(eta, 0.5, MAX)
	if err != nil {
		tst.Errorf("marking failed:\n%v", err)
		return
	}
	chk.IntAssert(len(marked), 6)
	chk.Bools(tst, "marked", marked, []bool{false, true, true, true, false, false})

	// theta == 1 keeps only the maximum
	marked, err = Mark(eta, 1.0, MAX)
	if err != nil {
		tst.Errorf("marking failed:\n%v", err)
		return
	}
	chk.Bools(tst, "marked", marked, []bool{false, false, false, true, false, false})
}

func Test_marker02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("marker02. Dorfler strategy")

	eta := []float64{3, 4, 0, 0, 0}

	// 0.36 of the squared total (25) is reached by eta=4 alone
	marked, err := Mark(eta, 0.36, L2)
	if err != nil {
		tst.Errorf("marking failed:\n%v", err)
		return
	}
	chk.Bools(tst, "marked", marked, []bool{false, true, false, false, false, false})

	// more than 0.64 needs both contributing cells
	marked, err = Mark(eta, 0.8, L2)
	if err != nil {
		tst.Errorf("marking failed:\n%v", err)
		return
	}
	chk.Bools(tst, "marked", marked, []bool{true, true, false, false, false, false})

	// the sentinel slot is always false
	if marked[len(marked)-1] {
		tst.Errorf("sentinel slot must stay false\n")
	}
}

func Test_marker03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("marker03. bad threshold")

	if _, err := Mark([]float64{1, 2}, 0, MAX); err == nil {
		tst.Errorf("theta=0 must fail\n")
	}
	if _, err := Mark([]float64{1, 2}, 1.5, L2); err == nil {
		tst.Errorf("theta>1 must fail\n")
	}
}
