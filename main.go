// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomd/inp"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\nGomd -- a classical molecular-dynamics engine\n\n")

	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("Please provide the path to an input document. Ex.: lj_fluid.json\n")
	}
	fnamepath := flag.Arg(0)

	// check extension
	if io.FnExt(fnamepath) == "" {
		fnamepath += ".json"
	}

	doc, err := inp.Read(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}

	sim, err := inp.Build(doc)
	if err != nil {
		chk.Panic("%v", err)
	}

	if err := sim.Run(); err != nil {
		chk.Panic("%v", err)
	}
}
