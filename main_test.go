// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cguevaramorel/ogs/fem"
	"github.com/cguevaramorel/ogs/out"
	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_run01(tst *testing.T) {

	chk.PrintTitle("run01. run file")

	dat, err := ReadRunData("examples/bhe_1u/run.ini")
	require.NoError(tst, err)
	assert.Equal(tst, filepath.Join("examples", "bhe_1u", "bhe_1u.sim"), dat.Sim)
	assert.Equal(tst, "/tmp/ogs/bhe_1u", dat.DirOut)
	assert.True(tst, dat.Verbose)
	assert.Equal(tst, "info", dat.LogLevel)

	// defaults and errors
	dir := tst.TempDir()
	fn := filepath.Join(dir, "run.ini")
	require.NoError(tst, os.WriteFile(fn, []byte("[run]\nsim = /abs/x.sim\n"), 0644))
	dat, err = ReadRunData(fn)
	require.NoError(tst, err)
	assert.Equal(tst, "/abs/x.sim", dat.Sim)
	assert.Equal(tst, "", dat.DirOut)
	assert.True(tst, dat.Verbose)
	assert.Equal(tst, "info", dat.LogLevel)

	require.NoError(tst, os.WriteFile(fn, []byte("[run]\nverbose = false\n"), 0644))
	_, err = ReadRunData(fn)
	assert.Error(tst, err)
	_, err = ReadRunData(filepath.Join(dir, "notfound.ini"))
	assert.Error(tst, err)
}

func Test_run02(tst *testing.T) {

	chk.PrintTitle("run02. example")

	analysis, err := fem.NewMain("examples/bhe_1u/bhe_1u.sim", "test", true, false)
	require.NoError(tst, err)
	rec := out.NewRecorder(analysis)
	require.NoError(tst, analysis.Run())
	require.Len(tst, rec.History.Records, 49)

	// idle during the first hour; heat injection at noon; extraction at night
	p, err := rec.History.Values("BHE1", "power")
	require.NoError(tst, err)
	assert.InDelta(tst, 0, p[1], 1e-3)
	assert.InDelta(tst, 2000, p[12], 1e-2)
	assert.InDelta(tst, -1500, p[48], 1e-2)

	dir := tst.TempDir()
	require.NoError(tst, rec.Save(dir, analysis.Sim.Key))
	_, err = os.Stat(filepath.Join(dir, "bhe_1u-test-history.csv"))
	assert.NoError(tst, err)
}
