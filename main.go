// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/cguevaramorel/ogs/fem"
	"github.com/cguevaramorel/ogs/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// RunData holds the input parameters read from the run (.ini) file
type RunData struct {
	Sim      string // simulation (.sim) file; relative to the directory of the run file
	DirOut   string // directory for the history and profile files; default is the one in .sim
	Verbose  bool   // show messages
	LogLevel string // logrus level. ex: info, debug
}

// ReadRunData reads the [run] section of an ini file
func ReadRunData(fn string) (o *RunData, err error) {
	file, err := ini.Load(fn)
	if err != nil {
		return nil, chk.Err("cannot load run file %q: %v", fn, err)
	}
	sec := file.Section("run")
	o = &RunData{
		Sim:      sec.Key("sim").String(),
		DirOut:   sec.Key("dirout").String(),
		Verbose:  sec.Key("verbose").MustBool(true),
		LogLevel: sec.Key("log_level").MustString("info"),
	}
	if o.Sim == "" {
		return nil, chk.Err("run file %q must have key 'sim' in section [run]", fn)
	}
	if !filepath.IsAbs(o.Sim) {
		o.Sim = filepath.Join(filepath.Dir(fn), o.Sim)
	}
	return
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	runfile := "run.ini"
	if len(os.Args) > 1 {
		runfile = os.Args[1]
	}
	dat, err := ReadRunData(runfile)
	if err != nil {
		chk.Panic("%v", err)
	}
	level, err := log.ParseLevel(dat.LogLevel)
	if err != nil {
		chk.Panic("invalid log_level: %v", err)
	}
	log.SetLevel(level)

	// message
	if dat.Verbose {
		io.Pfyel("\nogs-bhe -- borehole heat exchangers\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"run file", "runfile", runfile,
			"simulation file", "sim", dat.Sim,
			"output directory", "dirout", dat.DirOut,
			"show messages", "verbose", dat.Verbose,
			"log level", "log_level", dat.LogLevel,
		))
	}

	// analysis data
	analysis, err := fem.NewMain(dat.Sim, "", true, dat.Verbose)
	if err != nil {
		chk.Panic("%v", err)
	}
	rec := out.NewRecorder(analysis)

	// run simulation
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// save results
	dirout := analysis.Sim.DirOut
	if dat.DirOut != "" {
		dirout = os.ExpandEnv(dat.DirOut)
		err = os.MkdirAll(dirout, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", dirout, err)
		}
	}
	err = rec.Save(dirout, analysis.Sim.Key)
	if err != nil {
		chk.Panic("%v", err)
	}
	log.WithFields(log.Fields{"dirout": dirout, "key": analysis.Sim.Key}).Info("results saved")
}
