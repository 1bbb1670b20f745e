// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"

	"github.com/cguevaramorel/ogs/mdl/bhe"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/interp"
)

// FuncData holds function definition
//  Type "pwl" defines a piecewise linear table given by Xs and Ys or by a CSV file with columns
//  "x" and "y". Other types are functions from the gosl/fun/dbf database; e.g. cte, rmp, lin.
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: zero, load, myfunction1, etc.
	Type string     `json:"type"` // type of function. ex: pwl, cte, rmp
	Prms dbf.Params `json:"prms"` // parameters of dbf functions
	Xs   []float64  `json:"xs"`   // pwl: abscissae
	Ys   []float64  `json:"ys"`   // pwl: ordinates
	File string     `json:"file"` // pwl: CSV file with columns x,y. relative to the .sim file
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
func (o FuncsData) Get(name string) (fcn bhe.Curve, err error) {
	if name == "zero" || name == "none" {
		return bhe.CurveFunc(func(float64) float64 { return 0 }), nil
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = f.curve()
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	return nil, chk.Err("cannot find function named %q\n", name)
}

// Curves collects the curves of a BHE. roles maps curve roles (e.g. "power_in_watt_curve") to
// function names
func (o FuncsData) Curves(roles map[string]string) (curves bhe.Curves, err error) {
	curves = make(bhe.Curves)
	for role, name := range roles {
		curves[role], err = o.Get(name)
		if err != nil {
			return nil, chk.Err("cannot set %q:\n%v", role, err)
		}
	}
	return
}

// fixPaths makes paths of tables relative to dir
func (o FuncsData) fixPaths(dir string) {
	for _, f := range o {
		if f.File != "" && !filepath.IsAbs(f.File) {
			f.File = filepath.Join(dir, f.File)
		}
	}
}

// curve allocates the function
func (o *FuncData) curve() (c bhe.Curve, err error) {
	if o.Type == "pwl" {
		xs, ys := o.Xs, o.Ys
		if o.File != "" {
			xs, ys, err = ReadTable(o.File)
			if err != nil {
				return nil, err
			}
		}
		return NewPiecewiseLinear(xs, ys)
	}
	defer func() {
		if r := recover(); r != nil {
			c, err = nil, chk.Err("cannot allocate function %q:\n%v", o.Name, r)
		}
	}()
	return &timeFunc{dbf.New(o.Type, o.Prms)}, nil
}

// timeFunc evaluates a dbf function at time t (x is not used)
type timeFunc struct {
	f dbf.T
}

func (o *timeFunc) Value(t float64) float64 { return o.f.F(t, nil) }

// PiecewiseLinear implements a piecewise linear curve. Values outside the table are clamped to
// the first and last ordinates.
type PiecewiseLinear struct {
	Xmin, Xmax float64
	pl         interp.PiecewiseLinear
}

// NewPiecewiseLinear returns a new curve; xs must be strictly increasing
func NewPiecewiseLinear(xs, ys []float64) (o *PiecewiseLinear, err error) {
	if len(xs) != len(ys) {
		return nil, chk.Err("pwl: sizes of xs and ys must be equal. %d != %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, chk.Err("pwl: at least two points are required. %d is invalid", len(xs))
	}
	o = &PiecewiseLinear{Xmin: xs[0], Xmax: xs[len(xs)-1]}
	if err = o.pl.Fit(xs, ys); err != nil {
		return nil, chk.Err("pwl: %v", err)
	}
	return
}

// Value returns y(x)
func (o *PiecewiseLinear) Value(x float64) float64 {
	return o.pl.Predict(x)
}

// point is a row of a curve table
type point struct {
	X float64 `csv:"x"`
	Y float64 `csv:"y"`
}

// ReadTable reads a CSV file with columns x and y
func ReadTable(fn string) (xs, ys []float64, err error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, nil, chk.Err("cannot open table %q:\n%v", fn, err)
	}
	defer f.Close()
	var rows []*point
	if err = gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, nil, chk.Err("cannot read table %q:\n%v", fn, err)
	}
	xs = make([]float64, len(rows))
	ys = make([]float64, len(rows))
	for i, r := range rows {
		xs[i], ys[i] = r.X, r.Y
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// String prints one function
func (o FuncData) String() string {
	if o.Type == "pwl" {
		if o.File != "" {
			return io.Sf("    {\"name\":%q, \"type\":\"pwl\", \"file\":%q}", o.Name, o.File)
		}
		return io.Sf("    {\"name\":%q, \"type\":\"pwl\", \"xs\":%v, \"ys\":%v}", o.Name, o.Xs, o.Ys)
	}
	return io.Sf("    {\"name\":%q, \"type\":%q, \"prms\":%v}", o.Name, o.Type, o.Prms)
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"functions\" : []"
	}
	l := "  \"functions\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}
