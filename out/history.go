// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/cguevaramorel/ogs/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

// Record holds the state at the head of one borehole at one output time
type Record struct {
	Bhe       string  `csv:"bhe"`        // name of borehole
	Time      float64 `csv:"time"`       // time
	Tin       float64 `csv:"t_in"`       // inflow temperature
	Tout      float64 `csv:"t_out"`      // outflow temperature
	FlowRate  float64 `csv:"flow_rate"`  // refrigerant flow rate
	Power     float64 `csv:"power"`      // Q ρ cp (Tin - Tout); > 0 when heat is injected
	SoilPower float64 `csv:"soil_power"` // heat flow rate from grout to soil
}

// ProfileRecord holds the heat flux per unit length at one integration point
type ProfileRecord struct {
	Bhe  string  `csv:"bhe"`  // name of borehole
	Time float64 `csv:"time"` // time
	Z    float64 `csv:"z"`    // elevation
	Qgs  float64 `csv:"qgs"`  // heat flux from grout to soil per unit length
}

// History holds the records of all boreholes
type History struct {
	Records []*Record
}

// Add appends a record
func (o *History) Add(r *Record) {
	o.Records = append(o.Records, r)
}

// Series returns the records of borehole named bhe
func (o *History) Series(bhe string) (res []*Record) {
	for _, r := range o.Records {
		if r.Bhe == bhe {
			res = append(res, r)
		}
	}
	return
}

// Values returns the values of column key of borehole named bhe. ex: key = "t_out"
func (o *History) Values(bhe, key string) (vals []float64, err error) {
	var get func(r *Record) float64
	switch key {
	case "time":
		get = func(r *Record) float64 { return r.Time }
	case "t_in":
		get = func(r *Record) float64 { return r.Tin }
	case "t_out":
		get = func(r *Record) float64 { return r.Tout }
	case "flow_rate":
		get = func(r *Record) float64 { return r.FlowRate }
	case "power":
		get = func(r *Record) float64 { return r.Power }
	case "soil_power":
		get = func(r *Record) float64 { return r.SoilPower }
	default:
		return nil, chk.Err("history does not have column %q", key)
	}
	for _, r := range o.Series(bhe) {
		vals = append(vals, get(r))
	}
	return
}

// Save writes all records to a CSV file
func (o *History) Save(fn string) (err error) {
	return saveCsv(fn, &o.Records)
}

// ReadHistory reads records from a CSV file
func ReadHistory(fn string) (o *History, err error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open history file %q: %v", fn, err)
	}
	defer f.Close()
	o = new(History)
	err = gocsv.UnmarshalFile(f, &o.Records)
	if err != nil {
		return nil, chk.Err("cannot read history file %q: %v", fn, err)
	}
	return
}

// Recorder records the history at the head of all boreholes and the profiles of heat flux to
// the soil at output times
type Recorder struct {
	History  History          // head records
	Profiles []*ProfileRecord // profiles along boreholes
	Ips      *Ips             // integration points
	main     *fem.Main
}

// NewRecorder allocates a new Recorder and sets it as the output function of m
func NewRecorder(m *fem.Main) (o *Recorder) {
	o = &Recorder{Ips: NewIps(m.Domain), main: m}
	m.Output = o.Record
	return
}

// Record records the current state of d
func (o *Recorder) Record(d *fem.Domain) (err error) {
	t := d.Sol.T
	err = o.Ips.Update()
	if err != nil {
		return
	}
	for ibhe, mdl := range o.main.Sim.Models {
		r := &Record{Bhe: mdl.Name(), Time: t, FlowRate: mdl.FlowRate()}
		r.Tin, r.Tout = d.Heads[ibhe].Temps(d.Sol.Y)
		fluid := &mdl.Params().Fluid
		r.Power = r.FlowRate * fluid.Rho * fluid.Cp * (r.Tin - r.Tout)
		r.SoilPower, err = d.SoilHeatRate(ibhe)
		if err != nil {
			return
		}
		o.History.Add(r)
		log.WithFields(log.Fields{"bhe": r.Bhe, "t": t, "Tin": r.Tin, "Tout": r.Tout}).Debug("output")

		// profile
		var z, q []float64
		z, q, err = o.Ips.Profile(ibhe, "qgs")
		if err != nil {
			return
		}
		for i := range z {
			o.Profiles = append(o.Profiles, &ProfileRecord{r.Bhe, t, z[i], q[i]})
		}
	}
	return
}

// Save writes <key>-history.csv and <key>-profiles.csv into dirout
func (o *Recorder) Save(dirout, key string) (err error) {
	err = o.History.Save(filepath.Join(dirout, key+"-history.csv"))
	if err != nil {
		return
	}
	return saveCsv(filepath.Join(dirout, key+"-profiles.csv"), &o.Profiles)
}

// saveCsv writes records to file fn
func saveCsv(fn string, records interface{}) (err error) {
	f, err := os.Create(fn)
	if err != nil {
		return chk.Err("cannot create file %q: %v", fn, err)
	}
	defer f.Close()
	err = gocsv.MarshalFile(records, f)
	if err != nil {
		return chk.Err("cannot write file %q: %v", fn, err)
	}
	return
}
