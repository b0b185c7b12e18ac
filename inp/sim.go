// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// input data errors. Geometry and material problems are detected eagerly,
// before any (expensive) assembly takes place.
var (
	ErrInvalidGeometry = errors.New("InvalidGeometry")
)

// DefaultKSentinel is the default diagonal value set on prescribed rows of K.
// Together with the reciprocal mass sentinel it pushes the pseudo-eigenvalues
// of clamped DOFs to KSentinel² ≈ 3.9e9, far above the physical band.
// Setting both sentinels to 1 instead parks a spurious cluster at the low
// end of the spectrum, masking the physical modes; see fem.EssentialBcs.
const DefaultKSentinel = 2.0 * math.Pi * 1e4

// MatData holds the material constants
type MatData struct {
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	Rho float64 // density
}

// EigPrms holds the generalized eigensolver parameters
type EigPrms struct {
	Neigs     int     // number of requested eigenpairs
	Shift     float64 // spectral shift σ of the shift-invert transform
	Tol       float64 // relative residual tolerance ‖Kv−λMv‖/‖Kv‖
	MaxIt     int     // maximum number of Lanczos steps
	Problem   string  // problem type; "gen-hermitian"
	Transform string  // spectral transform; "shift-invert"
	Solver    string  // "lanczos" or "dense"
	KSentinel float64 // diagonal sentinel for prescribed rows of K
	MSentinel float64 // diagonal sentinel for prescribed rows of M
}

// Data holds global simulation data
type Data struct {
	Desc     string // description of simulation
	DirOut   string // directory for output
	FnameKey string // filename key; e.g. "plate-modal"
}

// Simulation holds all simulation input data
type Simulation struct {
	Data Data     // global data
	Geo  Geometry // box geometry and subdivisions
	Mat  MatData  // material constants
	Eig  EigPrms  // eigensolver parameters
}

// NewSimulation returns a simulation with default data: the 1.0×1.2×0.02 m
// aluminium plate scenario
func NewSimulation() (o *Simulation) {
	o = new(Simulation)
	o.Data = Data{
		Desc:     "clamped plate modal analysis",
		DirOut:   "/tmp/gomodal",
		FnameKey: "plate-modal",
	}
	o.Geo = Geometry{Lx: 1.0, Ly: 1.2, Lz: 0.02, Nx: 100}
	o.Mat = MatData{E: 72e9, Nu: 0.3, Rho: 2800}
	o.Eig = EigPrms{
		Neigs:     6,
		Shift:     0.1,
		Tol:       1e-6,
		MaxIt:     200,
		Problem:   "gen-hermitian",
		Transform: "shift-invert",
		Solver:    "lanczos",
		KSentinel: DefaultKSentinel,
		MSentinel: 1.0 / DefaultKSentinel,
	}
	return
}

// ReadSim reads a simulation from a (.sim) JSON file. Fields missing in the
// file keep their default values
func ReadSim(simfilepath string) (sim *Simulation, err error) {

	// read file; gosl's reader panics on failure
	defer func() {
		if r := recover(); r != nil {
			sim, err = nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, r)
		}
	}()
	b := io.ReadFile(simfilepath)

	// decode over defaults
	o := NewSimulation()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}
	if o.Data.FnameKey == "" {
		o.Data.FnameKey = io.FnKey(filepath.Base(simfilepath))
	}

	// validate
	err = o.Validate()
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Validate checks the input data eagerly, before assembly
func (o *Simulation) Validate() error {
	if err := o.Geo.Validate(); err != nil {
		return err
	}
	if o.Eig.Neigs < 1 {
		return fmt.Errorf("%w: number of requested eigenpairs must be at least 1; got %d", ErrInvalidGeometry, o.Eig.Neigs)
	}
	if o.Eig.KSentinel == 0 || o.Eig.MSentinel == 0 {
		return fmt.Errorf("%w: BC sentinels must be set; defaults are %g and its reciprocal", ErrInvalidGeometry, DefaultKSentinel)
	}
	return nil
}

// SaveJSON saves the simulation data in a JSON file
func (o *Simulation) SaveJSON(dirout, fnkey string) error {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot marshal simulation data:\n%v", err)
	}
	var buf bytes.Buffer
	io.Ff(&buf, "%s\n", string(b))
	io.WriteFileD(dirout, fnkey+".sim", &buf)
	return nil
}
