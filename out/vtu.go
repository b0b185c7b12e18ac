// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/quan4444/gomodal/fem"
	"github.com/quan4444/gomodal/inp"
)

// WriteVtu writes dirout/fnkey.vtu with the mesh topology and one vector
// field per mode shape (mode_0, mode_1, ...), for visualization in ParaView.
// Eigenvectors are indexed as eq = 3*vid + dim, matching the domain
// numbering
func WriteVtu(dirout, fnkey string, msh *inp.Mesh, res *fem.Results) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot write vtu file: %v", r)
		}
	}()

	// buffers
	geo := new(bytes.Buffer)
	dat := new(bytes.Buffer)

	// topology
	vtuTopology(geo, msh)

	// mode shapes as point data
	io.Ff(dat, "<PointData Scalars=\"TheScalars\">\n")
	io.Ff(dat, "<DataArray type=\"Int32\" Name=\"nid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, v := range msh.Verts {
		io.Ff(dat, "%d ", v.Id)
	}
	io.Ff(dat, "\n</DataArray>\n")
	for k, vec := range res.Vecs {
		io.Ff(dat, "<DataArray type=\"Float64\" Name=\"mode_%d\" NumberOfComponents=\"3\" format=\"ascii\">\n", k)
		for _, v := range msh.Verts {
			eq := msh.Ndim * v.Id
			io.Ff(dat, "%23.15e %23.15e %23.15e ", vec[eq], vec[eq+1], vec[eq+2])
		}
		io.Ff(dat, "\n</DataArray>\n")
	}
	io.Ff(dat, "</PointData>\n")

	// cell data
	io.Ff(dat, "<CellData Scalars=\"TheScalars\">\n")
	io.Ff(dat, "<DataArray type=\"Int32\" Name=\"eid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		io.Ff(dat, "%d ", c.Id)
	}
	io.Ff(dat, "\n</DataArray>\n</CellData>\n")

	// header and footer
	var hdr, foo bytes.Buffer
	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", len(msh.Verts), len(msh.Cells))
	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	io.WriteFileVD(dirout, fnkey+".vtu", &hdr, geo, dat, &foo)
	return
}

func vtuTopology(buf *bytes.Buffer, msh *inp.Mesh) {

	// coordinates
	io.Ff(buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range msh.Verts {
		io.Ff(buf, "%23.15e %23.15e %23.15e ", v.C[0], v.C[1], v.C[2])
	}
	io.Ff(buf, "\n</DataArray>\n</Points>\n")

	// connectivities
	io.Ff(buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		for _, vid := range c.Verts {
			io.Ff(buf, "%d ", vid)
		}
	}

	// offsets
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	var offset int
	for _, c := range msh.Cells {
		offset += len(c.Verts)
		io.Ff(buf, "%d ", offset)
	}

	// types
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		if c.Shp.VtkCode < 1 {
			chk.Panic("cannot handle cell type %q", c.Type)
		}
		io.Ff(buf, "%d ", c.Shp.VtkCode)
	}
	io.Ff(buf, "\n</DataArray>\n</Cells>\n")
}
