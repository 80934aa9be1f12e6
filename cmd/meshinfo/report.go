package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/cubeforge/internal/engine/graphics"
	"github.com/Faultbox/cubeforge/internal/engine/meshgen"
	"github.com/Faultbox/cubeforge/pkg/mesh"
)

// Report describes a generated model.
type Report struct {
	Faces       string        `yaml:"faces"`
	Mask        uint8         `yaml:"mask"`
	Vertices    int           `yaml:"vertices"`
	Indices     int           `yaml:"indices"`
	Triangles   int           `yaml:"triangles"`
	VertexBytes int           `yaml:"vertex_bytes"`
	IndexBytes  int           `yaml:"index_bytes"`
	VertexSize  int           `yaml:"vertex_size"`
	IndexSize   int           `yaml:"index_size"`
	Geometries  int           `yaml:"geometries"`
	DrawRange   *DrawRange    `yaml:"draw_range,omitempty"`
	Bounds      [2][3]float32 `yaml:"bounds,flow"`
	Allocations int           `yaml:"allocations"`
	FaceList    []FaceReport  `yaml:"face_list,omitempty"`
}

// DrawRange is the geometry's draw call.
type DrawRange struct {
	Primitive string `yaml:"primitive"`
	Start     int    `yaml:"start"`
	Count     int    `yaml:"count"`
}

// FaceReport lists one face in buffer order.
type FaceReport struct {
	Direction   string     `yaml:"direction"`
	Index       int        `yaml:"index"`
	FirstVertex int        `yaml:"first_vertex"`
	Normal      [3]float32 `yaml:"normal,flow"`
}

// buildReport generates dirs on a memory device and describes the result.
func buildReport(dirs mesh.DirectionSet) (*Report, error) {
	dev := graphics.NewMemoryDevice()
	model, err := meshgen.NewGenerator(dev).CreateModel(dirs)
	if err != nil {
		return nil, err
	}
	defer model.Release()

	box := model.BoundingBox()
	r := &Report{
		Faces:       dirs.String(),
		Mask:        uint8(dirs),
		Vertices:    model.VertexCount(),
		Indices:     model.IndexCount(),
		Geometries:  model.NumGeometries(),
		Bounds:      [2][3]float32{box.Min, box.Max},
		Allocations: dev.Allocations,
	}
	for _, vb := range model.VertexBuffers() {
		r.VertexSize = vb.VertexSize()
		r.VertexBytes += vb.VertexCount() * vb.VertexSize()
	}
	for _, ib := range model.IndexBuffers() {
		r.IndexSize = ib.IndexSize()
		r.IndexBytes += ib.IndexCount() * ib.IndexSize()
	}
	if g := model.Geometry(0, 0); g != nil {
		dr := g.DrawRange()
		r.Triangles = g.PrimitiveCount()
		r.DrawRange = &DrawRange{Primitive: dr.Type.String(), Start: dr.IndexStart, Count: dr.IndexCount}
	}

	m, err := mesh.Build(dirs)
	if err != nil {
		return nil, err
	}
	first := 0
	for _, f := range m.Faces() {
		r.FaceList = append(r.FaceList, FaceReport{
			Direction:   f.Direction.String(),
			Index:       f.Direction.Index(),
			FirstVertex: first,
			Normal:      f.Vertices[0].Normal,
		})
		first += len(f.Vertices)
	}
	return r, nil
}

// writeYAML encodes r with two-space indentation.
func writeYAML(w io.Writer, r any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}

// writeText prints r as aligned key/value lines.
func writeText(w io.Writer, r *Report) {
	fmt.Fprintf(w, "Faces:      %s (%#02x)\n", r.Faces, r.Mask)
	fmt.Fprintf(w, "Vertices:   %d (%d bytes, stride %d)\n", r.Vertices, r.VertexBytes, r.VertexSize)
	fmt.Fprintf(w, "Indices:    %d (%d bytes, %d-bit)\n", r.Indices, r.IndexBytes, r.IndexSize*8)
	fmt.Fprintf(w, "Triangles:  %d\n", r.Triangles)
	fmt.Fprintf(w, "Geometries: %d\n", r.Geometries)
	if r.DrawRange != nil {
		fmt.Fprintf(w, "Draw:       %s [%d, %d)\n", r.DrawRange.Primitive, r.DrawRange.Start, r.DrawRange.Start+r.DrawRange.Count)
	}
	fmt.Fprintf(w, "Bounds:     %v .. %v\n", r.Bounds[0], r.Bounds[1])
	fmt.Fprintf(w, "Buffers:    %d allocated\n", r.Allocations)
	if len(r.FaceList) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Faces in buffer order:")
	for _, f := range r.FaceList {
		fmt.Fprintf(w, "  %d %-10s first vertex %-3d normal %v\n", f.Index, f.Direction, f.FirstVertex, f.Normal)
	}
}

// writeDump prints every vertex and triangle of dirs.
func writeDump(w io.Writer, dirs mesh.DirectionSet) error {
	m, err := mesh.Build(dirs)
	if err != nil {
		return err
	}
	indices, err := m.IndexData()
	if err != nil {
		return err
	}
	for i, v := range m.Vertices() {
		fmt.Fprintf(w, "v %3d  pos % .1f % .1f % .1f  n % .0f % .0f % .0f\n", i,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for i := 0; i+2 < len(indices); i += 3 {
		fmt.Fprintf(w, "t %3d  %d %d %d\n", i/3, indices[i], indices[i+1], indices[i+2])
	}
	return nil
}

// writeTable lists counts for every direction set.
func writeTable(w io.Writer) error {
	fmt.Fprintf(w, "%-5s %-8s %-8s %-9s %s\n", "mask", "vertices", "indices", "triangles", "faces")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for s := mesh.None; s <= mesh.All; s++ {
		r, err := buildReport(s)
		if err != nil {
			return fmt.Errorf("set %#02x: %w", uint8(s), err)
		}
		fmt.Fprintf(w, "%-5d %-8d %-8d %-9d %s\n", r.Mask, r.Vertices, r.Indices, r.Triangles, r.Faces)
	}
	return nil
}
