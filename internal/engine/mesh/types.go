// Package mesh turns parsed OBJ models into interleaved vertex data and
// uploads them to the GPU.
package mesh

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Group is a contiguous index range drawn with one material.
type Group struct {
	Material   string
	DiffuseMap string // relative to the model file, empty for none
	StartIndex int32
	IndexCount int32
}

// Data holds the complete mesh ready for GPU upload.
type Data struct {
	Vertices []Vertex
	Indices  []uint32
	Groups   []Group
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Radius returns the distance from the bounds center to a corner.
func (b Bounds) Radius() float32 {
	dx := (b.Max[0] - b.Min[0]) / 2
	dy := (b.Max[1] - b.Min[1]) / 2
	dz := (b.Max[2] - b.Min[2]) / 2
	return sqrtf(dx*dx + dy*dy + dz*dz)
}
