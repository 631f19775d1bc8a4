package mesh

import (
	gomath "math"
	"path"

	"github.com/Faultbox/orrery/pkg/formats"
)

// Build creates interleaved mesh data from an OBJ model. Identical corners
// are shared. Corners without a normal get the area-weighted average of
// the faces around them. lib may be nil.
func Build(obj *formats.OBJ, lib *formats.MTL, mtlDir string) *Data {
	data := &Data{
		Bounds: Bounds{
			Min: [3]float32{1e10, 1e10, 1e10},
			Max: [3]float32{-1e10, -1e10, -1e10},
		},
	}

	shared := make(map[formats.OBJIndex]uint32)
	accum := make(map[uint32][3]float32)

	corner := func(c formats.OBJIndex) uint32 {
		if idx, ok := shared[c]; ok {
			return idx
		}
		v := Vertex{Position: obj.Positions[c.Position]}
		if c.TexCoord >= 0 {
			v.TexCoord = obj.TexCoords[c.TexCoord]
		}
		if c.Normal >= 0 {
			v.Normal = obj.Normals[c.Normal]
		}
		updateBounds(&data.Bounds, v.Position)

		idx := uint32(len(data.Vertices))
		data.Vertices = append(data.Vertices, v)
		shared[c] = idx
		return idx
	}

	for _, g := range obj.Groups {
		group := Group{
			Material:   g.Material,
			StartIndex: int32(len(data.Indices)),
		}
		if lib != nil {
			if m, ok := lib.Materials[g.Material]; ok && m.DiffuseMap != "" {
				group.DiffuseMap = path.Join(mtlDir, m.DiffuseMap)
			}
		}

		for _, tri := range g.Triangles {
			var ids [3]uint32
			for j, c := range tri {
				ids[j] = corner(c)
			}
			data.Indices = append(data.Indices, ids[0], ids[1], ids[2])

			// Unnormalized cross product weights by triangle area.
			p0 := data.Vertices[ids[0]].Position
			p1 := data.Vertices[ids[1]].Position
			p2 := data.Vertices[ids[2]].Position
			n := cross(sub(p1, p0), sub(p2, p0))
			for j, c := range tri {
				if c.Normal < 0 {
					accum[ids[j]] = add(accum[ids[j]], n)
				}
			}
		}

		group.IndexCount = int32(len(data.Indices)) - group.StartIndex
		data.Groups = append(data.Groups, group)
	}

	for idx, n := range accum {
		data.Vertices[idx].Normal = normalize(n)
	}

	if len(data.Vertices) == 0 {
		data.Bounds = Bounds{}
	}
	return data
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func add(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// normalize returns a unit vector, or +Y for degenerate input.
func normalize(v [3]float32) [3]float32 {
	length := sqrtf(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if length < 1e-8 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / length, v[1] / length, v[2] / length}
}

func sqrtf(x float32) float32 {
	return float32(gomath.Sqrt(float64(x)))
}
