package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// OBJ format errors.
var (
	ErrMalformedOBJ      = errors.New("malformed OBJ statement")
	ErrOBJIndexRange     = errors.New("OBJ index out of range")
	ErrOBJDegenerateFace = errors.New("OBJ face has fewer than 3 vertices")
)

// OBJIndex references one corner of a face. Indices are zero-based;
// TexCoord and Normal are -1 when the face omits them.
type OBJIndex struct {
	Position int
	TexCoord int
	Normal   int
}

// OBJGroup is a run of triangles sharing one material.
type OBJGroup struct {
	Material  string
	Triangles [][3]OBJIndex
}

// OBJ is a parsed Wavefront OBJ model. Polygons are fan-triangulated.
type OBJ struct {
	Positions    [][3]float32
	TexCoords    [][2]float32
	Normals      [][3]float32
	Groups       []OBJGroup
	MaterialLibs []string
}

// TriangleCount returns the number of triangles across all groups.
func (o *OBJ) TriangleCount() int {
	n := 0
	for _, g := range o.Groups {
		n += len(g.Triangles)
	}
	return n
}

// ParseOBJ parses Wavefront OBJ data.
// Supported statements: v, vt, vn, f, usemtl, mtllib. Others (o, g, s, l)
// are skipped.
func ParseOBJ(data []byte) (*OBJ, error) {
	obj := &OBJ{}
	current := -1

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		args := fields[1:]

		switch fields[0] {
		case "v":
			v, err := parseFloats(args, 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			obj.Positions = append(obj.Positions, [3]float32{v[0], v[1], v[2]})
		case "vt":
			v, err := parseFloats(args, 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			obj.TexCoords = append(obj.TexCoords, [2]float32{v[0], v[1]})
		case "vn":
			v, err := parseFloats(args, 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			obj.Normals = append(obj.Normals, [3]float32{v[0], v[1], v[2]})
		case "f":
			if len(args) < 3 {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrOBJDegenerateFace)
			}
			corners := make([]OBJIndex, len(args))
			for i, a := range args {
				idx, err := obj.parseIndex(a)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				corners[i] = idx
			}
			if current < 0 {
				obj.Groups = append(obj.Groups, OBJGroup{})
				current = len(obj.Groups) - 1
			}
			g := &obj.Groups[current]
			for i := 1; i+1 < len(corners); i++ {
				g.Triangles = append(g.Triangles, [3]OBJIndex{corners[0], corners[i], corners[i+1]})
			}
		case "usemtl":
			name := strings.Join(args, " ")
			current = -1
			for i := range obj.Groups {
				if obj.Groups[i].Material == name {
					current = i
					break
				}
			}
			if current < 0 {
				obj.Groups = append(obj.Groups, OBJGroup{Material: name})
				current = len(obj.Groups) - 1
			}
		case "mtllib":
			obj.MaterialLibs = append(obj.MaterialLibs, args...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}

	// Drop groups that got a material but no faces.
	groups := obj.Groups[:0]
	for _, g := range obj.Groups {
		if len(g.Triangles) > 0 {
			groups = append(groups, g)
		}
	}
	obj.Groups = groups

	return obj, nil
}

// ParseOBJFile reads and parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}

// parseIndex parses a v, v/vt, v//vn or v/vt/vn corner.
func (o *OBJ) parseIndex(s string) (OBJIndex, error) {
	idx := OBJIndex{TexCoord: -1, Normal: -1}
	parts := strings.Split(s, "/")
	if len(parts) > 3 || parts[0] == "" {
		return idx, fmt.Errorf("%w: face corner %q", ErrMalformedOBJ, s)
	}

	var err error
	if idx.Position, err = resolveIndex(parts[0], len(o.Positions)); err != nil {
		return idx, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if idx.TexCoord, err = resolveIndex(parts[1], len(o.TexCoords)); err != nil {
			return idx, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if idx.Normal, err = resolveIndex(parts[2], len(o.Normals)); err != nil {
			return idx, err
		}
	}
	return idx, nil
}

// resolveIndex converts a one-based or negative (relative) index.
func resolveIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", ErrMalformedOBJ, s)
	}
	switch {
	case n > 0 && n <= count:
		return n - 1, nil
	case n < 0 && -n <= count:
		return count + n, nil
	default:
		return 0, fmt.Errorf("%w: %d of %d", ErrOBJIndexRange, n, count)
	}
}

// parseFloats parses at least min floats; extra components (w) are ignored.
func parseFloats(args []string, min int) ([]float32, error) {
	if len(args) < min {
		return nil, fmt.Errorf("%w: want %d values, got %d", ErrMalformedOBJ, min, len(args))
	}
	out := make([]float32, min)
	for i := 0; i < min; i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedOBJ, args[i])
		}
		out[i] = float32(f)
	}
	return out, nil
}
