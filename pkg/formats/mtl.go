package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Material is one newmtl block of an MTL library.
// Texture paths are relative to the MTL file.
type Material struct {
	Name      string
	Ambient   [3]float32
	Diffuse   [3]float32
	Specular  [3]float32
	Shininess float32
	Opacity   float32

	AmbientMap  string
	DiffuseMap  string
	SpecularMap string
}

// MTL is a parsed material library, keyed by material name.
type MTL struct {
	Materials map[string]*Material
}

// ParseMTL parses Wavefront MTL data.
func ParseMTL(data []byte) (*MTL, error) {
	lib := &MTL{Materials: make(map[string]*Material)}
	var cur *Material

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		key, args := fields[0], fields[1:]

		if key == "newmtl" {
			if len(args) == 0 {
				return nil, fmt.Errorf("line %d: %w: newmtl without name", lineNo, ErrMalformedOBJ)
			}
			cur = &Material{
				Name:      strings.Join(args, " "),
				Diffuse:   [3]float32{1, 1, 1},
				Shininess: 1,
				Opacity:   1,
			}
			lib.Materials[cur.Name] = cur
			continue
		}
		if cur == nil {
			continue
		}

		var err error
		switch key {
		case "Ka":
			cur.Ambient, err = parseColor(args)
		case "Kd":
			cur.Diffuse, err = parseColor(args)
		case "Ks":
			cur.Specular, err = parseColor(args)
		case "Ns":
			cur.Shininess, err = parseScalar(args)
		case "d":
			cur.Opacity, err = parseScalar(args)
		case "Tr":
			var tr float32
			tr, err = parseScalar(args)
			cur.Opacity = 1 - tr
		case "map_Ka":
			cur.AmbientMap = mapPath(args)
		case "map_Kd":
			cur.DiffuseMap = mapPath(args)
		case "map_Ks":
			cur.SpecularMap = mapPath(args)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading MTL: %w", err)
	}
	return lib, nil
}

// ParseMTLFile reads and parses an MTL file from disk.
func ParseMTLFile(path string) (*MTL, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading MTL file: %w", err)
	}
	return ParseMTL(data)
}

func parseColor(args []string) ([3]float32, error) {
	v, err := parseFloats(args, 3)
	if err != nil {
		return [3]float32{}, err
	}
	return [3]float32{v[0], v[1], v[2]}, nil
}

func parseScalar(args []string) (float32, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: missing value", ErrMalformedOBJ)
	}
	f, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedOBJ, args[0])
	}
	return float32(f), nil
}

// mapPath takes the last argument, skipping options like -s 1 1 1.
func mapPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[len(args)-1]
}
