package formats

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const cubeFace = `# one quad, two materials
mtllib planet.mtl
o Planet
v -1 -1 0
v 1 -1 0
v 1 1 0
v -1 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
usemtl surface
s off
f 1/1/1 2/2/1 3/3/1 4/4/1
usemtl clouds
f -4//-1 -3//-1 -2//-1
usemtl surface
f 1 3 4
`

func TestParseOBJ_ValidFile(t *testing.T) {
	obj, err := ParseOBJ([]byte(cubeFace))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if len(obj.Positions) != 4 {
		t.Errorf("expected 4 positions, got %d", len(obj.Positions))
	}
	if len(obj.TexCoords) != 4 {
		t.Errorf("expected 4 texcoords, got %d", len(obj.TexCoords))
	}
	if len(obj.Normals) != 1 {
		t.Errorf("expected 1 normal, got %d", len(obj.Normals))
	}
	if len(obj.MaterialLibs) != 1 || obj.MaterialLibs[0] != "planet.mtl" {
		t.Errorf("expected mtllib planet.mtl, got %v", obj.MaterialLibs)
	}

	// usemtl surface is reopened, so there are two groups.
	if len(obj.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(obj.Groups))
	}
	surface, clouds := obj.Groups[0], obj.Groups[1]
	if surface.Material != "surface" || clouds.Material != "clouds" {
		t.Errorf("unexpected materials %q, %q", surface.Material, clouds.Material)
	}
	if len(surface.Triangles) != 3 {
		t.Errorf("expected quad fan + triangle = 3 triangles, got %d", len(surface.Triangles))
	}
	if obj.TriangleCount() != 4 {
		t.Errorf("expected 4 triangles total, got %d", obj.TriangleCount())
	}

	// Fan triangulation: (0,1,2), (0,2,3).
	second := surface.Triangles[1]
	if second[0].Position != 0 || second[1].Position != 2 || second[2].Position != 3 {
		t.Errorf("unexpected fan triangle %+v", second)
	}
	if second[2].TexCoord != 3 || second[2].Normal != 0 {
		t.Errorf("unexpected corner %+v", second[2])
	}
}

func TestParseOBJ_NegativeAndMissingIndices(t *testing.T) {
	obj, err := ParseOBJ([]byte(cubeFace))
	if err != nil {
		t.Fatal(err)
	}

	tri := obj.Groups[1].Triangles[0]
	want := [3]int{0, 1, 2}
	for i, c := range tri {
		if c.Position != want[i] {
			t.Errorf("corner %d position = %d, want %d", i, c.Position, want[i])
		}
		if c.TexCoord != -1 {
			t.Errorf("corner %d texcoord = %d, want -1", i, c.TexCoord)
		}
		if c.Normal != 0 {
			t.Errorf("corner %d normal = %d, want 0", i, c.Normal)
		}
	}

	last := obj.Groups[0].Triangles[2]
	if last[0].TexCoord != -1 || last[0].Normal != -1 {
		t.Errorf("bare index should have no texcoord or normal, got %+v", last[0])
	}
}

func TestParseOBJ_NoMaterial(t *testing.T) {
	obj, err := ParseOBJ([]byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(obj.Groups) != 1 || obj.Groups[0].Material != "" {
		t.Errorf("expected one unnamed group, got %+v", obj.Groups)
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"short vertex", "v 1 2\n", ErrMalformedOBJ},
		{"bad float", "v 1 x 3\n", ErrMalformedOBJ},
		{"index past end", "v 0 0 0\nf 1 2 3\n", ErrOBJIndexRange},
		{"zero index", "v 0 0 0\nv 0 0 0\nv 0 0 0\nf 0 1 2\n", ErrOBJIndexRange},
		{"two corners", "v 0 0 0\nv 0 0 0\nf 1 2\n", ErrOBJDegenerateFace},
		{"bad corner", "v 0 0 0\nf 1/2/3/4 1 1\n", ErrMalformedOBJ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseOBJ() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseOBJFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	obj, err := ParseOBJFile(path)
	if err != nil {
		t.Fatalf("ParseOBJFile failed: %v", err)
	}
	if obj.TriangleCount() != 1 {
		t.Errorf("expected 1 triangle, got %d", obj.TriangleCount())
	}

	if _, err := ParseOBJFile(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("expected error for missing file")
	}
}
