// Package skybox draws the star background as a cubemap pinned to the camera.
package skybox

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orrery/internal/engine/renderer/shaders"
	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/pkg/math"
)

// Source reads asset files by slash-separated path.
type Source interface {
	Load(name string) ([]byte, error)
}

// cubeVertices is a unit cube as 12 triangles, wound to face inwards.
var cubeVertices = []float32{
	-1, 1, -1, -1, -1, -1, 1, -1, -1, 1, -1, -1, 1, 1, -1, -1, 1, -1,
	-1, -1, 1, -1, -1, -1, -1, 1, -1, -1, 1, -1, -1, 1, 1, -1, -1, 1,
	1, -1, -1, 1, -1, 1, 1, 1, 1, 1, 1, 1, 1, 1, -1, 1, -1, -1,
	-1, -1, 1, -1, 1, 1, 1, 1, 1, 1, 1, 1, 1, -1, 1, -1, -1, 1,
	-1, 1, -1, 1, 1, -1, 1, 1, 1, 1, 1, 1, -1, 1, 1, -1, 1, -1,
	-1, -1, -1, -1, -1, 1, 1, -1, -1, 1, -1, -1, -1, -1, 1, 1, -1, 1,
}

// Skybox is an uploaded cubemap with its cube geometry.
type Skybox struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
	tex     uint32
}

// LoadFaces decodes six face images ordered +X, -X, +Y, -Y, +Z, -Z and
// scales them to a common square size no larger than maxSize.
func LoadFaces(src Source, names []string, maxSize int) ([6]*image.RGBA, error) {
	var faces [6]*image.RGBA
	if len(names) != 6 {
		return faces, fmt.Errorf("skybox needs 6 faces, got %d", len(names))
	}

	// Faces that share a file are decoded once.
	decoded := make(map[string]*image.RGBA)
	size := 0
	for i, name := range names {
		img, ok := decoded[name]
		if !ok {
			raw, err := src.Load(name)
			if err != nil {
				return faces, fmt.Errorf("skybox face %d: %w", i, err)
			}
			img, err = texture.Decode(name, raw)
			if err != nil {
				return faces, fmt.Errorf("skybox face %d: %w", i, err)
			}
			decoded[name] = img
		}
		faces[i] = img
		b := img.Bounds()
		size = max(size, b.Dx(), b.Dy())
	}
	if maxSize > 0 {
		size = min(size, maxSize)
	}

	for i, f := range faces {
		faces[i] = square(f, size)
	}
	return faces, nil
}

// square stretches img to size x size.
func square(img *image.RGBA, size int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return img
	}
	return texture.Stretch(img, size, size)
}

// New uploads the faces and builds the cube. Must be called after the GL
// context exists.
func New(faces [6]*image.RGBA) (*Skybox, error) {
	program, err := shader.NewProgram(shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("skybox shader: %w", err)
	}
	tex, err := texture.UploadCubemap(faces)
	if err != nil {
		program.Delete()
		return nil, err
	}

	s := &Skybox{program: program, tex: tex}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, unsafe.Pointer(&cubeVertices[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return s, nil
}

// Draw renders the cubemap behind everything already drawn. The view
// translation is stripped so the sky stays centered on the camera.
func (s *Skybox) Draw(view, projection math.Mat4) {
	gl.DepthFunc(gl.LEQUAL)
	s.program.Use()
	s.program.SetMat4("view", view.WithoutTranslation())
	s.program.SetMat4("projection", projection)
	s.program.SetInt("skybox", 0)

	gl.BindVertexArray(s.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.tex)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(cubeVertices)/3))
	gl.BindVertexArray(0)
	gl.DepthFunc(gl.LESS)
}

// Delete releases GPU resources.
func (s *Skybox) Delete() {
	texture.Delete(s.tex)
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
	s.program.Delete()
}
