package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/mesh"
	"github.com/Faultbox/orrery/internal/engine/skybox"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/orbit"
	"github.com/Faultbox/orrery/internal/sim"
	"github.com/Faultbox/orrery/pkg/math"
)

// MeshLoader loads a model by asset path.
type MeshLoader interface {
	Load(name string) (*mesh.Mesh, error)
}

// sceneBody pairs a body with its uploaded model.
type sceneBody struct {
	body orbit.Body
	mesh *mesh.Mesh
}

// Scene holds the body table, its models and the skybox.
type Scene struct {
	system     *orbit.System
	bodies     []sceneBody
	meshes     map[string]*mesh.Mesh
	transforms []math.Mat4
	skybox     *skybox.Skybox
	log        *zap.Logger
}

// NewScene validates the body table. Models are not loaded yet.
func NewScene(bodies []orbit.Body) (*Scene, error) {
	system, err := orbit.NewSystem(bodies)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		system:     system,
		bodies:     make([]sceneBody, system.Len()),
		meshes:     make(map[string]*mesh.Mesh),
		transforms: make([]math.Mat4, 0, system.Len()),
		log:        logger.Named(logger.ComponentScene),
	}
	for i, b := range system.Bodies() {
		s.bodies[i].body = b
	}
	return s, nil
}

// LoadScene builds the scene and loads every model and the skybox.
func LoadScene(sc config.SceneConfig, src skybox.Source, loader MeshLoader, maxTextureSize int) (*Scene, error) {
	s, err := NewScene(sc.Bodies)
	if err != nil {
		return nil, err
	}
	if err := s.LoadMeshes(loader); err != nil {
		return nil, err
	}
	s.LoadSkybox(src, sc.Skybox, maxTextureSize)
	return s, nil
}

// LoadMeshes loads each body's model. Bodies sharing a file share the
// model, and bodies without one are not drawn.
func (s *Scene) LoadMeshes(loader MeshLoader) error {
	for i := range s.bodies {
		b := &s.bodies[i]
		if b.body.Mesh == "" {
			s.log.Debug("body has no mesh", zap.String("body", b.body.Name))
			continue
		}
		if m, ok := s.meshes[b.body.Mesh]; ok {
			b.mesh = m
			continue
		}

		m, err := loader.Load(b.body.Mesh)
		if err != nil {
			return fmt.Errorf("body %s: %w", b.body.Name, err)
		}
		s.meshes[b.body.Mesh] = m
		b.mesh = m
	}
	s.log.Info("scene loaded",
		zap.Int("bodies", len(s.bodies)),
		zap.Int("meshes", len(s.meshes)),
	)
	return nil
}

// LoadSkybox builds the cubemap. An empty face list disables it, and a
// failure only logs a warning.
func (s *Scene) LoadSkybox(src skybox.Source, faces []string, maxSize int) {
	if len(faces) == 0 {
		return
	}
	images, err := skybox.LoadFaces(src, faces, maxSize)
	if err == nil {
		s.skybox, err = skybox.New(images)
	}
	if err != nil {
		s.log.Warn("skybox unavailable", zap.Error(err))
	}
}

// Update recomputes every body's model matrix, in table order.
func (s *Scene) Update(st *sim.State) []math.Mat4 {
	s.transforms = s.system.Transforms(st, s.transforms)
	return s.transforms
}

// Len returns the number of bodies.
func (s *Scene) Len() int {
	return len(s.bodies)
}

// Close releases models and the skybox.
func (s *Scene) Close() {
	for _, m := range s.meshes {
		m.Delete()
	}
	s.meshes = make(map[string]*mesh.Mesh)
	if s.skybox != nil {
		s.skybox.Delete()
		s.skybox = nil
	}
}
