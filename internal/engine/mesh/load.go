package mesh

import (
	"fmt"
	"path"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/pkg/formats"
)

// Source reads asset files by slash-separated path.
type Source interface {
	Load(name string) ([]byte, error)
}

// Loader loads OBJ models and their diffuse textures, sharing textures
// between models that reference the same file.
type Loader struct {
	src            Source
	maxTextureSize int
	fallback       uint32
	textures       map[string]uint32
	log            *zap.Logger
}

// NewLoader creates a loader. Must be called after the GL context exists.
func NewLoader(src Source, maxTextureSize int) *Loader {
	return &Loader{
		src:            src,
		maxTextureSize: maxTextureSize,
		fallback:       texture.Fallback(),
		textures:       make(map[string]uint32),
		log:            logger.Named(logger.ComponentMesh),
	}
}

// ReadData parses an OBJ file and its material libraries into mesh data.
// Missing material libraries are logged and skipped.
func ReadData(src Source, name string, log *zap.Logger) (*Data, error) {
	raw, err := src.Load(name)
	if err != nil {
		return nil, err
	}
	obj, err := formats.ParseOBJ(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	dir := path.Dir(name)
	lib := &formats.MTL{Materials: make(map[string]*formats.Material)}
	for _, mtlName := range obj.MaterialLibs {
		mtlPath := path.Join(dir, mtlName)
		mtlRaw, err := src.Load(mtlPath)
		if err != nil {
			log.Warn("material library missing", zap.String("path", mtlPath), zap.Error(err))
			continue
		}
		parsed, err := formats.ParseMTL(mtlRaw)
		if err != nil {
			log.Warn("material library invalid", zap.String("path", mtlPath), zap.Error(err))
			continue
		}
		for k, v := range parsed.Materials {
			lib.Materials[k] = v
		}
	}

	return Build(obj, lib, dir), nil
}

// Load reads, builds and uploads a model.
func (l *Loader) Load(name string) (*Mesh, error) {
	data, err := ReadData(l.src, name, l.log)
	if err != nil {
		return nil, err
	}

	textures := make([]uint32, len(data.Groups))
	for i, g := range data.Groups {
		textures[i] = l.texture(g.DiffuseMap)
	}

	m := Upload(name, data, textures)
	l.log.Debug("mesh loaded",
		zap.String("name", name),
		zap.Int("vertices", len(data.Vertices)),
		zap.Int("triangles", len(data.Indices)/3),
		zap.Int("groups", len(data.Groups)),
	)
	return m, nil
}

// texture returns the cached texture for a path, or the white fallback.
func (l *Loader) texture(name string) uint32 {
	if name == "" {
		return l.fallback
	}
	if id, ok := l.textures[name]; ok {
		return id
	}

	id := l.fallback
	raw, err := l.src.Load(name)
	if err == nil {
		img, decodeErr := texture.Decode(name, raw)
		if decodeErr == nil {
			id = texture.Upload2D(texture.FlipVertical(texture.Fit(img, l.maxTextureSize)))
		}
		err = decodeErr
	}
	if err != nil {
		l.log.Warn("texture unavailable, using fallback", zap.String("path", name), zap.Error(err))
	}
	l.textures[name] = id
	return id
}

// Close releases all cached textures.
func (l *Loader) Close() {
	ids := make([]uint32, 0, len(l.textures)+1)
	ids = append(ids, l.fallback)
	for _, id := range l.textures {
		if id != l.fallback {
			ids = append(ids, id)
		}
	}
	texture.Delete(ids...)
	l.textures = make(map[string]uint32)
}
