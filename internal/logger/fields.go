package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Component names passed to Named by the frame loop's collaborators.
const (
	ComponentApp    = "app"
	ComponentScene  = "scene"
	ComponentRender = "render"
	ComponentMesh   = "mesh"
	ComponentWindow = "window"
	ComponentAudio  = "audio"
)

// Sim returns a field describing the simulation state: elapsed simulation
// time, speed multiplier and global spin angle in radians.
func Sim(elapsed, speed, spin float32) zap.Field {
	return zap.Object("sim", zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddFloat32("t", elapsed)
		enc.AddFloat32("speed", speed)
		enc.AddFloat32("spin", spin)
		return nil
	}))
}
