// Package formats provides parsers for the Wavefront model formats the
// scene is built from.
package formats

// Note: OBJ geometry is implemented in obj.go
// Note: MTL material libraries are implemented in mtl.go
