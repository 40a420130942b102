package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/guccialex/kiss3d/pkg/resource"
)

// buildShape generates a named procedural mesh.
func buildShape(name string, dynamic bool) (*resource.Mesh, error) {
	switch name {
	case "quad":
		return buildQuad(dynamic), nil
	case "cube":
		return buildCube(dynamic), nil
	default:
		return nil, fmt.Errorf("unknown shape %q (see 'meshtool shapes')", name)
	}
}

func shapeNames() []string {
	return []string{"quad", "cube"}
}

// buildQuad creates a unit quad in the XY plane with texture coordinates.
func buildQuad(dynamic bool) *resource.Mesh {
	coords := []mgl32.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	}
	faces := []resource.Face{
		{0, 1, 2},
		{0, 2, 3},
	}
	uvs := []mgl32.Vec2{
		{0, 0},
		{1, 0},
		{1, 1},
		{0, 1},
	}
	return resource.NewMesh(coords, faces, nil, uvs, dynamic)
}

// buildCube creates a unit cube centered on the origin, without texture
// coordinates.
func buildCube(dynamic bool) *resource.Mesh {
	coords := []mgl32.Vec3{
		{-0.5, -0.5, -0.5},
		{0.5, -0.5, -0.5},
		{0.5, 0.5, -0.5},
		{-0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5},
		{0.5, -0.5, 0.5},
		{0.5, 0.5, 0.5},
		{-0.5, 0.5, 0.5},
	}
	faces := []resource.Face{
		{0, 2, 1}, {0, 3, 2}, // back
		{4, 5, 6}, {4, 6, 7}, // front
		{0, 1, 5}, {0, 5, 4}, // bottom
		{3, 6, 2}, {3, 7, 6}, // top
		{0, 4, 7}, {0, 7, 3}, // left
		{1, 2, 6}, {1, 6, 5}, // right
	}
	return resource.NewMesh(coords, faces, nil, nil, dynamic)
}
