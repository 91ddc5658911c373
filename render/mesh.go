package render

import (
	"fmt"

	"github.com/bocanonline/demo2d/scene"
	"github.com/google/uuid"
)

// MeshAsset is one uploaded line list inside the packed vertex array.
type MeshAsset struct {
	FirstVertex uint32
	VertexCount uint32
	points      []float32
}

func (m MeshAsset) Points() []float32 {
	return m.points
}

// MeshServer keeps every uploaded vertex list packed back to back so a renderer can
// upload them as a single buffer and address each by first vertex and count.
type MeshServer struct {
	meshes   map[scene.BufferHandle]MeshAsset
	vertices []float32
	version  uint
}

func NewMeshServer() *MeshServer {
	return &MeshServer{
		meshes: make(map[scene.BufferHandle]MeshAsset),
	}
}

func (server *MeshServer) Load(points []float32) (scene.BufferHandle, error) {
	if len(points) == 0 || len(points)%3 != 0 {
		return "", fmt.Errorf("vertex list must hold whole xyz triples, got %d floats", len(points))
	}
	if (len(points)/3)%2 != 0 {
		return "", fmt.Errorf("line list needs an even number of points, got %d", len(points)/3)
	}

	id := makeBufferHandle()
	copied := append([]float32(nil), points...)

	server.meshes[id] = MeshAsset{
		FirstVertex: uint32(len(server.vertices) / 3),
		VertexCount: uint32(len(points) / 3),
		points:      copied,
	}
	server.vertices = append(server.vertices, copied...)
	server.version++

	return id, nil
}

func (server *MeshServer) Mesh(id scene.BufferHandle) (MeshAsset, bool) {
	mesh, ok := server.meshes[id]
	return mesh, ok
}

// Packed returns all vertices in upload order.
func (server *MeshServer) Packed() []float32 {
	return server.vertices
}

// Version changes every time a mesh is added.
func (server *MeshServer) Version() uint {
	return server.version
}

func makeBufferHandle() scene.BufferHandle {
	return scene.BufferHandle(uuid.NewString())
}
