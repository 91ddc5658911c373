package render

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshServer_LoadPacksBackToBack(t *testing.T) {
	server := NewMeshServer()

	a, err := server.Load([]float32{0, 0, 0, 1, 0, 0})
	require.NoError(t, err)
	b, err := server.Load([]float32{0, 0, 0, 0, 1, 0, 0, 1, 0, 1, 1, 0})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	_, err = uuid.Parse(string(a))
	assert.NoError(t, err, "handles are uuids")

	meshA, ok := server.Mesh(a)
	require.True(t, ok)
	meshB, ok := server.Mesh(b)
	require.True(t, ok)

	assert.Equal(t, uint32(0), meshA.FirstVertex)
	assert.Equal(t, uint32(2), meshA.VertexCount)
	assert.Equal(t, uint32(2), meshB.FirstVertex)
	assert.Equal(t, uint32(4), meshB.VertexCount)
	assert.Len(t, server.Packed(), 18)
	assert.Equal(t, uint(2), server.Version())
}

func TestMeshServer_LoadCopiesInput(t *testing.T) {
	server := NewMeshServer()
	points := []float32{0, 0, 0, 1, 1, 0}
	id, err := server.Load(points)
	require.NoError(t, err)

	points[0] = 42
	mesh, _ := server.Mesh(id)
	assert.Equal(t, float32(0), mesh.Points()[0])
	assert.Equal(t, float32(0), server.Packed()[0])
}

func TestMeshServer_RejectsMalformedLists(t *testing.T) {
	server := NewMeshServer()

	_, err := server.Load(nil)
	assert.Error(t, err)
	_, err = server.Load([]float32{0, 0})
	assert.Error(t, err)
	_, err = server.Load([]float32{0, 0, 0})
	assert.Error(t, err, "a single point is not a segment")
	assert.Equal(t, uint(0), server.Version())
}

func TestMeshServer_UnknownHandle(t *testing.T) {
	_, ok := NewMeshServer().Mesh("missing")
	assert.False(t, ok)
}
