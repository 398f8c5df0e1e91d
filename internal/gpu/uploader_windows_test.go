//go:build windows

package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numeracy/internal/transform"
)

func newTestUploader(t *testing.T) *Uploader {
	t.Helper()
	if !IsAvailable() {
		t.Skip("WebGPU not available")
	}
	u, err := NewUploader()
	require.NoError(t, err)
	t.Cleanup(u.Release)
	return u
}

func TestUploadVertices(t *testing.T) {
	u := newTestUploader(t)

	buf, err := UploadVertices(u, vertices(t, 10, 3))
	require.NoError(t, err)
	assert.Equal(t, uint64(120), buf.Size)
	require.NotNil(t, buf.Layout)
	assert.Equal(t, 3, buf.Layout.VertexCount)
}

func TestUploadUniform(t *testing.T) {
	u := newTestUploader(t)

	buf, err := UploadUniform(u, transform.NewCamera().Projection(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(64), buf.Size)
	assert.Nil(t, buf.Layout)
}

func TestReleaseTwice(t *testing.T) {
	u := newTestUploader(t)
	u.Release()
	u.Release()

	_, err := UploadUniform(u, transform.Scale(1, 1, 1))
	assert.ErrorIs(t, err, ErrUnavailable)
}
