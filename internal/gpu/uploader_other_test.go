//go:build !windows

package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploaderUnavailable(t *testing.T) {
	assert.False(t, IsAvailable())

	u, err := NewUploader()
	assert.Nil(t, u)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = UploadVertices(&Uploader{}, vertices(t, 7, 1))
	assert.ErrorIs(t, err, ErrUnavailable)
}
