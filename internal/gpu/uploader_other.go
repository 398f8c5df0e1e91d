//go:build !windows

package gpu

type handle = struct{}

// Uploader is unavailable on this platform.
type Uploader struct{}

// NewUploader returns ErrUnavailable on this platform.
func NewUploader() (*Uploader, error) {
	return nil, ErrUnavailable
}

func (u *Uploader) upload([]byte, uint64, usage) (*Buffer, error) {
	return nil, ErrUnavailable
}

// Release does nothing on this platform.
func (u *Uploader) Release() {}

// IsAvailable reports false on this platform.
func IsAvailable() bool {
	return false
}
