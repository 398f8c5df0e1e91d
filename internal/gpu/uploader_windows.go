//go:build windows

package gpu

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
)

type handle = *wgpu.Buffer

// Uploader owns a WebGPU device and the buffers created on it.
type Uploader struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	mu      sync.Mutex
	buffers []*Buffer
}

// NewUploader opens the default high-performance adapter.
// Returns ErrUnavailable if the native library or an adapter is missing.
func NewUploader() (u *Uploader, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			u = nil
			err = fmt.Errorf("%w: native library: %v", ErrUnavailable, r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		instance.Release()
		return nil, fmt.Errorf("%w: request adapter: %w", ErrUnavailable, err)
	}

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: request device: %w", ErrUnavailable, err)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: no queue", ErrUnavailable)
	}

	return &Uploader{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    queue,
	}, nil
}

// upload creates a buffer of size bytes mapped at creation and copies data
// into it. Bytes past len(data) stay zero.
func (u *Uploader) upload(data []byte, size uint64, kind usage) (*Buffer, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.device == nil {
		return nil, ErrUnavailable
	}

	flags := wgpu.BufferUsageCopyDst
	switch kind {
	case usageVertex:
		flags |= wgpu.BufferUsageVertex
	case usageUniform:
		flags |= wgpu.BufferUsageUniform
	}

	buffer := u.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            flags,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})
	if size > 0 {
		mappedPtr := buffer.GetMappedRange(0, size)
		//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
		mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
		copy(mappedSlice, data)
	}
	buffer.Unmap()

	buf := &Buffer{Size: size, handle: buffer}
	u.buffers = append(u.buffers, buf)
	return buf, nil
}

// Release frees every buffer created by the uploader and the device.
// It is safe to call more than once.
func (u *Uploader) Release() {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, b := range u.buffers {
		b.handle.Release()
	}
	u.buffers = nil

	if u.device == nil {
		return
	}
	u.queue.Release()
	u.device.Release()
	u.adapter.Release()
	u.instance.Release()
	u.queue, u.device, u.adapter, u.instance = nil, nil, nil, nil
}

// IsAvailable reports whether a WebGPU adapter can be opened.
func IsAvailable() (available bool) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}
