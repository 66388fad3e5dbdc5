package recording

import (
	"math"
	"sync"

	"github.com/gogpu/tin"
)

// ImageRef is a reference to an image in a ResourcePool.
type ImageRef uint32

// InvalidRef marks a primitive without an image.
const InvalidRef ImageRef = math.MaxUint32

// IsValid returns true if the reference is not InvalidRef.
func (r ImageRef) IsValid() bool {
	return r != InvalidRef
}

// ResourcePool stores the images referenced by recorded primitives.
// Adding the same *tin.Image twice returns the same reference, so an image
// drawn every frame is held once.
//
// ResourcePool is safe for concurrent use.
type ResourcePool struct {
	mu     sync.RWMutex
	images []*tin.Image
	index  map[*tin.Image]ImageRef
}

// NewResourcePool creates an empty pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		images: make([]*tin.Image, 0, 8),
		index:  make(map[*tin.Image]ImageRef),
	}
}

// AddImage adds img to the pool and returns its reference. A nil image
// yields InvalidRef.
func (p *ResourcePool) AddImage(img *tin.Image) ImageRef {
	if img == nil {
		return InvalidRef
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if ref, ok := p.index[img]; ok {
		return ref
	}
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := ImageRef(uint32(len(p.images)))
	p.images = append(p.images, img)
	p.index[img] = ref
	return ref
}

// setImage stores img under a fixed reference. Used when loading frames
// from a Store.
func (p *ResourcePool) setImage(ref ImageRef, img *tin.Image) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for int(ref) >= len(p.images) {
		p.images = append(p.images, nil)
	}
	p.images[ref] = img
	p.index[img] = ref
}

// Image returns the image for the given reference, or nil if the
// reference is invalid.
func (p *ResourcePool) Image(ref ImageRef) *tin.Image {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !ref.IsValid() || int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.images)
}

// Clear removes all images from the pool.
func (p *ResourcePool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.images = p.images[:0]
	clear(p.index)
}
