package recording

import (
	"image"
	"sync"
	"testing"

	"github.com/gogpu/tin"
)

func newTestImage(w, h int) *tin.Image {
	return tin.NewImage(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func TestNewResourcePool(t *testing.T) {
	pool := NewResourcePool()
	if pool.ImageCount() != 0 {
		t.Errorf("ImageCount() = %d, want 0", pool.ImageCount())
	}
}

func TestResourcePool_AddImageDeduplicates(t *testing.T) {
	pool := NewResourcePool()
	a, b := newTestImage(2, 2), newTestImage(3, 3)

	refA := pool.AddImage(a)
	refB := pool.AddImage(b)
	if refA == refB {
		t.Fatalf("distinct images share reference %d", refA)
	}
	if again := pool.AddImage(a); again != refA {
		t.Errorf("AddImage(a) twice = %d, %d", refA, again)
	}
	if pool.ImageCount() != 2 {
		t.Errorf("ImageCount() = %d, want 2", pool.ImageCount())
	}
	if pool.Image(refB) != b {
		t.Error("Image(refB) did not return b")
	}
}

func TestResourcePool_InvalidRefs(t *testing.T) {
	pool := NewResourcePool()
	if ref := pool.AddImage(nil); ref.IsValid() {
		t.Errorf("AddImage(nil) = %d, want InvalidRef", ref)
	}
	if pool.Image(InvalidRef) != nil {
		t.Error("Image(InvalidRef) should be nil")
	}
	if pool.Image(42) != nil {
		t.Error("Image(42) on empty pool should be nil")
	}
}

func TestResourcePool_Clear(t *testing.T) {
	pool := NewResourcePool()
	img := newTestImage(1, 1)
	pool.AddImage(img)
	pool.Clear()

	if pool.ImageCount() != 0 {
		t.Errorf("ImageCount() after Clear = %d", pool.ImageCount())
	}
	if ref := pool.AddImage(img); ref != 0 {
		t.Errorf("AddImage after Clear = %d, want 0", ref)
	}
}

func TestResourcePool_ConcurrentAdd(t *testing.T) {
	pool := NewResourcePool()
	img := newTestImage(1, 1)

	var wg sync.WaitGroup
	refs := make([]ImageRef, 50)
	for i := range refs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			refs[i] = pool.AddImage(img)
		}()
	}
	wg.Wait()

	for _, ref := range refs {
		if ref != refs[0] {
			t.Fatalf("concurrent AddImage returned %d and %d", refs[0], ref)
		}
	}
}
