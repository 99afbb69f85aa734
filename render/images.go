package render

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/gogpu/blinc"
	"github.com/gogpu/blinc/cache"
	"github.com/gogpu/blinc/internal/parallel"
)

// ImageLoader resolves a source key to RGBA pixels. FileImageLoader
// is the default; hosts embedding assets supply their own.
type ImageLoader func(source string) (pixels []byte, width, height uint32, err error)

// FileImageLoader reads and decodes an image file from disk.
func FileImageLoader(source string) ([]byte, uint32, uint32, error) {
	f, err := os.Open(source)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode %s: %w", source, err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, w*h*4)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, a := img.At(x, y).RGBA()
			pixels[i+0] = byte(r >> 8)
			pixels[i+1] = byte(g >> 8)
			pixels[i+2] = byte(bb >> 8)
			pixels[i+3] = byte(a >> 8)
			i += 4
		}
	}
	return pixels, uint32(w), uint32(h), nil
}

// imageStore caches uploaded images by source key. Failed loads are
// not negatively cached: a missing file is retried every frame so it
// appears as soon as it exists.
type imageStore struct {
	lru    *cache.LRU[string, ImageHandle]
	loader ImageLoader
	pool   *parallel.WorkerPool
}

func newImageStore(capacity int, loader ImageLoader, destroy func(ImageHandle)) *imageStore {
	s := &imageStore{
		lru:    cache.New[string, ImageHandle](capacity),
		loader: loader,
		pool:   parallel.NewWorkerPool(0),
	}
	s.lru.OnEvict(func(_ string, h ImageHandle) { destroy(h) })
	return s
}

type loadResult struct {
	pixels []byte
	w, h   uint32
	err    error
}

// preload ensures every referenced image is resident. Misses decode
// concurrently on the pool, then upload on the calling goroutine
// since the GPU queue is not shared. Load failures log and skip.
func (s *imageStore) preload(elems []ImageElement, upload func(string, []byte, uint32, uint32) (ImageHandle, error)) {
	var missing []string
	seen := map[string]bool{}
	for i := range elems {
		src := elems[i].Source
		if seen[src] || s.lru.Contains(src) {
			continue
		}
		seen[src] = true
		missing = append(missing, src)
	}
	if len(missing) == 0 {
		return
	}

	results := make([]loadResult, len(missing))
	work := make([]func(), len(missing))
	for i := range missing {
		i := i
		work[i] = func() {
			r := &results[i]
			r.pixels, r.w, r.h, r.err = s.loader(missing[i])
		}
	}
	s.pool.ExecuteAll(work)

	for i, src := range missing {
		r := &results[i]
		if r.err != nil {
			blinc.Logger().Warn("image load failed", "source", src, "err", r.err)
			continue
		}
		handle, err := upload(src, r.pixels, r.w, r.h)
		if err != nil {
			blinc.Logger().Warn("image upload failed", "source", src, "err", err)
			continue
		}
		s.lru.Put(src, handle)
	}
}

func (s *imageStore) get(source string) (ImageHandle, bool) {
	return s.lru.Get(source)
}

func (s *imageStore) close() {
	s.pool.Close()
	s.lru.Clear()
}
