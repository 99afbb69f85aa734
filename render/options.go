package render

import "github.com/gogpu/blinc/text"

const defaultImageCacheCapacity = 128

type config struct {
	imageCacheCapacity int
	imageLoader        ImageLoader
	fontSource         *text.Source
	metrics            text.DecorationMetrics
	debug              DebugConfig
}

func defaultConfig() config {
	return config{
		imageCacheCapacity: defaultImageCacheCapacity,
		imageLoader:        FileImageLoader,
		metrics:            text.DefaultDecorationMetrics(),
		debug:              DebugFromEnv(),
	}
}

// Option configures a RenderContext.
type Option func(*config)

// WithImageCacheCapacity sets how many decoded images stay resident.
func WithImageCacheCapacity(n int) Option {
	return func(c *config) { c.imageCacheCapacity = n }
}

// WithImageLoader replaces the disk loader, for embedded or remote
// assets.
func WithImageLoader(loader ImageLoader) Option {
	return func(c *config) {
		if loader != nil {
			c.imageLoader = loader
		}
	}
}

// WithFontSource sets the face used for all text. Text elements are
// skipped until a source is set.
func WithFontSource(src *text.Source) Option {
	return func(c *config) { c.fontSource = src }
}

// WithDecorationMetrics overrides the underline and strikethrough
// placement ratios.
func WithDecorationMetrics(m text.DecorationMetrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithDebug overrides the BLINC_DEBUG environment configuration.
func WithDebug(d DebugConfig) Option {
	return func(c *config) { c.debug = d }
}
