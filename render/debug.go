package render

import (
	"os"
	"strings"

	"github.com/gogpu/blinc"
)

// DebugConfig enables visual debugging overlays drawn after all
// frame content.
type DebugConfig struct {
	// TextBounds outlines each text element's box and marks its
	// baseline and vertical extents.
	TextBounds bool
}

// DebugFromEnv reads BLINC_DEBUG. "text" enables text overlays;
// "1", "true" and "all" enable everything. Matching ignores case.
func DebugFromEnv() DebugConfig {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("BLINC_DEBUG")))
	switch v {
	case "text":
		return DebugConfig{TextBounds: true}
	case "1", "true", "all":
		return DebugConfig{TextBounds: true}
	default:
		return DebugConfig{}
	}
}

func (d DebugConfig) enabled() bool {
	return d.TextBounds
}

// Marker colors for the text overlay.
var (
	debugBoxColor       = blinc.RGBA(0, 1, 1, 0.8)
	debugBaselineColor  = blinc.RGBA(1, 0, 1, 0.9)
	debugAscenderColor  = blinc.RGBA(0, 1, 0, 0.9)
	debugDescenderColor = blinc.RGBA(1, 1, 0, 0.9)
)
