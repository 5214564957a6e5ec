package codesearch

// Global settings keys.
const (
	KeySearchPath = "path_csearch"
	KeyIndexPath  = "path_cindex"
)

// GlobalSettings is a read-only key-value store of tool-level settings.
type GlobalSettings interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) (string, bool)
}

// Ensure in-memory stores implement GlobalSettings.
var (
	_ GlobalSettings = MapSettings(nil)
	_ GlobalSettings = LayeredSettings(nil)
)

// MapSettings is an in-memory GlobalSettings.
type MapSettings map[string]string

func (m MapSettings) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// LayeredSettings looks a key up in each layer in order. The first layer
// that holds the key wins, so user settings go before tool defaults.
type LayeredSettings []GlobalSettings

func (l LayeredSettings) Get(key string) (string, bool) {
	for _, layer := range l {
		if layer == nil {
			continue
		}
		if v, ok := layer.Get(key); ok {
			return v, true
		}
	}
	return "", false
}
