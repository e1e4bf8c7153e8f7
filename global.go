package argmap

// A single package-level store gives the "import and use anywhere"
// ergonomics without hidden state being required anywhere: every API
// is also available on explicitly constructed Store instances, and
// embedding programs that prefer injection can ignore these wrappers
// entirely. The pattern mirrors flag.CommandLine.

var defaultStore = New()

// Default returns the package-level store.
func Default() *Store {
	return defaultStore
}

// SetDefault calls SetDefault on the package-level store.
func SetDefault(key string, value any) any {
	return defaultStore.SetDefault(key, value)
}

// Get calls Get on the package-level store.
func Get(key string) (any, error) {
	return defaultStore.Get(key)
}

// Contains calls Contains on the package-level store.
func Contains(key string) bool {
	return defaultStore.Contains(key)
}

// Merge calls Merge on the package-level store.
func Merge(parser Parser, configFile string, argv []string) error {
	return defaultStore.Merge(parser, configFile, argv)
}

// Save calls Save on the package-level store.
func Save(path string) error {
	return defaultStore.Save(path)
}
