package ports

// Watcher monitors a single file and reports when its content may have
// changed. Editors that save by writing a temp file and renaming it over the
// original must still be reported. Only one Watch call should be active at a
// time.
type Watcher interface {
	// Watch starts monitoring path. onChange is called with the absolute path
	// of the file after each (debounced) change, from the watcher goroutine.
	// Returns an error if the file's directory doesn't exist or cannot be
	// watched.
	Watch(path string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
