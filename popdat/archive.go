package popdat

// Archive is the top-level facade an orchestrator drives: open, walk,
// close. It pairs a Container with the Generation that was used to
// parse it, so downstream operations (palette resolution, extraction)
// don't need the caller to thread the generation separately.
type Archive struct {
	*Container
	Generation Generation
}

// OpenArchive opens the container at path under the given generation's
// footer layout and wraps it in an Archive.
func OpenArchive(path string, gen Generation) (*Archive, error) {
	c, err := Open(path, gen)
	if err != nil {
		return nil, err
	}
	return &Archive{Container: c, Generation: gen}, nil
}

// FindPalette resolves the archive's active palette (see FindPalette).
func (a *Archive) FindPalette() (*GenericPalette, Warnings, error) {
	return FindPalette(a.Container, a.Generation)
}

// Extract walks every entry and routes it to a file under opts.BaseDir
// (see Extract).
func (a *Archive) Extract(opts ExtractOptions) error {
	return Extract(a.Container, a.Generation, opts)
}
