package ports

// WorkspaceLocator finds a skillglyph workspace root starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
