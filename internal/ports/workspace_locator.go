package ports

// WorkspaceLocator finds a profilegen workspace root starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
