package repository

// CreateProjectOptions holds the parameters for creating a project.
type CreateProjectOptions struct {
	Name string
}

// GetOneProjectOptions holds filter parameters for fetching a single project.
// ID takes precedence over Name when both are set.
type GetOneProjectOptions struct {
	ID   string
	Name string
}
