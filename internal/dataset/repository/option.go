package repository

// CreateDatasetOptions holds the parameters for creating a dataset.
type CreateDatasetOptions struct {
	ProjectID string
	Name      string
}

// GetOneDatasetOptions holds filter parameters for fetching a single dataset.
// ID takes precedence; otherwise ProjectID + Name resolve the dataset.
type GetOneDatasetOptions struct {
	ID        string
	ProjectID string
	Name      string
}
