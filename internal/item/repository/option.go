package repository

// ListItemsOptions holds filter and pagination parameters for listing items.
// Zero Limit means fetch everything: the repository aggregates platform
// pages transparently.
type ListItemsOptions struct {
	Name   string // exact-name filter (optional)
	Limit  int
	Offset int
}

// UploadItemOptions holds the parameters for uploading a local file.
type UploadItemOptions struct {
	LocalPath  string
	RemoteName string // defaults to the base name of LocalPath
}
