package model

// Project is the top-level namespace owning datasets.
type Project struct {
	ID        string
	Name      string
	CreatedAt string // RFC3339 creation time string from the platform
}

// Dataset is a named collection of items within a project.
type Dataset struct {
	ID         string
	Name       string
	ProjectID  string
	ItemsCount int
	CreatedAt  string
}

// Item is a single uploaded asset stored in a dataset. The platform
// assigns the ID at upload time; the name is the uploaded filename and
// is unique within the dataset's current live set.
type Item struct {
	ID        string
	Name      string
	DatasetID string
	Size      int64
	MimeType  string
	CreatedAt string
}
