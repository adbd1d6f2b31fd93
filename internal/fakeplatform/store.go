package fakeplatform

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Wire entities served by the fake platform. The SDK repositories decode
// these shapes; keep the field tags in sync with them.

type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

type Dataset struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ProjectID  string `json:"projectId"`
	ItemsCount int    `json:"itemsCount"`
	CreatedAt  string `json:"createdAt"`
}

type Item struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	DatasetID string `json:"datasetId"`
	Size      int64  `json:"size"`
	MimeType  string `json:"mimeType"`
	CreatedAt string `json:"createdAt"`
}

// Store is the in-memory backing state. All access is mutex-guarded;
// items keep insertion order per dataset so listings are stable.
type Store struct {
	mu        sync.Mutex
	projects  map[string]*Project
	datasets  map[string]*Dataset
	items     map[string]*Item
	itemOrder map[string][]string // datasetID -> item ids, insertion order
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		projects:  make(map[string]*Project),
		datasets:  make(map[string]*Dataset),
		items:     make(map[string]*Item),
		itemOrder: make(map[string][]string),
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (s *Store) CreateProject(name string) Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &Project{ID: uuid.NewString(), Name: name, CreatedAt: now()}
	s.projects[p.ID] = p
	return *p
}

func (s *Store) GetProject(id string) (Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return Project{}, false
	}
	return *p, true
}

// ListProjects returns all projects, optionally filtered by exact name.
func (s *Store) ListProjects(name string) []Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		if name != "" && p.Name != name {
			continue
		}
		projects = append(projects, *p)
	}
	return projects
}

// DeleteProject removes a project and cascades to its datasets and items.
func (s *Store) DeleteProject(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return false
	}
	delete(s.projects, id)

	for dsID, ds := range s.datasets {
		if ds.ProjectID == id {
			s.deleteDatasetLocked(dsID)
		}
	}
	return true
}

func (s *Store) CreateDataset(projectID, name string) (Dataset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[projectID]; !ok {
		return Dataset{}, false
	}

	d := &Dataset{ID: uuid.NewString(), Name: name, ProjectID: projectID, CreatedAt: now()}
	s.datasets[d.ID] = d
	return *d, true
}

func (s *Store) GetDataset(id string) (Dataset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.datasets[id]
	if !ok {
		return Dataset{}, false
	}
	return *d, true
}

func (s *Store) ListDatasets(projectID, name string) []Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()

	datasets := make([]Dataset, 0)
	for _, d := range s.datasets {
		if d.ProjectID != projectID {
			continue
		}
		if name != "" && d.Name != name {
			continue
		}
		datasets = append(datasets, *d)
	}
	return datasets
}

func (s *Store) DeleteDataset(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.datasets[id]; !ok {
		return false
	}
	s.deleteDatasetLocked(id)
	return true
}

func (s *Store) deleteDatasetLocked(id string) {
	delete(s.datasets, id)
	for _, itemID := range s.itemOrder[id] {
		delete(s.items, itemID)
	}
	delete(s.itemOrder, id)
}

// AddItem stores a new item in the dataset and assigns its id.
func (s *Store) AddItem(datasetID, name string, size int64, mimeType string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, ok := s.datasets[datasetID]
	if !ok {
		return Item{}, false
	}

	it := &Item{
		ID:        uuid.NewString(),
		Name:      name,
		DatasetID: datasetID,
		Size:      size,
		MimeType:  mimeType,
		CreatedAt: now(),
	}
	s.items[it.ID] = it
	s.itemOrder[datasetID] = append(s.itemOrder[datasetID], it.ID)
	ds.ItemsCount++
	return *it, true
}

func (s *Store) GetItem(datasetID, itemID string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[itemID]
	if !ok || it.DatasetID != datasetID {
		return Item{}, false
	}
	return *it, true
}

// ListItems returns one page of items in insertion order plus the total
// count after filtering. ok is false when the dataset does not exist.
func (s *Store) ListItems(datasetID, name string, limit, offset int) (page []Item, total int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.datasets[datasetID]; !exists {
		return nil, 0, false
	}

	matched := make([]Item, 0)
	for _, itemID := range s.itemOrder[datasetID] {
		it := s.items[itemID]
		if name != "" && it.Name != name {
			continue
		}
		matched = append(matched, *it)
	}

	total = len(matched)
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], total, true
}

func (s *Store) DeleteItem(datasetID, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[itemID]
	if !ok || it.DatasetID != datasetID {
		return false
	}
	delete(s.items, itemID)

	order := s.itemOrder[datasetID]
	for i, id := range order {
		if id == itemID {
			s.itemOrder[datasetID] = append(order[:i], order[i+1:]...)
			break
		}
	}
	if ds, ok := s.datasets[datasetID]; ok {
		ds.ItemsCount--
	}
	return true
}
