package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/starford/daylog/internal/models"
)

// LoadProjects reads projects.yml. A missing or empty file yields an
// empty list, not an error; the reference lists are optional.
func (s *Store) LoadProjects() ([]models.Project, error) {
	var out []models.Project
	if err := loadYAML(s.ProjectsPath(), &out); err != nil {
		return nil, fmt.Errorf("storage: load projects: %w", err)
	}
	return out, nil
}

// SaveProjects writes the full project list back to projects.yml.
func (s *Store) SaveProjects(list []models.Project) error {
	if err := saveYAML(s.ProjectsPath(), list); err != nil {
		return fmt.Errorf("storage: save projects: %w", err)
	}
	return nil
}

// LoadPeople reads people.yml. Missing or empty yields an empty list.
func (s *Store) LoadPeople() ([]models.Person, error) {
	var out []models.Person
	if err := loadYAML(s.PeoplePath(), &out); err != nil {
		return nil, fmt.Errorf("storage: load people: %w", err)
	}
	return out, nil
}

// SavePeople writes the full people list back to people.yml.
func (s *Store) SavePeople(list []models.Person) error {
	if err := saveYAML(s.PeoplePath(), list); err != nil {
		return fmt.Errorf("storage: save people: %w", err)
	}
	return nil
}

// Initialize seeds a fresh base directory with example reference lists
// so a first-time user has something to autocomplete against. Existing
// files are never overwritten.
func (s *Store) Initialize() error {
	if _, err := os.Stat(s.ProjectsPath()); errors.Is(err, fs.ErrNotExist) {
		example := []models.Project{{
			Name:        "new-website",
			Jira:        "https://jira.example.com/projects/WWW-123",
			Description: "A project to create a new look on our website",
			Status:      "open",
		}}
		if err := s.SaveProjects(example); err != nil {
			return err
		}
	}
	if _, err := os.Stat(s.PeoplePath()); errors.Is(err, fs.ErrNotExist) {
		example := []models.Person{{
			Name:     "john",
			FullName: "John Smith",
			Email:    "john@example.com",
			Tel:      "555 123 3333",
			Company:  "foo works",
		}}
		if err := s.SavePeople(example); err != nil {
			return err
		}
	}
	return nil
}

func loadYAML(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return yaml.Unmarshal(data, target)
}

func saveYAML(path string, value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}
