package storage

import (
	"os"
	"reflect"
	"testing"

	"github.com/starford/daylog/internal/models"
)

func TestLoadProjects_MissingFile(t *testing.T) {
	s := testStore(t)
	projects, err := s.LoadProjects()
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 0 {
		t.Errorf("projects = %v, want empty", projects)
	}
}

func TestProjects_Roundtrip(t *testing.T) {
	s := testStore(t)
	want := []models.Project{
		{Name: "new-website", Jira: "https://jira.example.com/WWW-1", Description: "redesign", Status: "open", Group: "web"},
		{Name: "cleanup", Status: "done"},
	}
	if err := s.SaveProjects(want); err != nil {
		t.Fatal(err)
	}
	got, err := s.LoadProjects()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("roundtrip = %+v, want %+v", got, want)
	}
}

func TestPeople_Roundtrip(t *testing.T) {
	s := testStore(t)
	want := []models.Person{
		{Name: "john", FullName: "John Smith", Email: "john@example.com", Tel: "555 123 3333", Company: "foo works"},
	}
	if err := s.SavePeople(want); err != nil {
		t.Fatal(err)
	}
	got, err := s.LoadPeople()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("roundtrip = %+v, want %+v", got, want)
	}
}

func TestLoadPeople_EmptyFile(t *testing.T) {
	s := testStore(t)
	if err := os.WriteFile(s.PeoplePath(), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	people, err := s.LoadPeople()
	if err != nil {
		t.Fatal(err)
	}
	if len(people) != 0 {
		t.Errorf("people = %v, want empty", people)
	}
}

func TestInitialize_SeedsOnceOnly(t *testing.T) {
	s := testStore(t)
	if err := s.Initialize(); err != nil {
		t.Fatal(err)
	}
	projects, err := s.LoadProjects()
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 1 || projects[0].Name != "new-website" {
		t.Fatalf("seeded projects = %+v", projects)
	}
	people, err := s.LoadPeople()
	if err != nil {
		t.Fatal(err)
	}
	if len(people) != 1 || people[0].Name != "john" {
		t.Fatalf("seeded people = %+v", people)
	}

	// A second Initialize must not clobber user edits.
	projects[0].Status = "done"
	if err := s.SaveProjects(projects); err != nil {
		t.Fatal(err)
	}
	if err := s.Initialize(); err != nil {
		t.Fatal(err)
	}
	again, err := s.LoadProjects()
	if err != nil {
		t.Fatal(err)
	}
	if again[0].Status != "done" {
		t.Error("Initialize overwrote an existing projects.yml")
	}
}
