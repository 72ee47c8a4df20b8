// Package catalog is the fixed, read-only course table. The session and
// progress layers only ever look courses up by ID.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/minilearn/internal/common"
)

//go:embed courses.json
var defaultCourses []byte

var ErrDuplicateID = errors.New("duplicate course id")

type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Course is one catalog entry.
type Course struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	LongDescription string     `json:"long_description"`
	Icon            string     `json:"icon"`
	Color           string     `json:"color"`
	Difficulty      Difficulty `json:"difficulty"`
	Duration        string     `json:"duration"`
}

// Catalog keeps courses in file order.
type Catalog struct {
	courses []Course
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(defaultCourses)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a JSON file with the same shape as courses.json.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a JSON array of courses. IDs must be non-empty and unique.
func Parse(data []byte) (*Catalog, error) {
	var courses []Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(courses))
	for _, c := range courses {
		if c.ID == "" {
			return nil, fmt.Errorf("course %q: empty id", c.Title)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, c.ID)
		}
		seen[c.ID] = struct{}{}
	}

	return &Catalog{courses: courses}, nil
}

// All returns a copy of the courses in catalog order.
func (c *Catalog) All() []Course {
	out := make([]Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// ByID returns the course with the given id or common.ErrNotFound.
func (c *Catalog) ByID(id string) (*Course, error) {
	for i := range c.courses {
		if c.courses[i].ID == id {
			course := c.courses[i]
			return &course, nil
		}
	}
	return nil, fmt.Errorf("course %s: %w", id, common.ErrNotFound)
}

func (c *Catalog) Len() int {
	return len(c.courses)
}
