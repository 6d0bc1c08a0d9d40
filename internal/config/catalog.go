package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog represents the structure of the catalog.yaml file: the static
// subject catalog the dashboard is built around. Hierarchical data that's
// easier to manage in YAML than env vars.
type Catalog struct {
	Degrees []DegreeConfig `yaml:"degrees"`
}

// DegreeConfig defines a degree program in the catalog.
type DegreeConfig struct {
	Slug      string          `yaml:"slug"`
	Name      string          `yaml:"name"`
	Semesters []SemesterConfig `yaml:"semesters"`
}

// SemesterConfig groups subjects by semester number.
type SemesterConfig struct {
	Number   int             `yaml:"number"`
	Subjects []SubjectConfig `yaml:"subjects"`
}

// SubjectConfig defines a subject and its curated default resources.
type SubjectConfig struct {
	ID    string              `yaml:"id"`
	Name  string              `yaml:"name"`
	Links []DefaultLinkConfig `yaml:"links,omitempty"`
}

// DefaultLinkConfig is a curated resource shipped with the catalog.
type DefaultLinkConfig struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// LoadCatalog loads the YAML subject catalog.
// Returns nil without error if the file doesn't exist.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Catalog file is optional
			return nil, nil
		}
		return nil, err
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}

	return &cat, nil
}

// GetSubjectByID finds a subject anywhere in the catalog.
func (c *Catalog) GetSubjectByID(id string) *SubjectConfig {
	if c == nil {
		return nil
	}
	for di := range c.Degrees {
		for si := range c.Degrees[di].Semesters {
			for sj := range c.Degrees[di].Semesters[si].Subjects {
				if c.Degrees[di].Semesters[si].Subjects[sj].ID == id {
					return &c.Degrees[di].Semesters[si].Subjects[sj]
				}
			}
		}
	}
	return nil
}

// SubjectIDs returns every subject identifier in the catalog.
func (c *Catalog) SubjectIDs() []string {
	if c == nil {
		return nil
	}
	var ids []string
	for _, d := range c.Degrees {
		for _, s := range d.Semesters {
			for _, subj := range s.Subjects {
				ids = append(ids, subj.ID)
			}
		}
	}
	return ids
}
