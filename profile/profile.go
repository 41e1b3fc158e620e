// Package profile holds the static portfolio content shown on the home page.
package profile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Profile struct {
	Name        string       `yaml:"name"`
	Headline    string       `yaml:"headline"`
	Email       string       `yaml:"email"`
	Description string       `yaml:"description"`
	Links       []Link       `yaml:"links"`
	About       []string     `yaml:"about"`
	Snippets    []string     `yaml:"snippets"`
	Skills      []SkillGroup `yaml:"skills"`
	KnowsAbout  []string     `yaml:"knows_about"`
	Projects    []Project    `yaml:"projects"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// SkillGroup is one titled row of skill badges. Accent groups use the
// highlight colour.
type SkillGroup struct {
	Title  string   `yaml:"title"`
	Accent bool     `yaml:"accent"`
	Items  []string `yaml:"items"`
}

type Project struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Category     string   `yaml:"category"`
	Technologies []string `yaml:"technologies"`
	Image        string   `yaml:"image"`
	URL          string   `yaml:"url"`
}

// Default returns the built-in profile.
func Default() Profile {
	p, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("profile: embedded default is invalid: %v", err))
	}
	return p
}

// Load reads a profile from path. An empty path returns Default.
func Load(path string) (Profile, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML profile, rejecting unknown keys.
func Parse(data []byte) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Profile{}, err
	}
	if p.Name == "" {
		return Profile{}, errors.New("name is required")
	}
	return p, nil
}
