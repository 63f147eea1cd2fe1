package repository

import "golang.org/x/mod/modfile"

// Repository represents a version controlled tree holding inspected sources
type Repository struct {
	Kind   string   `json:"kind" yaml:"kind"`
	Root   string   `json:"root" yaml:"root"`
	Origin string   `json:"origin,omitempty" yaml:"origin,omitempty"`
	Info   *Project `json:"project,omitempty" yaml:"project,omitempty"`
}

// Project represents information about a detected project
type Project struct {
	RootPath     string          `json:"rootPath" yaml:"rootPath"`                             // Absolute path to the project root directory
	Type         string          `json:"type" yaml:"type"`                                     // Type of project (go, java, dotnet, javascript, git)
	Name         string          `json:"name,omitempty" yaml:"name,omitempty"`                 // Name of the project (extracted from marker files)
	RelativePath string          `json:"relativePath,omitempty" yaml:"relativePath,omitempty"` // Path from project root to the specified file
	GoModule     *modfile.Module `json:"-" yaml:"-"`
}
