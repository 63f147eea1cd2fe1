package repository

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

var (
	artifactIDExpr  = regexp.MustCompile(`<artifactId>([^<]+)</artifactId>`)
	gradleNameExpr  = regexp.MustCompile(`(?:rootProject|project)\.name\s*=\s*['"]([^'"]+)['"]`)
	assemblyExpr    = regexp.MustCompile(`<AssemblyName>([^<]+)</AssemblyName>`)
	parentArtifacts = regexp.MustCompile(`(?s)<parent>.*?</parent>`)
)

// Detector identifies project root folders and provides project-related information
type Detector struct {
	// project root markers, glob patterns allowed
	markers []string
	fs      afs.Service
}

// New creates a new project detector instance
func New() *Detector {
	return &Detector{
		markers: []string{
			"go.mod",       // Go projects
			"pom.xml",      // Java/Maven projects
			"build.gradle", // Java/Gradle projects
			"*.sln",        // .NET solutions
			"*.csproj",     // .NET projects
			"package.json", // JavaScript/Node projects
			".git",         // Generic VCS marker
		},
		fs: afs.New(),
	}
}

// DetectProject identifies the project root for the given file path and returns project info
func (d *Detector) DetectProject(ctx context.Context, filePath string) (*Project, error) {
	absPath, startDir, err := resolve(filePath)
	if err != nil {
		return nil, err
	}
	rootPath, marker := d.findProjectRoot(startDir)
	info := &Project{Type: "unknown", RootPath: startDir}
	if rootPath != "" {
		info.RootPath = rootPath
		info.Type = determineProjectType(marker)
	}
	relPath, err := filepath.Rel(info.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	info.RelativePath = filepath.ToSlash(relPath)
	if rootPath != "" {
		d.extractProjectName(ctx, info, marker)
	}
	return info, nil
}

// DetectRepository identifies the repository containing the given file path
func (d *Detector) DetectRepository(ctx context.Context, filePath string) (*Repository, error) {
	_, startDir, err := resolve(filePath)
	if err != nil {
		return nil, err
	}
	info, err := d.DetectProject(ctx, filePath)
	if err != nil {
		return nil, err
	}
	if gitRoot := findGitRoot(startDir); gitRoot != "" {
		return &Repository{Kind: "git", Root: gitRoot, Origin: d.extractGitOrigin(ctx, gitRoot), Info: info}, nil
	}
	return &Repository{Kind: info.Type, Root: info.RootPath, Info: info}, nil
}

// resolve returns absolute path and the directory the search starts from
func resolve(filePath string) (string, string, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", "", err
	}
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return "", "", err
	}
	if fileInfo.IsDir() {
		return absPath, absPath, nil
	}
	return absPath, filepath.Dir(absPath), nil
}

// findProjectRoot searches up from the start directory for project markers, returns root and matched marker file
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if matches, _ := filepath.Glob(filepath.Join(dir, marker)); len(matches) > 0 {
				return dir, filepath.Base(matches[0])
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

// findGitRoot finds the root of the git repository containing the given directory
func findGitRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// extractGitOrigin extracts the origin URL from git config
func (d *Detector) extractGitOrigin(ctx context.Context, gitRoot string) string {
	data, err := d.fs.DownloadWithURL(ctx, filepath.Join(gitRoot, ".git", "config"))
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	foundRemote := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			foundRemote = line == `[remote "origin"]`
			continue
		}
		if foundRemote && strings.HasPrefix(line, "url") {
			if _, value, ok := strings.Cut(line, "="); ok {
				return strings.TrimSpace(value)
			}
		}
	}
	return ""
}

// extractProjectName sets project name from the marker file, directory name is used as fallback
func (d *Detector) extractProjectName(ctx context.Context, info *Project, marker string) {
	info.Name = filepath.Base(info.RootPath)
	location := filepath.Join(info.RootPath, marker)
	if marker == ".git" {
		if origin := d.extractGitOrigin(ctx, info.RootPath); origin != "" {
			origin = strings.TrimSuffix(strings.TrimSuffix(origin, "/"), ".git")
			info.Name = origin[strings.LastIndexAny(origin, "/:")+1:]
		}
		return
	}
	data, err := d.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return
	}
	switch filepath.Ext(marker) {
	case ".sln":
		info.Name = strings.TrimSuffix(marker, ".sln")
		return
	case ".csproj":
		info.Name = strings.TrimSuffix(marker, ".csproj")
		if matches := assemblyExpr.FindSubmatch(data); len(matches) > 1 {
			info.Name = string(matches[1])
		}
		return
	}
	switch marker {
	case "go.mod":
		if mod, _ := modfile.Parse(location, data, nil); mod != nil && mod.Module != nil {
			info.GoModule = mod.Module
			info.Name = mod.Module.Mod.Path
		}
	case "pom.xml":
		data = parentArtifacts.ReplaceAll(data, nil)
		if matches := artifactIDExpr.FindSubmatch(data); len(matches) > 1 {
			info.Name = string(matches[1])
		}
	case "build.gradle":
		if matches := gradleNameExpr.FindSubmatch(data); len(matches) > 1 {
			info.Name = string(matches[1])
		}
	case "package.json":
		aPackage := struct {
			Name string `json:"name"`
		}{}
		if err = json.Unmarshal(data, &aPackage); err == nil && aPackage.Name != "" {
			info.Name = aPackage.Name
		}
	}
}

// determineProjectType identifies the type of project based on the marker file
func determineProjectType(marker string) string {
	switch {
	case marker == "go.mod":
		return "go"
	case marker == "pom.xml", marker == "build.gradle":
		return "java"
	case strings.HasSuffix(marker, ".sln"), strings.HasSuffix(marker, ".csproj"):
		return "dotnet"
	case marker == "package.json":
		return "javascript"
	case marker == ".git":
		return "git"
	default:
		return "unknown"
	}
}
