// Package places lists the quick-access locations offered by the browser.
package places

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	fsutil "github.com/kk-code-lab/rfm/internal/fs"
)

// Place is a named shortcut to a directory.
type Place struct {
	Label string `yaml:"label" toml:"label"`
	Path  string `yaml:"path" toml:"path"`
	// Alternates are tried in order when Path does not exist, for folders
	// whose name depends on the desktop locale.
	Alternates []string `yaml:"alternates,omitempty" toml:"alternates,omitempty"`
}

type file struct {
	Places []Place `yaml:"places" toml:"places"`
}

// Defaults returns the standard places rooted at home.
func Defaults(home string) []Place {
	if home == "" {
		home = fsutil.DefaultLocation()
	}
	in := func(names ...string) []string {
		out := make([]string, len(names))
		for i, n := range names {
			out[i] = filepath.Join(home, n)
		}
		return out
	}

	return []Place{
		{Label: "Home", Path: home},
		{Label: "Desktop", Path: filepath.Join(home, "Desktop"), Alternates: in("Área de Trabalho", "Escritorio")},
		{Label: "Downloads", Path: filepath.Join(home, "Downloads"), Alternates: in("Transferências", "Descargas")},
		{Label: "Documents", Path: filepath.Join(home, "Documents"), Alternates: in("Documentos")},
		{Label: "Music", Path: filepath.Join(home, "Music"), Alternates: in("Música", "Músicas")},
		{Label: "Pictures", Path: filepath.Join(home, "Pictures"), Alternates: in("Imagens", "Imágenes")},
		{Label: "Videos", Path: filepath.Join(home, "Videos"), Alternates: in("Vídeos", "Movies")},
		{Label: "System", Path: string(filepath.Separator)},
	}
}

// Resolve returns the first existing directory among Path and Alternates,
// or Path when none exists.
func (p Place) Resolve() string {
	for _, candidate := range append([]string{p.Path}, p.Alternates...) {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return p.Path
}

// LoadFile reads extra places from a YAML or TOML file, picked by extension.
func LoadFile(path string) ([]Place, error) {
	data, err := os.ReadFile(fsutil.ExpandHome(path))
	if err != nil {
		return nil, fmt.Errorf("read places file: %w", err)
	}

	var parsed file
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &parsed)
	case ".toml":
		err = toml.Unmarshal(data, &parsed)
	default:
		return nil, fmt.Errorf("places file %s: unsupported format", path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse places file %s: %w", path, err)
	}

	out := make([]Place, 0, len(parsed.Places))
	for _, p := range parsed.Places {
		if strings.TrimSpace(p.Path) == "" {
			continue
		}
		p.Path = fsutil.ExpandHome(p.Path)
		for i, alt := range p.Alternates {
			p.Alternates[i] = fsutil.ExpandHome(alt)
		}
		if p.Label == "" {
			p.Label = filepath.Base(p.Path)
		}
		out = append(out, p)
	}
	return out, nil
}

// Load returns the defaults followed by any places from extraFile.
func Load(home, extraFile string) ([]Place, error) {
	all := Defaults(home)
	if extraFile == "" {
		return all, nil
	}
	extra, err := LoadFile(extraFile)
	if err != nil {
		return all, err
	}
	return append(all, extra...), nil
}
