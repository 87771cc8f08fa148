package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Assets holds every decoded asset the game needs before it can start
type Assets struct {
	CharacterSheet *SheetConfig
	CharacterImage image.Image
	TileSheet      *SheetConfig
	TileImage      image.Image
	Background     image.Image
	Stone          image.Image
}

// Loader loads game assets using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new asset loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new asset loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadSheet loads a sprite sheet JSON document
func (l *Loader) LoadSheet(name string) (*SheetConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
	}

	var cfg SheetConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sheet %s: %w", name, err)
	}
	if len(cfg.Frames) == 0 {
		return nil, fmt.Errorf("failed to parse sheet %s: no frames", name)
	}

	return &cfg, nil
}

// LoadImage loads and decodes an image file
func (l *Loader) LoadImage(name string) (image.Image, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", name, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}

	return img, nil
}

// LoadSound reads an encoded sound file without decoding it
func (l *Loader) LoadSound(name string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound %s: %w", name, err)
	}
	return data, nil
}

// LoadAssets loads both sprite sheets and every image
func (l *Loader) LoadAssets(names AssetsConfig) (*Assets, error) {
	characterSheet, err := l.LoadSheet(names.CharacterSheet)
	if err != nil {
		return nil, err
	}

	tileSheet, err := l.LoadSheet(names.TileSheet)
	if err != nil {
		return nil, err
	}

	assets := &Assets{
		CharacterSheet: characterSheet,
		TileSheet:      tileSheet,
	}
	for _, img := range []struct {
		name string
		dst  *image.Image
	}{
		{names.CharacterImage, &assets.CharacterImage},
		{names.TileImage, &assets.TileImage},
		{names.Background, &assets.Background},
		{names.Stone, &assets.Stone},
	} {
		decoded, err := l.LoadImage(img.name)
		if err != nil {
			return nil, err
		}
		*img.dst = decoded
	}

	return assets, nil
}

// LoadTuning loads runner.yaml.
// Search order: customPath -> ./configs/runner.yaml -> embedded default.
// Fields missing from the file keep their default values.
func LoadTuning(customPath string) (TuningConfig, error) {
	cfg := DefaultTuning()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		local := DefaultTuning()
		if err := yaml.Unmarshal(data, &local); err == nil {
			return local, nil
		}
	}

	if err := yaml.Unmarshal(defaultTuningYAML, &cfg); err != nil {
		return DefaultTuning(), nil
	}
	return cfg, nil
}

// ParseTuning parses runner.yaml content on top of the defaults
func ParseTuning(data []byte) (TuningConfig, error) {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
