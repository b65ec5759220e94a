// Package confkit glues the layered configuration together: one main YAML
// file loaded through go-zero conf, plus optional per-concern section files
// (llm, analysis) resolved relative to it.
package confkit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeromicro/go-zero/core/conf"
)

// ResolvePath expands env references in file and anchors relative paths at
// base. Absolute paths pass through after expansion.
func ResolvePath(base, file string) string {
	file = os.ExpandEnv(file)
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(base, file)
}

// BaseDir is the directory the main config file lives in. Section files
// resolve against it.
func BaseDir(mainPath string) string {
	return filepath.Dir(mainPath)
}

// LoadFile decodes a YAML config file into T, optionally expanding
// environment variables the way the main loader does.
func LoadFile[T any](path string, useEnv bool) (*T, error) {
	var cfg T
	opts := []conf.Option{}
	if useEnv {
		opts = append(opts, conf.UseEnv())
	}
	if err := conf.Load(path, &cfg, opts...); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &cfg, nil
}

// Section points from the main config file to a per-concern file: File names
// the YAML on disk, Value holds the loaded result after Hydrate. An empty
// File leaves Value nil, which callers read as "feature not configured".
type Section[T any] struct {
	File  string `json:",optional"`
	Value *T     `json:"-"`
}

// Hydrate resolves File against base and runs loader on the result, keeping
// the resolved path so startup logging can report where the section came
// from. A section without a File is skipped.
func (s *Section[T]) Hydrate(base string, loader func(string) (*T, error)) error {
	if s.File == "" {
		return nil
	}
	p := ResolvePath(base, s.File)
	v, err := loader(p)
	if err != nil {
		return err
	}
	s.File, s.Value = p, v
	return nil
}
