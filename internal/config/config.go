// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

// Package config loads batch conversion job files.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/ktx2"
)

// DefaultCompression is used for jobs that do not set one.
const DefaultCompression = "zstd"

var (
	// ErrReadConfig indicates reading the job file failed.
	ErrReadConfig = errors.New("read config failed")
	// ErrParseConfig indicates the job file is not valid YAML.
	ErrParseConfig = errors.New("parse config failed")
	// ErrNoJobs indicates a job file without jobs.
	ErrNoJobs = errors.New("no jobs")
	// ErrInvalidJob indicates a job with missing or invalid fields.
	ErrInvalidJob = errors.New("invalid job")
)

// Job describes one raw RGBA16F image to convert. Faces defaults to 6
// (cubemap), Levels to 1 and Compression to DefaultCompression.
type Job struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Faces       int    `yaml:"faces"`
	Levels      int    `yaml:"levels"`
	Compression string `yaml:"compression"`
}

// Config is a batch job file.
type Config struct {
	// Workers limits parallel conversions; 0 means GOMAXPROCS.
	Workers int   `yaml:"workers"`
	Jobs    []Job `yaml:"jobs"`
}

// Load reads and validates a job file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrReadConfig, path, err)
	}

	return Parse(data)
}

// Parse decodes a job file, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseConfig, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}

	for i := range c.Jobs {
		job := &c.Jobs[i]
		if job.Faces == 0 {
			job.Faces = 6
		}
		if job.Levels == 0 {
			job.Levels = 1
		}
		if job.Compression == "" {
			job.Compression = DefaultCompression
		}
	}
}

// Validate checks every job.
func (c *Config) Validate() error {
	if len(c.Jobs) == 0 {
		return ErrNoJobs
	}

	for i, job := range c.Jobs {
		if err := job.Validate(); err != nil {
			return fmt.Errorf("job %d: %w", i, err)
		}
	}

	return nil
}

// Validate checks required fields and the compression name.
func (j Job) Validate() error {
	switch {
	case j.Input == "":
		return fmt.Errorf("%w: missing input", ErrInvalidJob)
	case j.Output == "":
		return fmt.Errorf("%w: missing output", ErrInvalidJob)
	case j.Width <= 0 || j.Height <= 0:
		return fmt.Errorf("%w: %q: size %dx%d", ErrInvalidJob, j.Input, j.Width, j.Height)
	case j.Faces != 1 && j.Faces != 6:
		return fmt.Errorf("%w: %q: faces %d", ErrInvalidJob, j.Input, j.Faces)
	case j.Levels < 1:
		return fmt.Errorf("%w: %q: levels %d", ErrInvalidJob, j.Input, j.Levels)
	}

	if _, err := ktx2.ParseScheme(j.Compression); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidJob, j.Input, err)
	}

	return nil
}

// Scheme returns the job's supercompression scheme.
func (j Job) Scheme() (ktx2.SupercompressionScheme, error) {
	return ktx2.ParseScheme(j.Compression)
}
