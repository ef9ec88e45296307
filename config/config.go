/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"slices"

	"dirpx.dev/rootiface/apis"
)

const (
	// DefaultLoadPackages represents the default for LoadPackages.
	// When true, names missing from the type table are loaded from Go source.
	DefaultLoadPackages = true
	// DefaultPackageCacheSize represents the default for PackageCacheSize.
	DefaultPackageCacheSize = 64
	// DefaultPointerMethods represents the default for PointerMethods.
	// When true, methods on *T count for a concrete root type T.
	DefaultPointerMethods = true
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultLanguage represents the default warning message language.
	DefaultLanguage = "en"
	// DefaultLogFailures represents the default for LogFailures.
	DefaultLogFailures = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure numeric knobs are valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.PackageCacheSize <= 0 {
		cfg.PackageCacheSize = DefaultPackageCacheSize
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		LoadPackages:     DefaultLoadPackages,
		PackageCacheSize: DefaultPackageCacheSize,
		PointerMethods:   DefaultPointerMethods,
		MaxUnwrap:        DefaultMaxUnwrap,
		Language:         DefaultLanguage,
		LogFailures:      DefaultLogFailures,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithDir sets the package loader working directory.
func WithDir(dir string) Option {
	return func(c *apis.Config) {
		c.Dir = dir
	}
}

// WithBuildFlags sets the package loader build flags.
func WithBuildFlags(flags ...string) Option {
	return func(c *apis.Config) {
		c.BuildFlags = slices.Clone(flags)
	}
}

// WithLoadPackages sets the LoadPackages option.
func WithLoadPackages(load bool) Option {
	return func(c *apis.Config) {
		c.LoadPackages = load
	}
}

// WithPackageCacheSize sets the PackageCacheSize option.
// A non-positive value resets to the default.
func WithPackageCacheSize(size int) Option {
	return func(c *apis.Config) {
		if size <= 0 {
			c.PackageCacheSize = DefaultPackageCacheSize
			return
		}
		c.PackageCacheSize = size
	}
}

// WithPointerMethods sets the PointerMethods option.
func WithPointerMethods(include bool) Option {
	return func(c *apis.Config) {
		c.PointerMethods = include
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithLanguage sets the warning message language.
func WithLanguage(tag string) Option {
	return func(c *apis.Config) {
		c.Language = tag
	}
}

// WithLogFailures sets the LogFailures option.
func WithLogFailures(log bool) Option {
	return func(c *apis.Config) {
		c.LogFailures = log
	}
}
