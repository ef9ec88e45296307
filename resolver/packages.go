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

package resolver

import (
	"errors"
	"fmt"
	"go/types"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
	"golang.org/x/tools/go/packages"

	"dirpx.dev/rootiface/apis"
	"dirpx.dev/rootiface/config"
	"dirpx.dev/rootiface/utils/typename"
)

var (
	// ErrNotNamedType is returned when a name resolves to something other
	// than a named type (a func, var, const, or alias of an unnamed type).
	ErrNotNamedType = errors.New("rootiface(resolver): object is not a named type")
	// ErrPackageLoad wraps errors reported by the package loader.
	ErrPackageLoad = errors.New("rootiface(resolver): package load failed")
)

// LoadFunc loads packages matching patterns. It has the signature of
// packages.Load so tests can substitute it.
type LoadFunc func(cfg *packages.Config, patterns ...string) ([]*packages.Package, error)

// loadMode is the minimal mode for type-checked exported declarations.
const loadMode = packages.NeedName | packages.NeedTypes

// Packages resolves "import/path.TypeName" by loading Go packages, the
// module-aware equivalent of a classpath lookup.
//
// Loaded packages are kept in a bounded LRU cache shared by all names in the
// same package; Reset drops it so a new generation run sees source changes.
type Packages struct {
	load   LoadFunc
	cache  *lru.Cache[string, *types.Package]
	flight singleflight.Group
}

// Ensure Packages implements apis.Resolver and apis.Resetter.
var (
	_ apis.Resolver = (*Packages)(nil)
	_ apis.Resetter = (*Packages)(nil)
)

// NewPackages constructs a Packages resolver backed by packages.Load.
func NewPackages(cfg apis.Config) *Packages {
	return NewPackagesWithLoader(cfg, packages.Load)
}

// NewPackagesWithLoader constructs a Packages resolver using load.
func NewPackagesWithLoader(cfg apis.Config, load LoadFunc) *Packages {
	size := cfg.PackageCacheSize
	if size <= 0 {
		size = config.DefaultPackageCacheSize
	}
	// lru.New only fails on a non-positive size.
	cache, _ := lru.New[string, *types.Package](size)
	return &Packages{load: load, cache: cache}
}

// Resolve implements apis.Resolver.
func (p *Packages) Resolve(name string, cfg apis.Config) (apis.Handle, error) {
	pkgPath, typeName, err := typename.Split(name)
	if err != nil {
		return nil, &apis.ResolutionError{Name: name, Err: err}
	}

	pkg, err := p.pkg(pkgPath, cfg)
	if err != nil {
		return nil, &apis.ResolutionError{Name: name, Err: err}
	}

	obj := pkg.Scope().Lookup(typeName)
	if obj == nil {
		return nil, &apis.ResolutionError{Name: name, Err: ErrNotFound}
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, &apis.ResolutionError{Name: name, Err: ErrNotNamedType}
	}
	named, ok := types.Unalias(tn.Type()).(*types.Named)
	if !ok {
		return nil, &apis.ResolutionError{Name: name, Err: ErrNotNamedType}
	}
	return apis.TypesHandle{Name: name, Named: named}, nil
}

// Reset drops all cached packages.
func (p *Packages) Reset() {
	p.cache.Purge()
}

// Len returns the number of cached packages.
func (p *Packages) Len() int {
	return p.cache.Len()
}

// pkg returns the type-checked package at path, loading it at most once
// per cache lifetime even under concurrent requests.
func (p *Packages) pkg(path string, cfg apis.Config) (*types.Package, error) {
	key := cacheKey(path, cfg)
	if pkg, ok := p.cache.Get(key); ok {
		return pkg, nil
	}

	v, err, _ := p.flight.Do(key, func() (any, error) {
		if pkg, ok := p.cache.Get(key); ok {
			return pkg, nil
		}
		pkg, err := p.loadOne(path, cfg)
		if err != nil {
			return nil, err
		}
		p.cache.Add(key, pkg)
		return pkg, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.Package), nil
}

func (p *Packages) loadOne(path string, cfg apis.Config) (*types.Package, error) {
	pkgs, err := p.load(&packages.Config{
		Mode:       loadMode,
		Dir:        cfg.Dir,
		BuildFlags: cfg.BuildFlags,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPackageLoad, path, err)
	}
	for _, pkg := range pkgs {
		if pkg.PkgPath != path {
			continue
		}
		if len(pkg.Errors) > 0 {
			errs := make([]error, 0, len(pkg.Errors))
			for _, e := range pkg.Errors {
				errs = append(errs, e)
			}
			return nil, fmt.Errorf("%w: %s: %w", ErrPackageLoad, path, errors.Join(errs...))
		}
		if pkg.Types == nil {
			return nil, fmt.Errorf("%w: %s: no type information", ErrPackageLoad, path)
		}
		return pkg.Types, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
}

// cacheKey scopes cached packages by the loader settings that can change
// what a path resolves to.
func cacheKey(path string, cfg apis.Config) string {
	return cfg.Dir + "\x00" + strings.Join(cfg.BuildFlags, " ") + "\x00" + path
}
