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

package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"dirpx.dev/rootiface/apis"
	"dirpx.dev/rootiface/builder"
	"dirpx.dev/rootiface/config"
	"dirpx.dev/rootiface/info"
	"dirpx.dev/rootiface/messages"
	"dirpx.dev/rootiface/resolver"
	"dirpx.dev/rootiface/utils/typename"
)

// Option configures a Registry.
type Option func(*Registry)

// WithConfig sets the configuration passed to resolvers and introspectors.
func WithConfig(cfg apis.Config) Option {
	return func(r *Registry) {
		r.cfg = cfg
	}
}

// WithResolver sets the class-resolution collaborator.
func WithResolver(res apis.Resolver) Option {
	return func(r *Registry) {
		r.res = res
	}
}

// WithIntrospector sets the introspection collaborator.
func WithIntrospector(in apis.Introspector) Option {
	return func(r *Registry) {
		r.in = in
	}
}

// WithBuilder builds any collaborator not set explicitly with b.
func WithBuilder(b apis.Builder) Option {
	return func(r *Registry) {
		r.bld = b
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = l
	}
}

// New constructs a Registry. Collaborators not supplied through options are
// built by the default builder from the configuration.
func New(opts ...Option) *Registry {
	r := &Registry{
		cfg: config.DefaultConfig(),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.bld == nil {
		r.bld = builder.New(resolver.NewTable(r.cfg))
	}
	if r.res == nil {
		r.res = r.bld.BuildResolver(r.cfg, nil)
	}
	if r.in == nil {
		r.in = r.bld.BuildIntrospector(r.cfg, nil)
	}
	r.msg = messages.NewPrinter(r.cfg.Language)
	return r
}

// Registry caches which methods each root interface declares.
//
// Entries are created by the first GetOrCreate for a class name and live
// until Reset. Concurrent first lookups of one class name share a single
// resolution; lookups of distinct names proceed independently.
type Registry struct {
	cfg apis.Config
	res apis.Resolver
	in  apis.Introspector
	bld apis.Builder
	msg *messages.Printer
	log zerolog.Logger

	// m maps class name to *info.Info.
	m sync.Map
	// flight serializes construction per class name.
	flight singleflight.Group

	hits          atomic.Uint64
	constructions atomic.Uint64
	failures      atomic.Uint64
}

// Ensure Registry implements apis.Registry.
var _ apis.Registry = (*Registry)(nil)

// Stats is a point-in-time snapshot of registry counters.
type Stats struct {
	// Hits counts lookups answered from the cache.
	Hits uint64
	// Constructions counts Info values built.
	Constructions uint64
	// Failures counts constructions that degraded to an empty method set.
	Failures uint64
	// Entries is the number of cached class names.
	Entries int
}

// GetOrCreate returns the Info for className, constructing it on first use.
//
// Only the call that performs the construction reports to w, and only when
// the type cannot be resolved or introspected. The result is never nil.
func (r *Registry) GetOrCreate(className string, w apis.Warnings) *info.Info {
	if v, ok := r.m.Load(className); ok {
		r.hits.Add(1)
		return v.(*info.Info)
	}

	v, _, _ := r.flight.Do(className, func() (any, error) {
		// A flight that finished before this one started has already stored.
		if v, ok := r.m.Load(className); ok {
			r.hits.Add(1)
			return v, nil
		}
		inf := r.build(className, w)
		r.m.Store(className, inf)
		return inf, nil
	})
	return v.(*info.Info)
}

// build resolves and introspects className. Failures are converted into
// one warning and an unavailable Info.
func (r *Registry) build(className string, w apis.Warnings) *info.Info {
	r.constructions.Add(1)

	name, generic := typename.Strip(className)
	if name == "" {
		return info.Unavailable(className, name, generic)
	}

	methods, err := r.introspect(name)
	if err != nil {
		r.failures.Add(1)
		if r.cfg.LogFailures {
			r.log.Error().
				Err(err).
				Str("class", className).
				Str("lookup", name).
				Msg("cannot obtain root interface methods")
		}
		if w != nil {
			w.Add(r.msg.RootInterfaceUnavailable(className))
		}
		return info.Unavailable(className, name, generic)
	}

	r.log.Debug().
		Str("class", className).
		Bool("generic", generic).
		Int("methods", len(methods)).
		Msg("root interface introspected")
	return info.New(className, name, generic, methods)
}

// introspect runs resolution then introspection, converting panics from
// either collaborator into errors.
func (r *Registry) introspect(name string) (methods []string, err error) {
	defer func() {
		if p := recover(); p != nil {
			methods = nil
			err = &apis.IntrospectionError{Name: name, Err: fmt.Errorf("panic: %v", p)}
		}
	}()

	h, err := r.res.Resolve(name, r.cfg)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, &apis.ResolutionError{Name: name, Err: resolver.ErrNotFound}
	}
	return r.in.Methods(h, r.cfg)
}

// Reset discards all cached entries and drops collaborator caches, so the
// next lookup of any class name resolves afresh.
//
// Reset must not run concurrently with GetOrCreate.
func (r *Registry) Reset() {
	n := r.Len()
	r.m.Clear()
	if rs, ok := r.res.(apis.Resetter); ok {
		rs.Reset()
	}
	if rs, ok := r.in.(apis.Resetter); ok {
		rs.Reset()
	}
	r.log.Debug().Int("entries", n).Msg("root interface registry reset")
}

// Len returns the number of cached entries.
func (r *Registry) Len() int {
	n := 0
	r.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Entries returns a snapshot of cached entries ordered by class name.
func (r *Registry) Entries() []*info.Info {
	out := make([]*info.Info, 0)
	r.m.Range(func(_, v any) bool {
		out = append(out, v.(*info.Info))
		return true
	})
	slices.SortFunc(out, func(a, b *info.Info) int {
		return cmp.Compare(a.ClassName(), b.ClassName())
	})
	return out
}

// Stats returns a snapshot of registry counters.
func (r *Registry) Stats() Stats {
	return Stats{
		Hits:          r.hits.Load(),
		Constructions: r.constructions.Load(),
		Failures:      r.failures.Load(),
		Entries:       r.Len(),
	}
}

// Config returns the configuration the registry was built with.
func (r *Registry) Config() apis.Config {
	return r.cfg
}
