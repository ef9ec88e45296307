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

package rootiface

import (
	"os"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"dirpx.dev/rootiface/apis"
	"dirpx.dev/rootiface/builder"
	"dirpx.dev/rootiface/config"
	"dirpx.dev/rootiface/info"
	"dirpx.dev/rootiface/registry"
	"dirpx.dev/rootiface/resolver"
)

// init initializes the global state.
func init() {
	cfg := config.DefaultConfig()
	tbl := resolver.NewTable(cfg)
	s := &state{
		cfg: cfg,
		tbl: tbl,
		bld: builder.New(tbl),
		log: zerolog.New(os.Stderr).Level(zerolog.ErrorLevel).With().Timestamp().Logger(),
	}
	s.reg = s.build()
	st.Store(s)
}

// GetOrCreate returns the Info for className from the global registry.
// This is a convenience wrapper around Registry().GetOrCreate.
func GetOrCreate(className string, w apis.Warnings) *info.Info {
	return st.Load().reg.GetOrCreate(className, w)
}

// ContainsMethod reports whether inf declares a method called name.
// A nil inf declares nothing.
func ContainsMethod(inf *info.Info, name string) bool {
	return inf.ContainsMethod(name)
}

// Reset clears the global registry. Pipeline drivers call it at the start of
// every generation run, never while lookups are in flight.
func Reset() {
	st.Load().reg.Reset()
}

// RegisterType makes a compiled type resolvable under its qualified name.
//
//	rootiface.RegisterType(reflect.TypeOf((*mapper.Base)(nil)))
func RegisterType(t reflect.Type) error {
	return st.Load().tbl.Register(t)
}

// RegisterTypeAs makes a compiled type resolvable under name.
func RegisterTypeAs(name string, t reflect.Type) error {
	return st.Load().tbl.RegisterAs(name, t)
}

// Types returns the global type table.
func Types() *resolver.Table {
	return st.Load().tbl
}

// Registry returns the global registry.
func Registry() *registry.Registry {
	return st.Load().reg
}

// SetRegistry replaces the global registry. Nil is ignored.
func SetRegistry(reg *registry.Registry) {
	if reg == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: reg.Config(), tbl: old.tbl, bld: old.bld, log: old.log, reg: reg})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration and rebuilds the registry.
// Cached entries are discarded; type table registrations are kept.
func SetConfig(cfg apis.Config) {
	update(func(s *state) { s.cfg = cfg })
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder and rebuilds the registry. Nil is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(func(s *state) { s.bld = b })
}

// SetLogger sets the logger used by the global registry and rebuilds it.
func SetLogger(l zerolog.Logger) {
	update(func(s *state) { s.log = l })
}

// update derives a new state from the current one, rebuilds the registry
// and publishes the result.
func update(mutate func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := &state{cfg: old.cfg, tbl: old.tbl, bld: old.bld, log: old.log}
	mutate(next)
	next.reg = next.build()
	st.Store(next)
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable once published via st.Store; writers create a new state.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// tbl is the global type table; it survives rebuilds.
	tbl *resolver.Table
	// bld composes resolver and introspector for reg.
	bld apis.Builder
	// log is handed to reg.
	log zerolog.Logger
	// reg is the global registry.
	reg *registry.Registry
}

func (s *state) build() *registry.Registry {
	return registry.New(
		registry.WithConfig(s.cfg),
		registry.WithBuilder(s.bld),
		registry.WithLogger(s.log),
	)
}
