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
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/rootiface/apis"
	"dirpx.dev/rootiface/config"
	uref "dirpx.dev/rootiface/utils/reflect"
	"dirpx.dev/rootiface/utils/typename"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("rootiface(resolver): nil reflect.Type provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("rootiface(resolver): empty name provided")
	// ErrConflictingRegistration indicates an attempt to bind a name
	// that is already bound to a different type.
	ErrConflictingRegistration = errors.New("rootiface(resolver): conflicting type registration")
	// ErrNotFound is returned when a name is not known to a resolver.
	ErrNotFound = errors.New("rootiface(resolver): type not found")
)

// NewTable constructs a Table that normalizes registered types according to cfg.
// Only MaxUnwrap is used here.
func NewTable(cfg apis.Config) *Table {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &Table{cfg: cfg}
}

// Table resolves names of types compiled into the running process.
//
// Go cannot load a type by name at runtime, so types a generator may be asked
// about are registered up front:
//
//	tbl.Register(reflect.TypeOf((*mapper.Base)(nil)))
//	tbl.RegisterAs("com.acme.BaseMapper", reflect.TypeOf((*mapper.Base)(nil)))
type Table struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps qualified names and aliases to reflect.Type.
	m sync.Map // map[string]reflect.Type
	// count tracks the number of registered names.
	count int
}

// Ensure Table implements apis.Resolver.
var _ apis.Resolver = (*Table)(nil)

// Register binds the nearest named type of t under its qualified name
// ("pkgpath.Name"). It is idempotent for the same type.
func (r *Table) Register(t reflect.Type) error {
	if t == nil {
		return ErrNilType
	}
	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}
	name := typename.Qualified(b)
	if name == "" {
		return uref.ErrReflectTypeNotNamed
	}
	return r.bind(name, b)
}

// RegisterAs binds the nearest named type of t under an explicit name, such
// as the spelling used in a generator configuration file.
func (r *Table) RegisterAs(name string, t reflect.Type) error {
	if t == nil {
		return ErrNilType
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}
	return r.bind(name, b)
}

func (r *Table) bind(name string, t reflect.Type) error {
	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(name); ok {
		if old.(reflect.Type) == t {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(name); ok {
		if old.(reflect.Type) == t {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.m.Store(name, t)
	r.count++
	return nil
}

// Lookup returns the type bound to name if present.
func (r *Table) Lookup(name string) (reflect.Type, bool) {
	if v, ok := r.m.Load(strings.TrimSpace(name)); ok {
		return v.(reflect.Type), true
	}
	return nil, false
}

// Resolve implements apis.Resolver.
func (r *Table) Resolve(name string, _ apis.Config) (apis.Handle, error) {
	t, ok := r.Lookup(name)
	if !ok {
		return nil, &apis.ResolutionError{Name: name, Err: ErrNotFound}
	}
	return apis.ReflectHandle{Name: name, Type: t}, nil
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *Table) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Name: key.(string),
			Type: value.(reflect.Type),
		})
		return true
	})
	return entries
}

// Count returns the number of registered names.
func (r *Table) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Clear removes all registrations. Registry resets do not call it.
func (r *Table) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
