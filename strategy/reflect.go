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

package strategy

import (
	"errors"
	"reflect"
	"slices"
	"sync"

	"dirpx.dev/rootiface/apis"
)

// ErrNilHandle is returned when a handle carries no type.
var ErrNilHandle = errors.New("rootiface(strategy): handle has no type")

// NewReflectStrategy creates an apis.Strategy that lists methods of
// apis.ReflectHandle types via reflection, with memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy introspects types compiled into the process. For an
// interface it lists the exported methods, including embedded ones; for a
// concrete type it lists the exported method set of T, or of *T when
// PointerMethods is set.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect the result.
type cacheKey struct {
	t       reflect.Type
	pointer bool
}

// methodCache caches method names by (type, config knobs). Compiled types
// never change, so entries outlive registry resets.
var methodCache sync.Map // key: cacheKey, val: []string

// TryMethods lists the methods of a ReflectHandle.
func (reflectStrategy) TryMethods(h apis.Handle, cfg apis.Config) ([]string, bool, error) {
	rh, ok := h.(apis.ReflectHandle)
	if !ok {
		return nil, false, nil
	}
	if rh.Type == nil {
		return nil, true, ErrNilHandle
	}
	return slices.Clone(byType(rh.Type, cfg.PointerMethods)), true, nil
}

// byType returns the method names of t with memoization.
func byType(t reflect.Type, pointer bool) []string {
	key := cacheKey{t: t, pointer: pointer}
	if v, ok := methodCache.Load(key); ok {
		return v.([]string)
	}

	ms := t
	if pointer && t.Kind() != reflect.Interface && t.Kind() != reflect.Ptr {
		ms = reflect.PointerTo(t)
	}

	names := make([]string, 0, ms.NumMethod())
	for i := 0; i < ms.NumMethod(); i++ {
		// Interface types report unexported methods too.
		if m := ms.Method(i); m.IsExported() {
			names = append(names, m.Name)
		}
	}

	v, _ := methodCache.LoadOrStore(key, names)
	return v.([]string)
}
