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

// Package introspector chains introspection strategies into an apis.Introspector.
package introspector

import (
	"errors"
	"fmt"

	"dirpx.dev/rootiface/apis"
)

var (
	// ErrUnsupportedHandle is returned when no strategy handles a handle kind.
	ErrUnsupportedHandle = errors.New("rootiface(introspector): no strategy for handle")
	// ErrPanic wraps a panic raised inside a strategy.
	ErrPanic = errors.New("rootiface(introspector): strategy panicked")
)

// New constructs an apis.Introspector that tries the given strategies in order.
// Nil strategies are ignored. The returned introspector is safe for concurrent
// use provided strategies themselves are safe for concurrent TryMethods calls.
func New(strategies ...apis.Strategy) apis.Introspector {
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving introspector over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Methods runs strategies in order until one handles h. Strategy errors and
// panics are reported as *apis.IntrospectionError.
func (c chain) Methods(h apis.Handle, cfg apis.Config) (names []string, err error) {
	name := ""
	if h != nil {
		name = h.QualifiedName()
	}
	defer func() {
		if r := recover(); r != nil {
			names = nil
			err = &apis.IntrospectionError{Name: name, Err: fmt.Errorf("%w: %v", ErrPanic, r)}
		}
	}()

	for _, s := range c.strats {
		got, ok, serr := s.TryMethods(h, cfg)
		if !ok {
			continue
		}
		if serr != nil {
			return nil, &apis.IntrospectionError{Name: name, Err: serr}
		}
		return dedupe(got), nil
	}
	return nil, &apis.IntrospectionError{Name: name, Err: ErrUnsupportedHandle}
}

// dedupe drops empty and repeated names, keeping first-seen order.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
