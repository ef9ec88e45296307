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

// Package info holds the immutable introspection result for one root interface.
package info

import (
	"slices"
)

// Info is the introspection result for one class name.
//
// An Info is never mutated after construction and may be shared freely
// between goroutines. A type that could not be resolved or introspected is
// represented by an Info with an empty method set, so every query stays total.
type Info struct {
	className string
	name      string
	generic   bool
	available bool
	methods   map[string]struct{}
}

// New returns an Info for a successfully introspected type.
// Duplicate method names collapse to one entry.
func New(className, name string, generic bool, methods []string) *Info {
	set := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		if m == "" {
			continue
		}
		set[m] = struct{}{}
	}
	return &Info{
		className: className,
		name:      name,
		generic:   generic,
		available: true,
		methods:   set,
	}
}

// Unavailable returns an Info with no methods, used when className is empty
// or when resolution/introspection failed.
func Unavailable(className, name string, generic bool) *Info {
	return &Info{
		className: className,
		name:      name,
		generic:   generic,
	}
}

// ContainsMethod reports whether the type declares a method called name.
// Matching is exact and case-sensitive.
func (i *Info) ContainsMethod(name string) bool {
	if i == nil || len(i.methods) == 0 {
		return false
	}
	_, ok := i.methods[name]
	return ok
}

// ClassName returns the class name as supplied by the caller.
func (i *Info) ClassName() string {
	if i == nil {
		return ""
	}
	return i.className
}

// Name returns the lookup name with type parameters stripped.
func (i *Info) Name() string {
	if i == nil {
		return ""
	}
	return i.name
}

// Generic reports whether type parameters were stripped from the class name.
func (i *Info) Generic() bool {
	return i != nil && i.generic
}

// Available reports whether the type was resolved and introspected.
func (i *Info) Available() bool {
	return i != nil && i.available
}

// Len returns the number of distinct method names.
func (i *Info) Len() int {
	if i == nil {
		return 0
	}
	return len(i.methods)
}

// Methods returns a sorted copy of the method names.
func (i *Info) Methods() []string {
	if i == nil {
		return nil
	}
	out := make([]string, 0, len(i.methods))
	for m := range i.methods {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}
