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

package registry_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"dirpx.dev/rootiface/apis"
)

// listedHandle carries its own method names; the default introspector
// answers it through the lister strategy.
type listedHandle struct {
	name    string
	methods []string
}

func (h listedHandle) QualifiedName() string { return h.name }
func (h listedHandle) MethodNames() []string { return h.methods }

var errUnknownClass = errors.New("unknown class")

// fakeResolver serves a fixed set of classes and counts calls per name.
type fakeResolver struct {
	classes map[string][]string
	delay   time.Duration
	panics  bool

	total atomic.Int64
	mu    sync.Mutex
	calls map[string]int
	reset atomic.Int64
}

func newFakeResolver(classes map[string][]string) *fakeResolver {
	return &fakeResolver{classes: classes, calls: map[string]int{}}
}

func (f *fakeResolver) Resolve(name string, _ apis.Config) (apis.Handle, error) {
	f.total.Add(1)
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.panics {
		panic("resolver exploded")
	}
	methods, ok := f.classes[name]
	if !ok {
		return nil, &apis.ResolutionError{Name: name, Err: errUnknownClass}
	}
	return listedHandle{name: name, methods: methods}, nil
}

func (f *fakeResolver) Reset() { f.reset.Add(1) }

func (f *fakeResolver) callsFor(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}
