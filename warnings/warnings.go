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

// Package warnings provides apis.Warnings sinks.
package warnings

import (
	"slices"
	"sync"

	"dirpx.dev/rootiface/apis"
)

// Collector is a concurrency-safe warnings sink that keeps messages in
// arrival order. The zero value is ready to use.
type Collector struct {
	mu   sync.Mutex
	msgs []string
}

// Ensure Collector implements apis.Warnings.
var _ apis.Warnings = (*Collector)(nil)

// Add appends message.
func (c *Collector) Add(message string) {
	c.mu.Lock()
	c.msgs = append(c.msgs, message)
	c.mu.Unlock()
}

// Messages returns a copy of the collected messages.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.msgs)
}

// Len returns the number of collected messages.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.msgs)
}

// Func adapts a plain function to apis.Warnings.
type Func func(message string)

// Add calls f(message).
func (f Func) Add(message string) { f(message) }

// Discard drops every message.
var Discard apis.Warnings = Func(func(string) {})
