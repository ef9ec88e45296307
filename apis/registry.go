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

package apis

import (
	"reflect"

	"dirpx.dev/rootiface/info"
)

// Registry caches introspection results per class name for one generation run.
type Registry interface {
	// GetOrCreate returns the Info for className, constructing it at most once.
	// Failures are reported to w and never returned.
	GetOrCreate(className string, w Warnings) *info.Info
	// Len returns the number of cached entries.
	Len() int
	// Reset clears all cached entries.
	Reset()
}

// Entry is a single (name, type) association in a type table snapshot.
type Entry struct {
	// Name is the qualified name or alias the type is resolvable by.
	Name string
	// Type is the registered reflect.Type.
	Type reflect.Type
}
