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
	"go/types"
	"reflect"
)

// Handle is an opaque reference to a resolved type. Concrete handle kinds
// are understood by the matching Strategy.
type Handle interface {
	// QualifiedName returns the name the handle was resolved from.
	QualifiedName() string
}

// ReflectHandle refers to a type compiled into the running process.
type ReflectHandle struct {
	Name string
	Type reflect.Type
}

// QualifiedName implements Handle.
func (h ReflectHandle) QualifiedName() string { return h.Name }

// TypesHandle refers to a named type loaded from Go source.
type TypesHandle struct {
	Name  string
	Named *types.Named
}

// QualifiedName implements Handle.
func (h TypesHandle) QualifiedName() string { return h.Name }
