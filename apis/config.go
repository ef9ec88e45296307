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

// Config carries read-only knobs for resolution and introspection.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Dir is the working directory used when loading Go packages.
	// Empty means the current process directory.
	Dir string

	// BuildFlags are passed to the package loader (e.g. "-tags=integration").
	BuildFlags []string

	// LoadPackages enables resolution of names through the Go package loader
	// in addition to the in-process type table.
	LoadPackages bool

	// PackageCacheSize bounds how many loaded packages the loader keeps.
	PackageCacheSize int

	// PointerMethods controls whether methods declared on *T count as
	// declared by a concrete (non-interface) type T.
	PointerMethods bool

	// MaxUnwrap limits pointer/container unwrapping when registering
	// reflect types in the type table.
	MaxUnwrap int

	// Language is a BCP 47 tag selecting the warning message catalog.
	Language string

	// LogFailures additionally logs construction failures at error level.
	LogFailures bool
}
