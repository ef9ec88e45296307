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

// Resolver turns a qualified type name into a loadable Handle.
// Implementations must be safe for concurrent use.
type Resolver interface {
	// Resolve returns a Handle for name, or a *ResolutionError if the
	// name cannot be loaded.
	Resolve(name string, cfg Config) (Handle, error)
}

// Resetter is implemented by collaborators that keep their own caches
// and must drop them between generation runs.
type Resetter interface {
	Reset()
}
