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

// Introspector lists the externally visible method names of a resolved type.
//
// Inherited (embedded or promoted) methods are included and duplicate names
// collapse to a single entry. Order is stable for a given type.
type Introspector interface {
	// Methods returns the method names of h, or an *IntrospectionError.
	Methods(h Handle, cfg Config) ([]string, error)
}
