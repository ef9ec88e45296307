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

// Strategy is a pluggable introspection step. An Introspector can chain
// multiple strategies in order (e.g., Reflect -> Types).
type Strategy interface {
	// TryMethods attempts to list the methods of h according to cfg.
	// It returns handled=false to fall through when h is not a handle
	// kind this strategy understands.
	TryMethods(h Handle, cfg Config) (methods []string, handled bool, err error)
}
