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

package resolver

import (
	"errors"

	"dirpx.dev/rootiface/apis"
)

// New constructs an apis.Resolver that tries the given resolvers in order.
// Nil resolvers are ignored. The returned resolver is safe for concurrent use
// provided the resolvers themselves are.
func New(resolvers ...apis.Resolver) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Resolver, 0, len(resolvers))
	for _, r := range resolvers {
		if r != nil {
			out = append(out, r)
		}
	}
	return chain{resolvers: out}
}

// chain is an immutable, order-preserving resolver over a set of resolvers.
type chain struct {
	resolvers []apis.Resolver
}

// Resolve returns the first successful resolution. If every resolver fails,
// their errors are joined into a single *apis.ResolutionError.
func (c chain) Resolve(name string, cfg apis.Config) (apis.Handle, error) {
	if len(c.resolvers) == 0 {
		return nil, &apis.ResolutionError{Name: name, Err: ErrNotFound}
	}
	var errs []error
	for _, r := range c.resolvers {
		h, err := r.Resolve(name, cfg)
		if err == nil && h != nil {
			return h, nil
		}
		if err == nil {
			err = ErrNotFound
		}
		errs = append(errs, err)
	}
	if len(errs) == 1 {
		var re *apis.ResolutionError
		if errors.As(errs[0], &re) {
			return nil, re
		}
	}
	return nil, &apis.ResolutionError{Name: name, Err: errors.Join(errs...)}
}

// Reset forwards to every resolver that keeps its own cache.
func (c chain) Reset() {
	for _, r := range c.resolvers {
		if rs, ok := r.(apis.Resetter); ok {
			rs.Reset()
		}
	}
}
