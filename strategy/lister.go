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

package strategy

import (
	"slices"

	"dirpx.dev/rootiface/apis"
)

// MethodLister is implemented by handles that already know their method
// names, such as handles produced by generator plugins or tests.
type MethodLister interface {
	MethodNames() []string
}

// NewListerStrategy creates an apis.Strategy that uses MethodLister.
func NewListerStrategy() apis.Strategy {
	return &listerStrategy{}
}

// listerStrategy is a zero-cost fast path: if h implements MethodLister,
// return its MethodNames() and stop the chain.
type listerStrategy struct{}

// Ensure listerStrategy implements apis.Strategy.
var _ apis.Strategy = (*listerStrategy)(nil)

// TryMethods checks if h implements MethodLister and returns a copy of its names.
func (*listerStrategy) TryMethods(h apis.Handle, _ apis.Config) ([]string, bool, error) {
	if h == nil {
		return nil, false, nil
	}
	if l, ok := h.(MethodLister); ok {
		return slices.Clone(l.MethodNames()), true, nil
	}
	return nil, false, nil
}
