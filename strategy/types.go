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
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"dirpx.dev/rootiface/apis"
)

// NewTypesStrategy creates an apis.Strategy that lists methods of
// apis.TypesHandle types loaded from Go source.
func NewTypesStrategy() apis.Strategy {
	return typesStrategy{}
}

// typesStrategy introspects go/types named types. Promoted methods from
// embedded fields and embedded interfaces are part of the method set.
type typesStrategy struct{}

// Ensure typesStrategy implements apis.Strategy.
var _ apis.Strategy = (*typesStrategy)(nil)

// TryMethods lists the methods of a TypesHandle.
func (typesStrategy) TryMethods(h apis.Handle, cfg apis.Config) ([]string, bool, error) {
	th, ok := h.(apis.TypesHandle)
	if !ok {
		return nil, false, nil
	}
	if th.Named == nil {
		return nil, true, ErrNilHandle
	}

	var sels []*types.Selection
	if cfg.PointerMethods {
		// Methods of T and *T for concrete types; the interface's own set otherwise.
		sels = typeutil.IntuitiveMethodSet(th.Named, nil)
	} else {
		ms := types.NewMethodSet(th.Named)
		sels = make([]*types.Selection, 0, ms.Len())
		for i := 0; i < ms.Len(); i++ {
			sels = append(sels, ms.At(i))
		}
	}

	names := make([]string, 0, len(sels))
	for _, sel := range sels {
		if obj := sel.Obj(); obj.Exported() {
			names = append(names, obj.Name())
		}
	}
	return names, true, nil
}
