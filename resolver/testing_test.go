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

package resolver_test

import (
	"go/token"
	"go/types"
	"sync/atomic"

	"golang.org/x/tools/go/packages"
)

// Base and Extended mirror a typical root interface hierarchy.
type Base interface {
	Insert() error
	SelectByPrimaryKey(id int64) error
}

type Extended interface {
	Base
	Count() int
}

type notNamed = struct{}

// fakeMapperPackage builds a type-checked package "example.com/acme/mapper"
// declaring interface Base { Insert() } and var Default int.
func fakeMapperPackage() *types.Package {
	pkg := types.NewPackage("example.com/acme/mapper", "mapper")
	sig := types.NewSignatureType(nil, nil, nil, nil, nil, false)
	insert := types.NewFunc(token.NoPos, pkg, "Insert", sig)
	iface := types.NewInterfaceType([]*types.Func{insert}, nil).Complete()
	tn := types.NewTypeName(token.NoPos, pkg, "Base", nil)
	types.NewNamed(tn, iface, nil)
	pkg.Scope().Insert(tn)
	pkg.Scope().Insert(types.NewVar(token.NoPos, pkg, "Default", types.Typ[types.Int]))
	pkg.MarkComplete()
	return pkg
}

// countingLoader serves fakeMapperPackage and counts invocations.
type countingLoader struct {
	calls atomic.Int64
}

func (l *countingLoader) Load(_ *packages.Config, patterns ...string) ([]*packages.Package, error) {
	l.calls.Add(1)
	var out []*packages.Package
	for _, p := range patterns {
		if p == "example.com/acme/mapper" {
			out = append(out, &packages.Package{PkgPath: p, Types: fakeMapperPackage()})
			continue
		}
		out = append(out, &packages.Package{
			PkgPath: p,
			Errors:  []packages.Error{{Msg: "cannot find package " + p, Kind: packages.ListError}},
		})
	}
	return out, nil
}
