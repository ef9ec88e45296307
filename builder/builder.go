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

package builder

import (
	"dirpx.dev/rootiface/apis"
	"dirpx.dev/rootiface/introspector"
	"dirpx.dev/rootiface/resolver"
	"dirpx.dev/rootiface/strategy"
)

// New creates and returns a new instance of an apis.Builder.
// table may be nil when no in-process types are registered.
func New(table *resolver.Table) apis.Builder {
	return &builder{table: table}
}

// builder composes the default resolver and introspector chains.
type builder struct {
	table *resolver.Table
}

// BuildResolver returns a chain of the type table (if any) followed by the
// package loader when cfg.LoadPackages is set. The previous resolver is ignored.
func (b *builder) BuildResolver(cfg apis.Config, _ apis.Resolver) apis.Resolver {
	rs := make([]apis.Resolver, 0, 2)
	if b.table != nil {
		rs = append(rs, b.table)
	}
	if cfg.LoadPackages {
		rs = append(rs, resolver.NewPackages(cfg))
	}
	return resolver.New(rs...)
}

// BuildIntrospector returns the Lister -> Reflect -> Types strategy chain.
// Strategies are stateless, so a previous introspector is returned as is.
func (b *builder) BuildIntrospector(_ apis.Config, prev apis.Introspector) apis.Introspector {
	if prev != nil {
		return prev
	}
	return introspector.New(
		strategy.NewListerStrategy(),
		strategy.NewReflectStrategy(),
		strategy.NewTypesStrategy(),
	)
}
