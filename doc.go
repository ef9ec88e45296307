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

// Package rootiface answers one question for code generators: does a
// user-designated root interface already declare a method with this name?
//
// A generator that emits mapper interfaces may be told that every generated
// interface embeds a root interface such as "com.acme.BaseMapper" or
// "github.com/acme/mapper.Base[T]". Methods the root interface already
// declares must not be generated again. rootiface looks the root interface
// up once per generation run, remembers its method names and answers
// membership queries from memory:
//
//	var w warnings.Collector
//	inf := rootiface.GetOrCreate("github.com/acme/mapper.Base[User]", &w)
//	if !inf.ContainsMethod("Insert") {
//	    // generate Insert
//	}
//
// # Design
//
// The work is split into small replaceable layers:
//
//   - Resolver: turns a qualified name into a Handle. The type table
//     (resolver.Table) resolves types compiled into the binary and
//     registered up front; the package loader (resolver.Packages) loads Go
//     source through golang.org/x/tools/go/packages, the Go equivalent of a
//     classpath lookup.
//
//   - Introspector: lists the exported method names of a Handle, embedded
//     and promoted methods included. It is a chain of strategies
//     (MethodLister -> reflect -> go/types), mirroring how the resolver
//     chains lookups.
//
//   - Registry: caches one immutable info.Info per class name. The first
//     lookup of a name resolves and introspects it; concurrent first lookups
//     share that work; later lookups are a lock-free map read.
//
//   - Builder: composes Resolver and Introspector from a Config.
//
// # Failures
//
// A root interface that cannot be resolved or introspected is not an
// error for the caller. The registry records an Info with no methods and
// adds exactly one localized warning to the sink passed by the caller that
// triggered construction. The generator then emits every method, and the
// warning tells the user what to fix.
//
// # Lifecycle
//
// A long-lived host (an IDE plugin, a watch-mode generator) must call Reset
// at the start of every generation run, before any lookups, since source
// may have changed in between. Reset is not safe to call concurrently with
// GetOrCreate.
//
// # Global API
//
// Most programs create a registry.Registry and pass it to the components that
// need it. For hosts that prefer a process-wide instance this package keeps
// one in an atomically published snapshot:
//
//	GetOrCreate(className string, w apis.Warnings) *info.Info
//	Reset()
//	RegisterType(t reflect.Type) error
//	SetConfig(cfg apis.Config)
//	SetBuilder(b apis.Builder)
//
// Reads load the current snapshot without locking. Writers rebuild the
// registry under a mutex and swap the snapshot in.
package rootiface
