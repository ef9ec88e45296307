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

// Package typename normalizes qualified type names supplied by users.
//
// Two spellings of type parameters are accepted: angle brackets as written in
// generator configuration files ("com.acme.Mapper<User>") and Go square
// brackets ("example.com/acme.Mapper[User]"). Lookup always happens on the
// base name.
package typename

import (
	"errors"
	"reflect"
	"strings"
)

// ErrInvalidName is returned by Split when a name has no package qualifier.
var ErrInvalidName = errors.New("rootiface(typename): name is not package-qualified")

// Strip removes a type-parameter list from name and trims surrounding space.
// generic reports whether a parameter list was removed.
//
//	Strip("pkg.Foo<T>")  -> "pkg.Foo", true
//	Strip("pkg.Foo[K, V]") -> "pkg.Foo", true
//	Strip("pkg.Foo")     -> "pkg.Foo", false
//
// An empty bracket pair "[]" is an array suffix, not a parameter list.
func Strip(name string) (base string, generic bool) {
	name = strings.TrimSpace(name)
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '<':
			return strings.TrimSpace(name[:i]), true
		case '[':
			if i+1 < len(name) && name[i+1] == ']' {
				continue
			}
			return strings.TrimSpace(name[:i]), true
		}
	}
	return name, false
}

// Split separates a qualified name into its package part and type name.
// The separator is the last '.' after the last '/':
//
//	Split("github.com/acme/mapper.Base") -> "github.com/acme/mapper", "Base"
//	Split("com.acme.BaseMapper")         -> "com.acme", "BaseMapper"
func Split(qualified string) (pkg, name string, err error) {
	qualified = strings.TrimSpace(qualified)
	slash := strings.LastIndexByte(qualified, '/')
	dot := strings.LastIndexByte(qualified[slash+1:], '.')
	if dot < 0 {
		return "", "", ErrInvalidName
	}
	dot += slash + 1
	pkg, name = qualified[:dot], qualified[dot+1:]
	if pkg == "" || name == "" {
		return "", "", ErrInvalidName
	}
	return pkg, name, nil
}

// Qualified returns "pkgpath.Name" for a named reflect.Type, with any
// instantiation arguments removed. Builtin and unnamed types yield "".
func Qualified(t reflect.Type) string {
	if t == nil || t.Name() == "" || t.PkgPath() == "" {
		return ""
	}
	base, _ := Strip(t.Name())
	return t.PkgPath() + "." + base
}
