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

import (
	"errors"
	"fmt"
)

var (
	// ErrClassResolution matches every *ResolutionError via errors.Is.
	ErrClassResolution = errors.New("rootiface: class resolution failed")
	// ErrIntrospection matches every *IntrospectionError via errors.Is.
	ErrIntrospection = errors.New("rootiface: introspection failed")
)

// ResolutionError reports that a name could not be resolved to a type.
type ResolutionError struct {
	Name string
	Err  error
}

func (e *ResolutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("rootiface: cannot resolve %q", e.Name)
	}
	return fmt.Sprintf("rootiface: cannot resolve %q: %v", e.Name, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Is reports ErrClassResolution as a match.
func (e *ResolutionError) Is(target error) bool { return target == ErrClassResolution }

// IntrospectionError reports that a resolved type could not be introspected.
type IntrospectionError struct {
	Name string
	Err  error
}

func (e *IntrospectionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("rootiface: cannot introspect %q", e.Name)
	}
	return fmt.Sprintf("rootiface: cannot introspect %q: %v", e.Name, e.Err)
}

func (e *IntrospectionError) Unwrap() error { return e.Err }

// Is reports ErrIntrospection as a match.
func (e *IntrospectionError) Is(target error) bool { return target == ErrIntrospection }
