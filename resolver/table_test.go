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
	"errors"
	"reflect"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/rootiface/apis"
	"dirpx.dev/rootiface/config"
	"dirpx.dev/rootiface/resolver"
	uref "dirpx.dev/rootiface/utils/reflect"
)

var (
	baseType     = reflect.TypeOf((*Base)(nil)).Elem()
	extendedType = reflect.TypeOf((*Extended)(nil)).Elem()
	baseName     = "dirpx.dev/rootiface/resolver_test.Base"
)

func TestTable_RegisterAndResolve(t *testing.T) {
	tbl := resolver.NewTable(config.DefaultConfig())

	// pointer -> nearest named = Base
	require.NoError(t, tbl.Register(reflect.TypeOf((*Base)(nil))))
	// idempotent re-register
	require.NoError(t, tbl.Register(baseType))

	got, ok := tbl.Lookup(baseName)
	require.True(t, ok)
	assert.Equal(t, baseType, got)
	assert.Equal(t, 1, tbl.Count())

	h, err := tbl.Resolve(baseName, config.DefaultConfig())
	require.NoError(t, err)
	rh, ok := h.(apis.ReflectHandle)
	require.True(t, ok)
	assert.Equal(t, baseType, rh.Type)
	assert.Equal(t, baseName, rh.QualifiedName())
}

func TestTable_RegisterAs_Alias(t *testing.T) {
	tbl := resolver.NewTable(config.DefaultConfig())

	require.NoError(t, tbl.RegisterAs(" com.acme.BaseMapper ", baseType))

	got, ok := tbl.Lookup("com.acme.BaseMapper")
	require.True(t, ok)
	assert.Equal(t, baseType, got)
}

func TestTable_Conflict(t *testing.T) {
	tbl := resolver.NewTable(config.DefaultConfig())

	require.NoError(t, tbl.RegisterAs("com.acme.BaseMapper", baseType))
	err := tbl.RegisterAs("com.acme.BaseMapper", extendedType)
	assert.ErrorIs(t, err, resolver.ErrConflictingRegistration)
}

func TestTable_Errors(t *testing.T) {
	tbl := resolver.NewTable(config.DefaultConfig())

	assert.ErrorIs(t, tbl.Register(nil), resolver.ErrNilType)
	assert.ErrorIs(t, tbl.RegisterAs("x", nil), resolver.ErrNilType)
	assert.ErrorIs(t, tbl.RegisterAs("  ", baseType), resolver.ErrEmptyName)
	assert.ErrorIs(t, tbl.Register(reflect.TypeOf(notNamed{})), uref.ErrReflectTypeNotNamed)
	// builtin: named but has no package path
	assert.ErrorIs(t, tbl.Register(reflect.TypeOf(0)), uref.ErrReflectTypeNotNamed)
}

func TestTable_ResolveMissing(t *testing.T) {
	tbl := resolver.NewTable(config.DefaultConfig())

	_, err := tbl.Resolve("com.acme.Missing", config.DefaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, apis.ErrClassResolution)
	assert.ErrorIs(t, err, resolver.ErrNotFound)

	var re *apis.ResolutionError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "com.acme.Missing", re.Name)
}

func TestTable_ClearSnapshot(t *testing.T) {
	tbl := resolver.NewTable(config.DefaultConfig())
	require.NoError(t, tbl.Register(baseType))
	require.NoError(t, tbl.Register(extendedType))

	snap := tbl.Entries()
	tbl.Clear()

	assert.Zero(t, tbl.Count())
	assert.Len(t, snap, 2)
	_, ok := tbl.Lookup(baseName)
	assert.False(t, ok)
}

// TestTable_ConcurrentRegisterAndLookup verifies that Register/Lookup/Entries/Count
// are race-free and consistent under concurrent use.
func TestTable_ConcurrentRegisterAndLookup(t *testing.T) {
	tbl := resolver.NewTable(config.DefaultConfig())
	types := []reflect.Type{baseType, extendedType}
	for _, tt := range types {
		require.NoError(t, tbl.Register(tt))
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	wg.Add(workers * 2)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				if _, ok := tbl.Lookup(baseName); !ok {
					t.Errorf("lookup failed for %s", baseName)
					return
				}
				_ = tbl.Count()
				_ = tbl.Entries()
			}
		}()
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				_ = tbl.Register(types[(i+id)%len(types)])
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, len(types), tbl.Count())
}
