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

package rootiface

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/rootiface/apis"
	"dirpx.dev/rootiface/config"
	"dirpx.dev/rootiface/registry"
	"dirpx.dev/rootiface/warnings"
)

type BaseMapper interface {
	Insert() error
	SelectByPrimaryKey(id int64) error
}

// resetGlobal restores a deterministic global state for one test.
func resetGlobal(tb testing.TB) {
	tb.Helper()
	SetConfig(config.NewConfig(config.WithLoadPackages(false)))
	SetLogger(zerolog.Nop())
	Types().Clear()
	tb.Cleanup(func() {
		Types().Clear()
		SetConfig(config.DefaultConfig())
	})
}

func TestGlobal_GetOrCreate(t *testing.T) {
	resetGlobal(t)
	require.NoError(t, RegisterTypeAs("com.acme.BaseMapper", reflect.TypeOf((*BaseMapper)(nil))))

	var w warnings.Collector
	inf := GetOrCreate("com.acme.BaseMapper<User>", &w)

	assert.True(t, ContainsMethod(inf, "Insert"))
	assert.False(t, ContainsMethod(inf, "Update"))
	assert.False(t, ContainsMethod(nil, "Insert"))
	assert.Zero(t, w.Len())
	assert.Same(t, inf, GetOrCreate("com.acme.BaseMapper<User>", &w))
}

func TestGlobal_RegisterType(t *testing.T) {
	resetGlobal(t)
	require.NoError(t, RegisterType(reflect.TypeOf((*BaseMapper)(nil))))

	inf := GetOrCreate("dirpx.dev/rootiface.BaseMapper", nil)
	assert.Equal(t, []string{"Insert", "SelectByPrimaryKey"}, inf.Methods())
	assert.Equal(t, 1, Types().Count())
}

func TestGlobal_ResetRetriesResolution(t *testing.T) {
	resetGlobal(t)

	var w warnings.Collector
	assert.False(t, GetOrCreate("com.acme.BaseMapper", &w).Available())
	require.Equal(t, 1, w.Len())

	// The type becomes known between runs.
	require.NoError(t, RegisterTypeAs("com.acme.BaseMapper", reflect.TypeOf((*BaseMapper)(nil))))
	assert.False(t, GetOrCreate("com.acme.BaseMapper", &w).Available(), "cached until reset")

	Reset()
	assert.True(t, GetOrCreate("com.acme.BaseMapper", &w).Available())
	assert.Equal(t, 1, w.Len())
}

func TestGlobal_SetConfigRebuildsRegistry(t *testing.T) {
	resetGlobal(t)
	before := Registry()
	GetOrCreate("com.acme.Anything", nil)
	require.Equal(t, 1, before.Len())

	cfg := config.NewConfig(config.WithLoadPackages(false), config.WithLanguage("de"))
	SetConfig(cfg)

	assert.NotSame(t, before, Registry())
	assert.Zero(t, Registry().Len())
	assert.Equal(t, "de", Config().Language)
	assert.Equal(t, cfg, Registry().Config())
}

func TestGlobal_SetLoggerReceivesFailures(t *testing.T) {
	resetGlobal(t)
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	GetOrCreate("com.acme.Missing", nil)

	assert.Contains(t, buf.String(), "com.acme.Missing")
}

// stubBuilder resolves every name to a handle listing one method.
type stubBuilder struct{ apis.Builder }

type stubResolver struct{}

type stubHandle struct{ name string }

func (h stubHandle) QualifiedName() string { return h.name }
func (h stubHandle) MethodNames() []string { return []string{"fromStub"} }

func (stubResolver) Resolve(name string, _ apis.Config) (apis.Handle, error) {
	return stubHandle{name: name}, nil
}

func (b stubBuilder) BuildResolver(apis.Config, apis.Resolver) apis.Resolver {
	return stubResolver{}
}

func TestGlobal_SetBuilder(t *testing.T) {
	resetGlobal(t)
	prev := Builder()
	t.Cleanup(func() { SetBuilder(prev) })

	SetBuilder(stubBuilder{Builder: prev})
	SetBuilder(nil) // ignored

	assert.True(t, GetOrCreate("any.Name", nil).ContainsMethod("fromStub"))
}

func TestGlobal_SetRegistry(t *testing.T) {
	resetGlobal(t)
	prev := Registry()
	t.Cleanup(func() { SetRegistry(prev) })

	reg := registry.New(registry.WithConfig(config.NewConfig(config.WithLoadPackages(false))))
	SetRegistry(reg)
	SetRegistry(nil) // ignored

	assert.Same(t, reg, Registry())
}
