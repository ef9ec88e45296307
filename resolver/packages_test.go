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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/rootiface/apis"
	"dirpx.dev/rootiface/config"
	"dirpx.dev/rootiface/resolver"
	"dirpx.dev/rootiface/utils/typename"
)

func TestPackages_ResolveNamed(t *testing.T) {
	l := &countingLoader{}
	p := resolver.NewPackagesWithLoader(config.DefaultConfig(), l.Load)

	h, err := p.Resolve("example.com/acme/mapper.Base", config.DefaultConfig())
	require.NoError(t, err)

	th, ok := h.(apis.TypesHandle)
	require.True(t, ok)
	assert.Equal(t, "Base", th.Named.Obj().Name())
	assert.Equal(t, "example.com/acme/mapper.Base", th.QualifiedName())
}

func TestPackages_CachesPerPackage(t *testing.T) {
	l := &countingLoader{}
	cfg := config.DefaultConfig()
	p := resolver.NewPackagesWithLoader(cfg, l.Load)

	_, err := p.Resolve("example.com/acme/mapper.Base", cfg)
	require.NoError(t, err)
	_, err = p.Resolve("example.com/acme/mapper.Missing", cfg)
	require.Error(t, err)

	assert.EqualValues(t, 1, l.calls.Load())
	assert.Equal(t, 1, p.Len())

	p.Reset()
	assert.Zero(t, p.Len())

	_, err = p.Resolve("example.com/acme/mapper.Base", cfg)
	require.NoError(t, err)
	assert.EqualValues(t, 2, l.calls.Load())
}

func TestPackages_ConcurrentLoadOnce(t *testing.T) {
	l := &countingLoader{}
	cfg := config.DefaultConfig()
	p := resolver.NewPackagesWithLoader(cfg, l.Load)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := p.Resolve("example.com/acme/mapper.Base", cfg); err != nil {
				t.Errorf("resolve: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, l.calls.Load())
}

func TestPackages_Errors(t *testing.T) {
	l := &countingLoader{}
	cfg := config.DefaultConfig()
	p := resolver.NewPackagesWithLoader(cfg, l.Load)

	_, err := p.Resolve("Unqualified", cfg)
	assert.ErrorIs(t, err, apis.ErrClassResolution)
	assert.ErrorIs(t, err, typename.ErrInvalidName)

	_, err = p.Resolve("example.com/acme/mapper.Missing", cfg)
	assert.ErrorIs(t, err, resolver.ErrNotFound)

	_, err = p.Resolve("example.com/acme/mapper.Default", cfg)
	assert.ErrorIs(t, err, resolver.ErrNotNamedType)

	_, err = p.Resolve("example.com/nowhere.Base", cfg)
	assert.ErrorIs(t, err, apis.ErrClassResolution)
	assert.ErrorIs(t, err, resolver.ErrPackageLoad)
}

func TestPackages_LoadsStandardLibrary(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages through the go command")
	}
	p := resolver.NewPackages(config.DefaultConfig())

	h, err := p.Resolve("io.ReadWriter", config.DefaultConfig())
	require.NoError(t, err)
	th, ok := h.(apis.TypesHandle)
	require.True(t, ok)
	assert.Equal(t, "ReadWriter", th.Named.Obj().Name())
}
