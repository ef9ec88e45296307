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

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"dirpx.dev/rootiface/apis"
)

// EnvPrefix is the environment variable prefix read by FromEnv.
const EnvPrefix = "ROOTIFACE"

// Configuration keys understood by Load.
const (
	KeyDir              = "rootiface.dir"
	KeyBuildFlags       = "rootiface.build_flags"
	KeyLoadPackages     = "rootiface.load_packages"
	KeyPackageCacheSize = "rootiface.package_cache_size"
	KeyPointerMethods   = "rootiface.pointer_methods"
	KeyMaxUnwrap        = "rootiface.max_unwrap"
	KeyLanguage         = "rootiface.language"
	KeyLogFailures      = "rootiface.log_failures"
)

// SetDefaults registers DefaultConfig values on v.
func SetDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault(KeyDir, def.Dir)
	v.SetDefault(KeyBuildFlags, []string{})
	v.SetDefault(KeyLoadPackages, def.LoadPackages)
	v.SetDefault(KeyPackageCacheSize, def.PackageCacheSize)
	v.SetDefault(KeyPointerMethods, def.PointerMethods)
	v.SetDefault(KeyMaxUnwrap, def.MaxUnwrap)
	v.SetDefault(KeyLanguage, def.Language)
	v.SetDefault(KeyLogFailures, def.LogFailures)
}

// Load reads an apis.Config from v. Keys missing from v take their defaults.
func Load(v *viper.Viper) apis.Config {
	SetDefaults(v)
	return NewConfig(
		WithDir(v.GetString(KeyDir)),
		WithBuildFlags(v.GetStringSlice(KeyBuildFlags)...),
		WithLoadPackages(v.GetBool(KeyLoadPackages)),
		WithPackageCacheSize(v.GetInt(KeyPackageCacheSize)),
		WithPointerMethods(v.GetBool(KeyPointerMethods)),
		WithMaxUnwrap(v.GetInt(KeyMaxUnwrap)),
		WithLanguage(v.GetString(KeyLanguage)),
		WithLogFailures(v.GetBool(KeyLogFailures)),
	)
}

// FromEnv reads an apis.Config from ROOTIFACE_* environment variables,
// e.g. ROOTIFACE_DIR or ROOTIFACE_POINTER_METHODS=false.
func FromEnv() apis.Config {
	return Load(newEnvViper())
}

// FromFile reads an apis.Config from a YAML/TOML/JSON file. Environment
// variables override file values.
func FromFile(path string) (apis.Config, error) {
	v := newEnvViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return DefaultConfig(), fmt.Errorf("rootiface(config): read %s: %w", path, err)
	}
	return Load(v), nil
}

// keys lists every configuration key bound to an environment variable.
var keys = []string{
	KeyDir,
	KeyBuildFlags,
	KeyLoadPackages,
	KeyPackageCacheSize,
	KeyPointerMethods,
	KeyMaxUnwrap,
	KeyLanguage,
	KeyLogFailures,
}

// EnvName returns the environment variable read for key,
// e.g. "rootiface.pointer_methods" -> ROOTIFACE_POINTER_METHODS.
func EnvName(key string) string {
	key = strings.TrimPrefix(key, "rootiface.")
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func newEnvViper() *viper.Viper {
	v := viper.New()
	for _, key := range keys {
		// BindEnv only fails without a key.
		_ = v.BindEnv(key, EnvName(key))
	}
	return v
}
