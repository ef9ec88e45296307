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

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"dirpx.dev/rootiface/apis"
	"dirpx.dev/rootiface/config"
	"dirpx.dev/rootiface/registry"
	"dirpx.dev/rootiface/warnings"
)

// errUnavailable is returned when a root interface cannot be inspected.
var errUnavailable = errors.New("root interface unavailable")

type inspectOptions struct {
	configFile     string
	dir            string
	tags           []string
	pointerMethods bool
	lang           string
	methods        []string
	verbose        bool
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "rootiface",
		Short:        "Inspect root interfaces used by code generators",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newInspectCmd())
	return rootCmd
}

func newInspectCmd() *cobra.Command {
	opts := &inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect <qualified-name>",
		Short: "List the methods a root interface declares",
		Long: `Resolve a root interface such as "github.com/acme/mapper.Base[T]" by
loading its package, then print the methods it declares. With --method,
report for each name whether a generator would skip it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			return runInspect(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configFile, "config", "", "configuration file (YAML, TOML or JSON)")
	f.StringVar(&opts.dir, "dir", "", "directory to load packages from")
	f.StringSliceVar(&opts.tags, "build-flags", nil, "build flags passed to the package loader")
	f.BoolVar(&opts.pointerMethods, "pointer-methods", config.DefaultPointerMethods, "count methods on *T for concrete types")
	f.StringVar(&opts.lang, "lang", config.DefaultLanguage, "warning language (BCP 47)")
	f.StringArrayVarP(&opts.methods, "method", "m", nil, "method name to check (repeatable)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")
	return cmd
}

// config merges file or environment configuration with explicitly set flags.
func (o *inspectOptions) config(cmd *cobra.Command) (apis.Config, error) {
	cfg := config.FromEnv()
	if o.configFile != "" {
		var err error
		if cfg, err = config.FromFile(o.configFile); err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	opts := []config.Option{config.WithLoadPackages(true)}
	if f.Changed("dir") {
		opts = append(opts, config.WithDir(o.dir))
	}
	if f.Changed("build-flags") {
		opts = append(opts, config.WithBuildFlags(o.tags...))
	}
	if f.Changed("pointer-methods") {
		opts = append(opts, config.WithPointerMethods(o.pointerMethods))
	}
	if f.Changed("lang") {
		opts = append(opts, config.WithLanguage(o.lang))
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, nil
}

func runInspect(out, errOut io.Writer, cfg apis.Config, name string, opts *inspectOptions) error {
	level := zerolog.InfoLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: errOut, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	reg := registry.New(registry.WithConfig(cfg), registry.WithLogger(log))
	var w warnings.Collector
	inf := reg.GetOrCreate(name, &w)

	fmt.Fprintf(out, "class:   %s\n", inf.ClassName())
	fmt.Fprintf(out, "lookup:  %s\n", inf.Name())
	fmt.Fprintf(out, "generic: %t\n", inf.Generic())
	for _, m := range inf.Methods() {
		fmt.Fprintf(out, "  %s\n", m)
	}
	for _, m := range opts.methods {
		verdict := "generate"
		if inf.ContainsMethod(m) {
			verdict = "skip (declared)"
		}
		fmt.Fprintf(out, "method %s: %s\n", m, verdict)
	}
	for _, msg := range w.Messages() {
		fmt.Fprintf(errOut, "warning: %s\n", msg)
	}

	if !inf.Available() {
		return fmt.Errorf("%w: %s", errUnavailable, name)
	}
	return nil
}
