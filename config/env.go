// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"os"
	"strings"
)

// Env represents a Source where its underlying values
// are extracted from environment variables.
type Env struct {
	prefix  string
	environ func() []string
}

// EnvOption configures an Env source.
type EnvOption func(*Env)

// EnvPrefix only applies environment variables which start with prefix.
// The prefix is trimmed from the resulting key, e.g. with a prefix of
// "APP_" the variable "APP_PORT" is applied as "PORT".
func EnvPrefix(prefix string) EnvOption {
	return func(e *Env) {
		e.prefix = prefix
	}
}

// FromEnv returns a Source which will apply its config
// from the environment variables available to the
// current process.
func FromEnv(opts ...EnvOption) Env {
	e := Env{
		environ: os.Environ,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Apply implements the Source interface.
func (src Env) Apply(store Store) error {
	m := make(Map)
	env := src.environ()
	for _, pair := range env {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		k, ok = strings.CutPrefix(k, src.prefix)
		if !ok || k == "" {
			continue
		}
		m[k] = v
	}
	return m.Apply(store)
}
