// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv_Apply(t *testing.T) {
	environ := func() []string {
		return []string{
			"APP_NAME=svc",
			"APP_=ignored",
			"HOME=/root",
			"MALFORMED",
		}
	}

	t.Run("will apply every variable", func(t *testing.T) {
		t.Run("if no prefix is set", func(t *testing.T) {
			m := make(Map)
			err := Env{environ: environ}.Apply(m)
			if !assert.Nil(t, err) {
				return
			}

			expected := Map{
				"APP_NAME": "svc",
				"APP_":     "ignored",
				"HOME":     "/root",
			}
			if !assert.Equal(t, expected, m) {
				return
			}
		})
	})

	t.Run("will only apply prefixed variables", func(t *testing.T) {
		t.Run("if a prefix is set", func(t *testing.T) {
			src := FromEnv(EnvPrefix("APP_"))
			src.environ = environ

			m := make(Map)
			err := src.Apply(m)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, Map{"NAME": "svc"}, m) {
				return
			}
		})
	})
}
