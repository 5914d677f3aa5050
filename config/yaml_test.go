// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/z5labs/bow/config/key"
	"github.com/z5labs/bow/internal/try"

	"github.com/stretchr/testify/assert"
)

type readFunc func([]byte) (int, error)

func (f readFunc) Read(b []byte) (int, error) {
	return f(b)
}

type readCloser struct {
	io.Reader
	close func() error
}

func (rc readCloser) Close() error {
	return rc.close()
}

func TestYaml_Apply(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the underlying io.Reader fails", func(t *testing.T) {
			readErr := errors.New("failed to read")
			r := readFunc(func(b []byte) (int, error) {
				return 0, readErr
			})

			store := storeFunc(func(k key.Keyer, a any) error {
				return nil
			})

			src := FromYaml(r)
			err := src.Apply(store)
			if !assert.ErrorIs(t, err, readErr) {
				return
			}
		})

		t.Run("if the io.Reader contains invalid YAML", func(t *testing.T) {
			r := strings.NewReader(`hello`)

			store := storeFunc(func(k key.Keyer, a any) error {
				return nil
			})

			src := FromYaml(r)
			err := src.Apply(store)

			var ierr InvalidYamlError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.NotEmpty(t, ierr.Error()) {
				return
			}
			if !assert.NotNil(t, ierr.Unwrap()) {
				return
			}
		})

		t.Run("if the io.Reader fails to close", func(t *testing.T) {
			closeErr := errors.New("failed to close")
			r := readCloser{
				Reader: strings.NewReader(`hello: world`),
				close: func() error {
					return closeErr
				},
			}

			store := storeFunc(func(k key.Keyer, a any) error {
				return nil
			})

			src := FromYaml(r)
			err := src.Apply(store)
			if !assert.ErrorIs(t, err, closeErr) {
				return
			}

			var cerr try.CloseError
			if !assert.ErrorAs(t, err, &cerr) {
				return
			}
		})
	})

	t.Run("will set nested keys", func(t *testing.T) {
		r := strings.NewReader(`
server:
  host: localhost
  port: 8080
`)

		m := make(Map)
		err := FromYaml(r).Apply(m)
		if !assert.Nil(t, err) {
			return
		}

		expected := Map{
			"server": map[string]any{
				"host": "localhost",
				"port": 8080,
			},
		}
		if !assert.Equal(t, expected, m) {
			return
		}
	})
}
