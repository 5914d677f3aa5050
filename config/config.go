// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config reads configuration sources into structs whose fields
// may be [bow.Bow] values.
//
// A config struct can start out borrowing shared defaults and only take
// ownership of the fields a source actually sets:
//
//	defaults := Limits{MaxConns: 100}
//	cfg := Config{
//	    Limits: bow.Borrowed(&defaults),
//	}
//
//	m, err := config.Read(config.FromYaml(r))
//	if err != nil {
//	    return err
//	}
//	err = m.Unmarshal(&cfg)
package config

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/z5labs/bow/config/key"

	"github.com/go-viper/mapstructure/v2"
)

// Store represents a general key value structure.
type Store interface {
	Set(key.Keyer, any) error
}

// Source defines valid config sources as those who can
// serialize themselves into a key value like structure.
type Source interface {
	Apply(Store) error
}

// Manager holds the merged values of one or more sources.
type Manager struct {
	store Map
}

// Read applies each source to a single store.
// Subsequent sources override previous sources.
func Read(srcs ...Source) (*Manager, error) {
	store := make(Map)
	for _, src := range srcs {
		err := src.Apply(store)
		if err != nil {
			return nil, err
		}
	}
	m := &Manager{
		store: store,
	}
	return m, nil
}

// Unmarshal decodes the config values into v, which must be a pointer.
// Struct fields are matched using the "config" tag.
//
// Fields of type [bow.Bow] which are set by a source are replaced with
// an owned value, decoded on top of a copy of the field's current value.
// Fields which no source sets are left untouched, so borrowed defaults
// stay borrowed. The borrowed values themselves are never written to.
func (m *Manager) Unmarshal(v any) error {
	return decode(map[string]any(m.store), v)
}

func decode(data any, v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "config",
		Result:  v,
		DecodeHook: composeDecodeHooks(
			textUnmarshalerHookFunc(),
			timeDurationHookFunc(),
			bowHookFunc(decode),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when attempting to unmarshal a config
// value to a struct field whose type does not match the config
// value type, up to, coercion.
type TypeCoercionError struct {
	from  reflect.Value
	to    reflect.Value
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.from.Type(), e.to.Type(), e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, TypeCoercionError{
				from:  f,
				to:    t,
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(data.(string)))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(time.Duration(0)) {
			return nil, errInvalidDecodeCondition
		}

		switch f.Kind() {
		case reflect.String:
			return time.ParseDuration(data.(string))
		case reflect.Int:
			return time.Duration(int64(data.(int))), nil
		default:
			return nil, errInvalidDecodeCondition
		}
	}
}

// bowDecoder is implemented by *bow.Bow[T] for every T.
type bowDecoder interface {
	UnmarshalWith(func(any) error) error
}

var bowDecoderType = reflect.TypeFor[bowDecoder]()

func bowHookFunc(dec func(data, v any) error) mapstructure.DecodeHookFuncValue {
	return func(f reflect.Value, t reflect.Value) (any, error) {
		if f.Type() == t.Type() || !reflect.PointerTo(t.Type()).Implements(bowDecoderType) {
			return nil, errInvalidDecodeCondition
		}

		// start from the field's current value so fields the source
		// leaves out keep their defaults
		result := reflect.New(t.Type())
		result.Elem().Set(t)

		data := f.Interface()
		err := result.Interface().(bowDecoder).UnmarshalWith(func(v any) error {
			return dec(data, v)
		})
		if err != nil {
			return nil, err
		}
		return result.Elem().Interface(), nil
	}
}
