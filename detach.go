// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package bow

import "reflect"

// detach returns a copy of v which shares no maps, slices, pointers or
// interface values reachable through exported fields with v. Decoders
// write into existing maps, slice backing arrays and pointees, so the
// copy is what makes decoding on top of a borrowed value safe.
//
// T itself is never asked to clone.
func detach[T any](v T) T {
	d := detacher{seen: make(map[uintptr]reflect.Value)}
	d.value(reflect.ValueOf(&v).Elem())
	return v
}

type detacher struct {
	// seen maps original pointers to their copies so cycles terminate
	// and shared pointees stay shared in the copy.
	seen map[uintptr]reflect.Value
}

func (d detacher) value(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return
		}
		if p, ok := d.seen[v.Pointer()]; ok {
			v.Set(p)
			return
		}
		p := reflect.New(v.Type().Elem())
		d.seen[v.Pointer()] = p
		p.Elem().Set(v.Elem())
		d.value(p.Elem())
		v.Set(p)
	case reflect.Slice:
		if v.IsNil() {
			return
		}
		s := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(s, v)
		for i := range s.Len() {
			d.value(s.Index(i))
		}
		v.Set(s)
	case reflect.Array:
		for i := range v.Len() {
			d.value(v.Index(i))
		}
	case reflect.Map:
		if v.IsNil() {
			return
		}
		m := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			e := reflect.New(v.Type().Elem()).Elem()
			e.Set(iter.Value())
			d.value(e)
			m.SetMapIndex(iter.Key(), e)
		}
		v.Set(m)
	case reflect.Struct:
		for i := range v.NumField() {
			f := v.Field(i)
			if f.CanSet() {
				d.value(f)
			}
		}
	case reflect.Interface:
		if v.IsNil() {
			return
		}
		e := reflect.New(v.Elem().Type()).Elem()
		e.Set(v.Elem())
		d.value(e)
		v.Set(e)
	}
}
