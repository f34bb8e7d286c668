package core

import "reflect"

// Body collects the members of a JSON request body.
type Body map[string]interface{}

// Set adds a required member.
func (b Body) Set(key string, v interface{}) Body {
	b[key] = v
	return b
}

// SetOptional adds v unless it is unset: nil, a nil pointer, a pointer to an
// empty string, or an empty string, slice or map.
func (b Body) SetOptional(key string, v interface{}) Body {
	if !isUnset(v) {
		b[key] = v
	}
	return b
}

func isUnset(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return true
		}
		return rv.Elem().Kind() == reflect.String && rv.Elem().Len() == 0
	case reflect.Interface:
		return rv.IsNil()
	case reflect.String, reflect.Slice, reflect.Map:
		return rv.Len() == 0
	}
	return false
}
