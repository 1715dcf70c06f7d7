package toml

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
)

// Unmarshal parses TOML data into the value pointed to by v.
// Struct fields are matched by `toml` tag, falling back to the field name.
// Keys without a matching field are ignored; fields without a key keep their value.
func Unmarshal(data []byte, v any) error {
	m, err := Parse(data)
	if err != nil {
		return err
	}
	return Decode(m, v)
}

// Decode maps parsed TOML data onto v, which must be a non-nil pointer
func Decode(data any, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("toml: decode target must be a non-nil pointer, got %T", v)
	}
	return decodeInto(data, rv.Elem(), "")
}

var durationType = reflect.TypeOf(time.Duration(0))

func decodeInto(data any, rv reflect.Value, path string) error {
	if rv.Type() == durationType {
		switch d := data.(type) {
		case string:
			parsed, err := time.ParseDuration(d)
			if err != nil {
				return fmt.Errorf("toml: %s: %w", path, err)
			}
			rv.SetInt(int64(parsed))
			return nil
		case int64:
			if d > math.MaxInt64/int64(time.Millisecond) || d < math.MinInt64/int64(time.Millisecond) {
				return fmt.Errorf("toml: %s: %d milliseconds overflows a duration", path, d)
			}
			rv.SetInt(d * int64(time.Millisecond))
			return nil
		}
		return mismatch(path, "duration", data)
	}

	switch rv.Kind() {
	case reflect.Pointer:
		elem := reflect.New(rv.Type().Elem())
		if err := decodeInto(data, elem.Elem(), path); err != nil {
			return err
		}
		rv.Set(elem)

	case reflect.Struct:
		m, ok := data.(map[string]any)
		if !ok {
			return mismatch(path, "table", data)
		}
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name := f.Name
			if tag, _, _ := strings.Cut(f.Tag.Get("toml"), ","); tag != "" {
				if tag == "-" {
					continue
				}
				name = tag
			}
			val, ok := m[name]
			if !ok {
				continue
			}
			if err := decodeInto(val, rv.Field(i), join(path, name)); err != nil {
				return err
			}
		}

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("toml: %s: map key must be string", path)
		}
		m, ok := data.(map[string]any)
		if !ok {
			return mismatch(path, "table", data)
		}
		out := reflect.MakeMapWithSize(rv.Type(), len(m))
		for k, val := range m {
			elem := reflect.New(rv.Type().Elem()).Elem()
			if err := decodeInto(val, elem, join(path, k)); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()), elem)
		}
		rv.Set(out)

	case reflect.Slice:
		arr, ok := data.([]any)
		if !ok {
			return mismatch(path, "array", data)
		}
		out := reflect.MakeSlice(rv.Type(), len(arr), len(arr))
		for i, val := range arr {
			if err := decodeInto(val, out.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		rv.Set(out)

	case reflect.Interface:
		rv.Set(reflect.ValueOf(data))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := data.(int64)
		if !ok {
			return mismatch(path, "integer", data)
		}
		if rv.OverflowInt(n) {
			return fmt.Errorf("toml: %s: %d overflows %s", path, n, rv.Type())
		}
		rv.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := data.(int64)
		if !ok || n < 0 {
			return mismatch(path, "non-negative integer", data)
		}
		if rv.OverflowUint(uint64(n)) {
			return fmt.Errorf("toml: %s: %d overflows %s", path, n, rv.Type())
		}
		rv.SetUint(uint64(n))

	case reflect.Float32, reflect.Float64:
		switch f := data.(type) {
		case float64:
			rv.SetFloat(f)
		case int64:
			rv.SetFloat(float64(f))
		default:
			return mismatch(path, "float", data)
		}

	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return mismatch(path, "string", data)
		}
		rv.SetString(s)

	case reflect.Bool:
		b, ok := data.(bool)
		if !ok {
			return mismatch(path, "boolean", data)
		}
		rv.SetBool(b)

	default:
		return fmt.Errorf("toml: %s: unsupported kind %s", path, rv.Kind())
	}
	return nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func mismatch(path, want string, got any) error {
	return fmt.Errorf("toml: %s: expected %s, got %T", path, want, got)
}
