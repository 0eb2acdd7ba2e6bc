package binder

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var (
	errBadNumber = errors.New("not a number")
	errBadBool   = errors.New("not a boolean")
)

// decodeValues copies values into the exported fields of the struct dst
// points to. The key for a field is its tag value, or the lowercased field
// name when untagged; tag "-" skips the field. Failures wrap kindErr and name
// the field, never the value.
func decodeValues(dst any, tag string, values map[string][]string, kindErr error) error {
	ptr := reflect.ValueOf(dst)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() || ptr.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	target := ptr.Elem()

	for _, sf := range reflect.VisibleFields(target.Type()) {
		if !sf.IsExported() || sf.Anonymous || len(sf.Index) != 1 {
			continue
		}
		key := fieldKey(sf, tag)
		if key == "" {
			continue
		}
		raw := values[key]
		if len(raw) == 0 {
			continue
		}
		if err := assign(target.FieldByIndex(sf.Index), raw); err != nil {
			return fmt.Errorf("%w: field %s: %v", kindErr, sf.Name, err)
		}
	}
	return nil
}

func fieldKey(sf reflect.StructField, tag string) string {
	name, _, _ := strings.Cut(sf.Tag.Get(tag), ",")
	switch name {
	case "-":
		return ""
	case "":
		if _, tagged := sf.Tag.Lookup(tag); tagged {
			return ""
		}
		return strings.ToLower(sf.Name)
	}
	return name
}

// assign stores raw into v. Slices take every value, splitting each on
// commas; scalars take the first.
func assign(v reflect.Value, raw []string) error {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return assign(v.Elem(), raw)

	case reflect.Slice:
		var items []string
		for _, r := range raw {
			for _, part := range strings.Split(r, ",") {
				items = append(items, strings.TrimSpace(part))
			}
		}
		out := reflect.MakeSlice(v.Type(), len(items), len(items))
		for i, item := range items {
			if err := assign(out.Index(i), []string{item}); err != nil {
				return err
			}
		}
		v.Set(out)
		return nil
	}
	return assignScalar(v, raw[0])
}

func assignScalar(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Interface:
		if v.NumMethod() != 0 {
			return fmt.Errorf("cannot decode into %s", v.Type())
		}
		v.Set(reflect.ValueOf(s))
	case reflect.Bool:
		b, ok := parseBool(s)
		if !ok {
			return errBadBool
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return errBadNumber
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return errBadNumber
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return errBadNumber
		}
		v.SetFloat(n)
	default:
		return fmt.Errorf("cannot decode into %s", v.Type())
	}
	return nil
}

// parseBool accepts checkbox style values on top of strconv.ParseBool.
func parseBool(s string) (bool, bool) {
	if b, err := strconv.ParseBool(s); err == nil {
		return b, true
	}
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, true
	case "off", "no", "":
		return false, true
	}
	return false, false
}
