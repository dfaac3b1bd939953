package dialog

import "reflect"

// Condition decides whether a widget is shown for the given data.
type Condition func(data map[string]any, manager Manager) bool

// When returns a Condition that is true when data[key] is truthy.
func When(key string) Condition {
	return func(data map[string]any, _ Manager) bool {
		return Truthy(data[key])
	}
}

// Not inverts a Condition. A nil condition is treated as always true.
func Not(c Condition) Condition {
	return func(data map[string]any, manager Manager) bool {
		if c == nil {
			return false
		}
		return !c(data, manager)
	}
}

// Visibility holds the optional condition of a widget.
type Visibility struct {
	When Condition
}

// IsVisible reports whether the widget should render. Widgets without a
// condition are always visible.
func (v Visibility) IsVisible(data map[string]any, manager Manager) bool {
	if v.When == nil {
		return true
	}
	return v.When(data, manager)
}

// Truthy mirrors template truthiness: nil, false, zero numbers and empty
// strings, slices and maps are false.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String:
		return rv.Len() > 0
	case reflect.Bool:
		return rv.Bool()
	default:
		return true
	}
}
