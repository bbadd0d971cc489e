package mem

import (
	"fmt"
	"reflect"
	"sync"
)

// plainCache memoizes the per-type verdict; the reflect walk runs once per type.
var plainCache sync.Map // reflect.Type -> error (nil entry means plain)

// CheckPlain reports whether T is plain data: a fixed-size, pointer-free,
// relocatable value type. Containers refuse element types that fail this
// check, since their bytes are moved and freed without the garbage collector's
// knowledge. Returns nil or an error wrapping ErrNotPlain.
func CheckPlain[T any]() error {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := plainCache.Load(t); ok {
		if v == nil {
			return nil
		}
		return v.(error)
	}
	err := checkPlainType(t)
	if err == nil {
		plainCache.Store(t, nil)
	} else {
		plainCache.Store(t, err)
	}
	return err
}

// checkPlainType walks t recursively. Arrays and structs are plain when all
// of their parts are; every reference-carrying kind is rejected.
func checkPlainType(t reflect.Type) error {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return nil
	case reflect.Array:
		return checkPlainType(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if err := checkPlainType(t.Field(i).Type); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("mem: type %s has kind %s: %w", t, t.Kind(), ErrNotPlain)
	}
}
