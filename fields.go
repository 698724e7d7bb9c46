package bytecast

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

type field struct {
	Name  string
	Type  reflect.Type
	Index []int

	// bytes to skip before the field
	Pad int
}

// fieldsToUnpack returns the fields of ty in declaration order, the order in which their bytes
// follow each other.
func fieldsToUnpack(ty reflect.Type, structTag string) ([]field, error) {
	if ty.Kind() != reflect.Struct {
		panic("not a struct")
	}

	var fields []field

	for idx := range ty.NumField() {
		fi := ty.Field(idx)
		if !fi.IsExported() {
			continue
		}

		pad, skip, err := parseTag(fi.Tag.Get(structTag))
		if err != nil {
			return nil, fmt.Errorf("tag of field %q: %w", fi.Name, err)
		}

		if skip {
			continue
		}

		fields = append(fields, field{
			Name:  fi.Name,
			Type:  fi.Type,
			Index: fi.Index,
			Pad:   pad,
		})
	}

	return fields, nil
}

func parseTag(tag string) (pad int, skip bool, err error) {
	if tag == "" {
		return 0, false, nil
	}

	if tag == "-" {
		return 0, true, nil
	}

	for _, option := range strings.Split(tag, ",") {
		key, value, _ := strings.Cut(option, "=")
		switch key {
		case "pad":
			pad, err = strconv.Atoi(value)
			if err != nil || pad < 0 {
				return 0, false, fmt.Errorf("invalid padding %q", value)
			}

		default:
			return 0, false, fmt.Errorf("unknown option %q", key)
		}
	}

	return pad, false, nil
}
