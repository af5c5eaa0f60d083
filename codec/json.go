package codec

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

func init() {
	Register(JSON{})
	Register(Binary{})
}

// JSON is the structured-text Format. Struct payloads are decoded
// field-by-field so that a malformed value can be attributed to the
// offending field by name.
type JSON struct{}

// Name implements Format.
func (JSON) Name() string { return "json" }

// Encode implements Format. It never fails for valid schema values.
func (JSON) Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json encode: %w", err)
	}
	return data, nil
}

// Decode implements Format.
func (f JSON) Decode(data []byte, v any) error {
	if len(data) == 0 {
		return &ConversionError{Format: f.Name(), Reason: "empty payload"}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Struct {
		if err := f.decodeStruct(data, rv.Elem()); err != nil {
			return err
		}
	} else {
		if err := json.Unmarshal(data, v); err != nil {
			return &ConversionError{Format: f.Name(), Reason: "malformed payload", Err: err}
		}
	}

	return runCheck(f.Name(), v)
}

// decodeStruct splits the payload into raw fields and decodes each one
// with the type's own conversion rule, so a failure names the field.
func (f JSON) decodeStruct(data []byte, rv reflect.Value) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return &ConversionError{Format: f.Name(), Reason: "payload is not a JSON object", Err: err}
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := jsonFieldName(sf)
		if name == "-" {
			continue
		}
		raw, ok := fields[name]
		if !ok {
			// Presence of required fields is reported by Check.
			continue
		}
		if err := json.Unmarshal(raw, rv.Field(i).Addr().Interface()); err != nil {
			return &ConversionError{
				Format: f.Name(),
				Field:  name,
				Reason: "malformed value",
				Err:    err,
			}
		}
	}
	return nil
}

// jsonFieldName resolves the wire name of a struct field from its json
// tag, falling back to the Go field name.
func jsonFieldName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return sf.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return sf.Name
	}
	return name
}
