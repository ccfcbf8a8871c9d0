package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/kaptinlin/jsonrepair"
)

// ParseStringAs attempts to parse a string into the specified type T.
// For primitive types (string, bool, int, uint, float), it performs direct conversion.
// For complex types (structs, maps, slices), it attempts JSON unmarshaling.
// If JSON unmarshaling fails, it will attempt to repair the JSON string using jsonrepair
// and retry the unmarshaling operation.
//
// Example usage:
//
//	type SearchInput struct {
//	    Query string `json:"query"`
//	}
//
//	// Parse a valid JSON string
//	input, err := ParseStringAs[SearchInput](`{"query":"restaurants in Seoul"}`)
//
//	// Parse an invalid JSON string (will be auto-repaired)
//	input, err := ParseStringAs[SearchInput](`{query: 'restaurants in Seoul'}`)
//
//	// Parse primitive types
//	num, err := ParseStringAs[int]("42")
//	flag, err := ParseStringAs[bool]("true")
func ParseStringAs[T any](content string) (T, error) {
	var result T

	kind := reflect.TypeOf((*T)(nil)).Elem().Kind()
	switch kind {
	case reflect.String:
		// If content looks like JSON, it may be a schema-wrapped value that
		// should be unwrapped to its inner string first.
		if len(content) > 0 && content[0] == '{' {
			if unwrapped, err := tryUnwrapPrimitive(content); err == nil {
				reflect.ValueOf(&result).Elem().SetString(unwrapped)
				return result, nil
			}
		}
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil

	case reflect.Bool,
		reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if err := setPrimitive(&result, kind, content); err != nil {
			// Try to unwrap if it's a schema-wrapped value.
			if unwrapped, unwrapErr := tryUnwrapPrimitive(content); unwrapErr == nil {
				if retryErr := setPrimitive(&result, kind, unwrapped); retryErr == nil {
					return result, nil
				}
			}
			return result, fmt.Errorf("failed to parse content as %s: %w", kindLabel(kind), err)
		}
		return result, nil

	default:
		// For structs, slices, maps, and other complex types, use JSON unmarshaling.
		err := json.Unmarshal([]byte(content), &result)
		if err == nil {
			return result, nil
		}

		// If JSON unmarshaling fails, attempt to repair the JSON and retry.
		repairedJSON, repairErr := jsonrepair.JSONRepair(content)
		if repairErr != nil {
			return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
		}

		err = json.Unmarshal([]byte(repairedJSON), &result)
		if err != nil {
			// If still failing, try to unwrap schema-like {type, value} structures.
			// This handles cases where LLMs confuse JSON schema with actual data.
			unwrapped, unwrapErr := unwrapSchemaValues(repairedJSON)
			if unwrapErr == nil {
				if retryErr := json.Unmarshal([]byte(unwrapped), &result); retryErr == nil {
					return result, nil
				}
			}

			return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (original content: %s, repaired: %s)", result, err, content, repairedJSON)
		}
		return result, nil
	}
}

// setPrimitive converts content with strconv and stores it into result through
// reflection. The caller is responsible for only passing primitive kinds.
func setPrimitive[T any](result *T, kind reflect.Kind, content string) error {
	target := reflect.ValueOf(result).Elem()

	switch kind {
	case reflect.Bool:
		val, err := strconv.ParseBool(content)
		if err != nil {
			return err
		}
		target.SetBool(val)
	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(content, 64)
		if err != nil {
			return err
		}
		target.SetFloat(val)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(content, 10, 64)
		if err != nil {
			return err
		}
		target.SetInt(val)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(content, 10, 64)
		if err != nil {
			return err
		}
		target.SetUint(val)
	default:
		return fmt.Errorf("unsupported primitive kind: %s", kind)
	}
	return nil
}

// kindLabel returns the short human-readable family name used in error messages.
func kindLabel(kind reflect.Kind) string {
	switch kind {
	case reflect.Bool:
		return "bool"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "uint"
	default:
		return kind.String()
	}
}

// tryUnwrapPrimitive attempts to unwrap a primitive value from a schema-like structure.
// Returns the string representation of the unwrapped value.
func tryUnwrapPrimitive(content string) (string, error) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return "", err
	}

	// Check if this has the schema pattern: {"type": "...", "value": ...}
	if _, hasType := data["type"]; hasType {
		if value, hasValue := data["value"]; hasValue && len(data) == 2 {
			switch v := value.(type) {
			case string:
				return v, nil
			case float64:
				return fmt.Sprintf("%v", v), nil
			case bool:
				return fmt.Sprintf("%v", v), nil
			default:
				// For complex types, marshal back to JSON.
				bytes, err := json.Marshal(v)
				if err != nil {
					return "", err
				}
				return string(bytes), nil
			}
		}
	}

	return "", fmt.Errorf("not a schema-wrapped value")
}

// unwrapSchemaValues attempts to detect and unwrap values that are wrapped
// in a schema-like structure with "type" and "value" fields.
// This is a common error when LLMs confuse JSON schema definitions with actual data.
//
// Example input:
//
//	{"query": {"type": "string", "value": "Seoul"}, "display": {"type": "integer", "value": 10}}
//
// Example output:
//
//	{"query": "Seoul", "display": 10}
func unwrapSchemaValues(jsonStr string) (string, error) {
	var data interface{}
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return "", err
	}

	unwrapped := recursiveUnwrap(data)

	result, err := json.Marshal(unwrapped)
	if err != nil {
		return "", err
	}
	return string(result), nil
}

// recursiveUnwrap recursively processes data structures to unwrap schema-like values
func recursiveUnwrap(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		// Check if this map has the schema pattern: {"type": "...", "value": ...}
		if _, hasType := v["type"]; hasType {
			if value, hasValue := v["value"]; hasValue && len(v) == 2 {
				// Recursively unwrap in case the value itself contains wrapped data.
				return recursiveUnwrap(value)
			}
		}

		// Not a schema wrapper, process each field recursively.
		result := make(map[string]interface{})
		for key, val := range v {
			result[key] = recursiveUnwrap(val)
		}
		return result

	case []interface{}:
		result := make([]interface{}, len(v))
		for i, val := range v {
			result[i] = recursiveUnwrap(val)
		}
		return result

	default:
		return data
	}
}
