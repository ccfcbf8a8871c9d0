package jsonschema

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
)

// Schema represents the structure of JSON Schema used for defining arguments and responses.
// It follows the JSON Schema standard, supporting various types, properties, and validation rules.
// This structure is typically used to define the expected format of arguments for tools
// and to validate that incoming data conforms to the expected structure.
type Schema struct {
	// Type specifies the data type (e.g., "object", "array", "string", "number")
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of the arguments, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// For array types, defines the schema of items in the array
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties controls whether properties not defined in Properties are allowed
	AdditionalProperties any `json:"additionalProperties,omitempty"`
	// Default value for the parameter
	Default any `json:"default,omitempty"`
	// Enum contains the list of allowed values for the parameter
	Enum []any `json:"enum,omitempty"`
	// Ref is used for JSON Schema references to avoid infinite recursion
	Ref string `json:"$ref,omitempty"`
	// Defs contains reusable schema definitions
	Defs map[string]*Schema `json:"$defs,omitempty"`
}

// GenerateJSONSchema derives a [Schema] from the Go type T using reflection.
// Struct fields are mapped through their json tags, and the jsonschema struct
// tag contributes descriptions, enums, and required markers. Recursive types
// are broken up with $defs and $ref entries so generation always terminates.
func GenerateJSONSchema[T any]() *Schema {
	g := &generator{
		visited: make(map[reflect.Type]string),
		defs:    make(map[string]*Schema),
	}

	schema := g.typeSchema(reflect.TypeOf((*T)(nil)).Elem(), true)

	if len(g.defs) > 0 {
		schema.Defs = g.defs
	}
	return schema
}

// generator tracks visited struct types and collected definitions so that
// recursive types resolve to references instead of looping forever.
type generator struct {
	visited map[reflect.Type]string
	defs    map[string]*Schema
}

// typeSchema maps a reflect.Type onto its schema. Pointers are unwrapped to
// their element type; optionality is expressed through the required list of
// the enclosing object instead.
func (g *generator) typeSchema(t reflect.Type, isRoot bool) *Schema {
	switch t.Kind() {
	case reflect.Ptr:
		return g.typeSchema(t.Elem(), isRoot)
	case reflect.String:
		return &Schema{Type: "string"}
	case reflect.Bool:
		return &Schema{Type: "boolean"}
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}
	case reflect.Slice, reflect.Array:
		return &Schema{
			Type:  "array",
			Items: g.typeSchema(t.Elem(), false),
		}
	case reflect.Map:
		return &Schema{
			Type:                 "object",
			AdditionalProperties: g.typeSchema(t.Elem(), false),
		}
	case reflect.Struct:
		return g.structSchema(t, isRoot)
	default:
		return &Schema{Type: "object"}
	}
}

// structSchema builds the schema for a struct type. Non-recursive structs are
// inlined wherever they appear. Recursive structs are stored once under $defs
// and referenced from every nested occurrence.
func (g *generator) structSchema(t reflect.Type, isRoot bool) *Schema {
	if defName, seen := g.visited[t]; seen {
		return &Schema{Ref: "#/$defs/" + defName}
	}

	if !isRecursive(t) {
		return g.fieldSchemas(t)
	}

	// Register the definition name before descending so self references
	// inside the fields resolve to the $defs entry.
	defName := definitionName(t)
	g.visited[t] = defName

	schema := g.fieldSchemas(t)
	g.defs[defName] = schema

	if isRoot {
		return schema
	}
	return &Schema{Ref: "#/$defs/" + defName}
}

// fieldSchemas iterates the exported fields of a struct and assembles the
// object schema with its properties and required list.
func (g *generator) fieldSchemas(t reflect.Type) *Schema {
	schema := &Schema{
		Type:       "object",
		Properties: make(map[string]*Schema),
	}
	required := make([]string, 0)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		fieldName, isOmitEmpty, skip := jsonFieldName(field)
		if skip {
			continue
		}

		fieldSchema := g.typeSchema(field.Type, false)
		schema.Properties[fieldName] = fieldSchema

		// Customizations from the jsonschema tag only apply to concrete
		// schemas; a $ref must stay bare per the JSON Schema spec.
		isRequiredByTag := false
		if fieldSchema.Ref == "" {
			var err error
			isRequiredByTag, err = applySchemaTag(field.Type, field.Tag, fieldSchema)
			if err != nil {
				slog.Error("invalid jsonschema tag", "field", fieldName, "error", err)
				// Continue with the field schema as generated.
			}
		}

		// A field is required when it is a non-pointer without omitempty,
		// or when the tag marks it required explicitly.
		if (field.Type.Kind() != reflect.Ptr && !isOmitEmpty) || isRequiredByTag {
			required = append(required, fieldName)
		}
	}

	if len(required) > 0 {
		schema.Required = required
	}
	return schema
}

// jsonFieldName resolves the property name of a struct field from its json
// tag, falling back to the Go field name. skip reports json:"-" fields.
func jsonFieldName(field reflect.StructField) (name string, omitEmpty, skip bool) {
	name = field.Name

	jsonTag := field.Tag.Get("json")
	if jsonTag == "-" {
		return "", false, true
	}
	if jsonTag == "" {
		return name, false, false
	}

	parts := strings.SplitN(jsonTag, ",", 2)
	if parts[0] != "" {
		name = parts[0]
	}
	if len(parts) == 2 {
		omitEmpty = strings.Contains(parts[1], "omitempty")
	}
	return name, omitEmpty, false
}

// isRecursive reports whether t can reach itself through its exported fields,
// including through pointers, slices, arrays, and map values.
func isRecursive(t reflect.Type) bool {
	return reaches(t, t, make(map[reflect.Type]bool))
}

func reaches(target, current reflect.Type, seen map[reflect.Type]bool) bool {
	current = unwrapContainers(current)
	if current.Kind() != reflect.Struct {
		return false
	}
	if seen[current] {
		return false
	}
	seen[current] = true

	for i := 0; i < current.NumField(); i++ {
		field := current.Field(i)
		if !field.IsExported() {
			continue
		}

		fieldType := unwrapContainers(field.Type)
		if fieldType == target {
			return true
		}
		if fieldType.Kind() == reflect.Struct && reaches(target, fieldType, seen) {
			return true
		}
	}
	return false
}

// unwrapContainers strips pointer, slice, array, and map layers down to the
// underlying element type.
func unwrapContainers(t reflect.Type) reflect.Type {
	for {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Map:
			t = t.Elem()
		default:
			return t
		}
	}
}

// definitionName creates the $defs key for a type.
func definitionName(t reflect.Type) string {
	if t.Name() != "" {
		return strings.ToLower(t.Name())
	}
	return "anonymousStruct"
}

// applySchemaTag parses the jsonschema struct tag and applies the settings to
// the schema. Supported entries:
//  1. jsonschema:"description=xxx"
//  2. jsonschema:"enum=xxx,enum=yyy", or "enum=1,enum=2", or "enum=3.14,enum=3.15", etc.
//     Enum values are converted to the actual field type declared in the struct.
//     Enum only supports string, integer, float, and bool field types.
//  3. jsonschema:"required"
//
// TODO descriptions containing a comma are split apart; a smarter tag parser is needed for that.
func applySchemaTag(fieldType reflect.Type, tag reflect.StructTag, schema *Schema) (bool, error) {
	schemaTag := tag.Get("jsonschema")
	if len(schemaTag) == 0 {
		return false, nil
	}

	isRequiredByTag := false
	for _, tagItem := range strings.Split(schemaTag, ",") {
		kv := strings.SplitN(tagItem, "=", 2)
		if len(kv) == 1 {
			if kv[0] == "required" {
				isRequiredByTag = true
			}
			continue
		}

		key, value := kv[0], kv[1]
		switch key {
		case "description":
			schema.Description = value
		case "enum":
			if err := appendEnumValue(fieldType, value, schema); err != nil {
				return isRequiredByTag, err
			}
		}
	}

	return isRequiredByTag, nil
}

// appendEnumValue converts value to the field's Go type and appends it to the
// schema's enum list.
func appendEnumValue(fieldType reflect.Type, value string, schema *Schema) error {
	if schema.Enum == nil {
		schema.Enum = make([]any, 0)
	}

	switch fieldType.Kind() {
	case reflect.String:
		schema.Enum = append(schema.Enum, value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("parse enum value %v to int64 failed: %w", value, err)
		}
		schema.Enum = append(schema.Enum, v)
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("parse enum value %v to float64 failed: %w", value, err)
		}
		schema.Enum = append(schema.Enum, v)
	case reflect.Bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("parse enum value %v to bool failed: %w", value, err)
		}
		schema.Enum = append(schema.Enum, v)
	default:
		return fmt.Errorf("enum tag unsupported for field type: %v", fieldType)
	}
	return nil
}

// JsonString converts the Schema to its JSON representation.
// indent: optional bool parameter. If true, formats JSON with indentation. If false or omitted, returns compact JSON.
func (s *Schema) JsonString(indent ...bool) (string, error) {
	shouldIndent := len(indent) > 0 && indent[0]

	var jsonBytes []byte
	var err error
	if shouldIndent {
		jsonBytes, err = json.MarshalIndent(s, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(s)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return string(jsonBytes), nil
}

// String returns the compact JSON representation of the schema.
// Returns an error message if marshalling fails.
func (s *Schema) String() string {
	jsonStr, err := s.JsonString()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return jsonStr
}
