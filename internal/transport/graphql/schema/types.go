// Package schema is a small code-first GraphQL schema registry. Object
// types and fields are registered at startup, Build validates the result
// with gqlparser and returns an executable schema that gqlgen's HTTP
// handler can serve.
package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"
)

// Root operation type names.
const (
	QueryType    = "Query"
	MutationType = "Mutation"
)

// ResolveFunc produces the value of a field. A resolver may return a value
// together with an error: the error is reported and the value is still
// completed.
type ResolveFunc func(ctx context.Context, p ResolveParams) (any, error)

// ResolveParams is what a resolver gets to work with.
type ResolveParams struct {
	// Source is the value of the parent object. Nil for root fields.
	Source any
	// Args holds argument values with variables and defaults applied.
	Args      map[string]any
	FieldName string
}

// Argument is a field argument definition.
type Argument struct {
	Name        string
	Description string
	Type        *ast.Type
}

// Field is an object field definition.
type Field struct {
	Name        string
	Description string
	Type        *ast.Type
	Args        []Argument
	Resolve     ResolveFunc
}

// ObjectType is an object type definition. Fields listed here are
// registered together with the type; more can be added with
// Registry.RegisterField.
type ObjectType struct {
	Name        string
	Description string
	Fields      []Field
}

// Named returns a nullable named type.
func Named(name string) *ast.Type { return ast.NamedType(name, nil) }

// NonNull returns a non-null named type.
func NonNull(name string) *ast.Type { return ast.NonNullNamedType(name, nil) }

// ListOf returns a nullable list of elem.
func ListOf(elem *ast.Type) *ast.Type { return ast.ListType(elem, nil) }

var nameRe = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

func validName(name string) bool {
	return nameRe.MatchString(name) && (len(name) < 2 || name[:2] != "__")
}

var builtinScalars = map[string]bool{
	"Int":     true,
	"Float":   true,
	"String":  true,
	"Boolean": true,
	"ID":      true,
}

// IntArg returns an integer argument. ok is false when the argument is
// absent, null or not an integer.
func IntArg(args map[string]any, name string) (v int64, ok bool) {
	switch n := args[name].(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == math.Trunc(n) {
			return int64(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i, true
		}
	}
	return 0, false
}

// StringArg returns a string argument, or nil when it is absent or null.
func StringArg(args map[string]any, name string) *string {
	s, ok := args[name].(string)
	if !ok {
		return nil
	}
	return &s
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}

func deref(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	return rv
}

func typeMismatch(scalar string, v any) error {
	return fmt.Errorf("cannot represent %T as %s", v, scalar)
}
