package schema

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// Version is the registry API version reported to plugins that register
// fields on it.
const Version = "1.2.0"

var (
	ErrTypeConflict  = errors.New("type already registered with a different definition")
	ErrUnknownType   = errors.New("unknown type")
	ErrFieldConflict = errors.New("field already registered")
	ErrInvalidType   = errors.New("invalid type definition")
	ErrInvalidField  = errors.New("invalid field definition")
	ErrSealed        = errors.New("registry already built")
)

type entry struct {
	def    *ObjectType
	fields []*Field
	byName map[string]*Field
}

// Registry collects object types and fields. It is safe for concurrent
// registration and becomes read-only once Build succeeds.
type Registry struct {
	mu     sync.Mutex
	types  map[string]*entry
	order  []string
	sealed bool
}

// NewRegistry returns a registry with empty Query and Mutation root types.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[string]*entry)}
	for _, name := range []string{QueryType, MutationType} {
		r.types[name] = &entry{
			def:    &ObjectType{Name: name},
			byName: make(map[string]*Field),
		}
		r.order = append(r.order, name)
	}
	return r
}

// Version reports the registry API version.
func (r *Registry) Version() string { return Version }

// RegisterObjectType adds an object type. Registering the same pointer
// twice is a no-op; a different definition under a taken name fails with
// ErrTypeConflict.
func (r *Registry) RegisterObjectType(t *ObjectType) error {
	if t == nil || !validName(t.Name) {
		return ErrInvalidType
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrSealed
	}
	if builtinScalars[t.Name] {
		return fmt.Errorf("%w: %s", ErrTypeConflict, t.Name)
	}
	if e, ok := r.types[t.Name]; ok {
		if e.def == t {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrTypeConflict, t.Name)
	}

	e := &entry{def: t, byName: make(map[string]*Field, len(t.Fields))}
	for i := range t.Fields {
		if err := e.add(t.Name, t.Fields[i]); err != nil {
			return err
		}
	}
	r.types[t.Name] = e
	r.order = append(r.order, t.Name)
	return nil
}

// RegisterField adds a field to a registered object type.
func (r *Registry) RegisterField(typeName string, f Field) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrSealed
	}
	e, ok := r.types[typeName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownType, typeName)
	}
	return e.add(typeName, f)
}

func (e *entry) add(typeName string, f Field) error {
	if !validName(f.Name) || f.Type == nil || f.Resolve == nil {
		return fmt.Errorf("%w: %s.%s", ErrInvalidField, typeName, f.Name)
	}
	for _, a := range f.Args {
		if !validName(a.Name) || a.Type == nil {
			return fmt.Errorf("%w: %s.%s(%s)", ErrInvalidField, typeName, f.Name, a.Name)
		}
	}
	if _, ok := e.byName[f.Name]; ok {
		return fmt.Errorf("%w: %s.%s", ErrFieldConflict, typeName, f.Name)
	}

	e.fields = append(e.fields, &f)
	e.byName[f.Name] = &f
	return nil
}

// Build renders the registered types to SDL, validates it and returns an
// executable schema. After a successful Build the registry rejects further
// registration.
func (r *Registry) Build(opts ...Option) (*Schema, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.types[QueryType].fields) == 0 {
		return nil, fmt.Errorf("build schema: %s has no fields", QueryType)
	}

	doc := &ast.SchemaDocument{}
	resolvers := make(map[string]map[string]*Field, len(r.types))
	for _, name := range r.order {
		e := r.types[name]
		if len(e.fields) == 0 && name == MutationType {
			continue
		}
		doc.Definitions = append(doc.Definitions, e.definition())

		byName := make(map[string]*Field, len(e.fields))
		for _, f := range e.fields {
			byName[f.Name] = f
		}
		resolvers[name] = byName
	}

	var sdl strings.Builder
	formatter.NewFormatter(&sdl).FormatSchemaDocument(doc)

	parsed, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphqls", Input: sdl.String()})
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}

	r.sealed = true
	return newSchema(parsed, sdl.String(), resolvers, opts...), nil
}

func (e *entry) definition() *ast.Definition {
	def := &ast.Definition{
		Kind:        ast.Object,
		Name:        e.def.Name,
		Description: e.def.Description,
	}
	for _, f := range e.fields {
		fd := &ast.FieldDefinition{
			Name:        f.Name,
			Description: f.Description,
			Type:        f.Type,
		}
		for _, a := range f.Args {
			fd.Arguments = append(fd.Arguments, &ast.ArgumentDefinition{
				Name:        a.Name,
				Description: a.Description,
				Type:        a.Type,
			})
		}
		def.Fields = append(def.Fields, fd)
	}
	return def
}
