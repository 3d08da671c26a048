package schema

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 64

var errIntrospection = errors.New("introspection disabled")

// Option configures a built Schema.
type Option func(*Schema)

// WithConcurrency bounds how many sibling fields resolve at once.
func WithConcurrency(n int) Option {
	return func(s *Schema) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// Schema is an executable schema. It implements graphql.ExecutableSchema.
//
// Fields are resolved one tree level at a time: every field of every
// object at the current depth resolves concurrently before the next depth
// starts, so resolvers that go through a dataloader batch across the
// whole level. Root mutation fields run one after another.
type Schema struct {
	ast         *ast.Schema
	sdl         string
	resolvers   map[string]map[string]*Field
	concurrency int
}

var _ graphql.ExecutableSchema = (*Schema)(nil)

func newSchema(s *ast.Schema, sdl string, resolvers map[string]map[string]*Field, opts ...Option) *Schema {
	out := &Schema{
		ast:         s,
		sdl:         sdl,
		resolvers:   resolvers,
		concurrency: defaultConcurrency,
	}
	for _, o := range opts {
		o(out)
	}
	return out
}

// Schema returns the parsed schema used for query validation.
func (s *Schema) Schema() *ast.Schema { return s.ast }

// SDL returns the schema in GraphQL schema definition language.
func (s *Schema) SDL() string { return s.sdl }

// Complexity defers to the default estimate for every field.
func (s *Schema) Complexity(_ context.Context, _, _ string, _ int, _ map[string]any) (int, bool) {
	return 0, false
}

// Exec executes the operation in ctx.
func (s *Schema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)

	var root string
	switch opCtx.Operation.Operation {
	case ast.Query:
		root = QueryType
	case ast.Mutation:
		root = MutationType
	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported operation %q", opCtx.Operation.Operation))
	}
	if _, ok := s.resolvers[root]; !ok {
		return graphql.OneShot(graphql.ErrorResponse(ctx, "schema does not support %s", opCtx.Operation.Operation))
	}

	done := false
	return func(ctx context.Context) *graphql.Response {
		if done {
			return nil
		}
		done = true

		data := s.execute(ctx, opCtx, root)
		var buf bytes.Buffer
		data.MarshalGQL(&buf)
		return &graphql.Response{Data: buf.Bytes()}
	}
}

// object is a resolved object awaiting its fields.
type object struct {
	typeName string
	source   any
	path     ast.Path
	nonNull  bool
	fields   []graphql.CollectedField
	values   []any
}

type list struct {
	items   []any
	nonNull bool
}

// invalid marks a null in a non-null position. It propagates to the
// nearest nullable parent.
type invalid struct{}

func (s *Schema) execute(ctx context.Context, opCtx *graphql.OperationContext, root string) graphql.Marshaler {
	top := &object{
		typeName: root,
		nonNull:  true,
		fields:   graphql.CollectFields(opCtx, opCtx.Operation.SelectionSet, []string{root}),
	}

	level := []*object{top}
	serial := root == MutationType
	for len(level) > 0 {
		level = s.resolveLevel(ctx, opCtx, level, serial)
		serial = false
	}

	m, ok := marshalObject(top)
	if !ok {
		return graphql.Null
	}
	return m
}

func (s *Schema) resolveLevel(ctx context.Context, opCtx *graphql.OperationContext, objs []*object, serial bool) []*object {
	var (
		mu   sync.Mutex
		next []*object
		g    errgroup.Group
	)
	if serial {
		g.SetLimit(1)
	} else {
		g.SetLimit(s.concurrency)
	}

	for _, obj := range objs {
		obj.values = make([]any, len(obj.fields))
		for i, f := range obj.fields {
			g.Go(func() error {
				v, children := s.resolveField(ctx, opCtx, obj, f)
				obj.values[i] = v
				if len(children) > 0 {
					mu.Lock()
					next = append(next, children...)
					mu.Unlock()
				}
				return nil
			})
		}
	}
	_ = g.Wait()
	return next
}

func (s *Schema) resolveField(ctx context.Context, opCtx *graphql.OperationContext, obj *object, f graphql.CollectedField) (any, []*object) {
	path := appendPath(obj.path, ast.PathName(f.Alias))

	switch f.Name {
	case "__typename":
		return graphql.MarshalString(obj.typeName), nil
	case "__schema", "__type":
		addError(ctx, path, errIntrospection)
		return nil, nil
	}

	def := s.resolvers[obj.typeName][f.Name]
	if def == nil {
		addError(ctx, path, fmt.Errorf("unknown field %s.%s", obj.typeName, f.Name))
		return nil, nil
	}

	raw, err := s.call(ctx, def, ResolveParams{
		Source:    obj.source,
		Args:      f.ArgumentMap(opCtx.Variables),
		FieldName: f.Name,
	})
	if err != nil {
		addError(ctx, path, err)
		if isNil(raw) {
			return failure(def.Type), nil
		}
	}

	var next []*object
	v := s.complete(ctx, opCtx, def.Type, f.Selections, path, raw, &next)
	return v, next
}

func (s *Schema) call(ctx context.Context, def *Field, p ResolveParams) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, graphql.Recover(ctx, r)
		}
	}()
	return def.Resolve(ctx, p)
}

// complete shapes a resolved value according to its declared type. Child
// objects are appended to next for resolution at the following level.
func (s *Schema) complete(
	ctx context.Context,
	opCtx *graphql.OperationContext,
	typ *ast.Type,
	sel ast.SelectionSet,
	path ast.Path,
	raw any,
	next *[]*object,
) any {
	if isNil(raw) {
		if typ.NonNull {
			addError(ctx, path, errors.New("must not be null"))
			return invalid{}
		}
		return nil
	}

	if typ.Elem != nil {
		rv := deref(raw)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			addError(ctx, path, fmt.Errorf("expected a list, got %T", raw))
			return failure(typ)
		}
		l := &list{items: make([]any, rv.Len()), nonNull: typ.NonNull}
		for i := range l.items {
			l.items[i] = s.complete(ctx, opCtx, typ.Elem, sel, appendPath(path, ast.PathIndex(i)), rv.Index(i).Interface(), next)
		}
		return l
	}

	if def := s.ast.Types[typ.NamedType]; def != nil && def.Kind == ast.Scalar {
		m, err := marshalScalar(typ.NamedType, raw)
		if err != nil {
			addError(ctx, path, err)
			return failure(typ)
		}
		return m
	}

	child := &object{
		typeName: typ.NamedType,
		source:   raw,
		path:     path,
		nonNull:  typ.NonNull,
		fields:   graphql.CollectFields(opCtx, sel, []string{typ.NamedType}),
	}
	*next = append(*next, child)
	return child
}

func failure(typ *ast.Type) any {
	if typ.NonNull {
		return invalid{}
	}
	return nil
}

func marshalScalar(name string, raw any) (graphql.Marshaler, error) {
	rv := deref(raw)
	switch name {
	case "Int":
		switch {
		case rv.CanInt():
			return graphql.MarshalInt64(rv.Int()), nil
		case rv.CanUint():
			return graphql.MarshalInt64(int64(rv.Uint())), nil
		}
	case "Float":
		switch {
		case rv.CanFloat():
			return graphql.MarshalFloat(rv.Float()), nil
		case rv.CanInt():
			return graphql.MarshalFloat(float64(rv.Int())), nil
		}
	case "String":
		if rv.Kind() == reflect.String {
			return graphql.MarshalString(rv.String()), nil
		}
	case "ID":
		switch {
		case rv.Kind() == reflect.String:
			return graphql.MarshalID(rv.String()), nil
		case rv.CanInt():
			return graphql.MarshalID(strconv.FormatInt(rv.Int(), 10)), nil
		}
	case "Boolean":
		if rv.Kind() == reflect.Bool {
			return graphql.MarshalBoolean(rv.Bool()), nil
		}
	default:
		return nil, fmt.Errorf("unsupported scalar %s", name)
	}
	return nil, typeMismatch(name, raw)
}

func marshalValue(v any) (graphql.Marshaler, bool) {
	switch v := v.(type) {
	case nil:
		return graphql.Null, true
	case invalid:
		return nil, false
	case *object:
		m, ok := marshalObject(v)
		if ok {
			return m, true
		}
		if v.nonNull {
			return nil, false
		}
		return graphql.Null, true
	case *list:
		arr := make(graphql.Array, len(v.items))
		for i, item := range v.items {
			m, ok := marshalValue(item)
			if !ok {
				if v.nonNull {
					return nil, false
				}
				return graphql.Null, true
			}
			arr[i] = m
		}
		return arr, true
	case graphql.Marshaler:
		return v, true
	}
	return graphql.Null, true
}

func marshalObject(obj *object) (graphql.Marshaler, bool) {
	fs := graphql.NewFieldSet(obj.fields)
	for i := range obj.fields {
		m, ok := marshalValue(obj.values[i])
		if !ok {
			return nil, false
		}
		fs.Values[i] = m
	}
	return fs, true
}

func addError(ctx context.Context, path ast.Path, err error) {
	graphql.AddError(ctx, gqlerror.WrapPath(path, err))
}

func appendPath(parent ast.Path, el ast.PathElement) ast.Path {
	p := make(ast.Path, len(parent), len(parent)+1)
	copy(p, parent)
	return append(p, el)
}
