package resolver

import (
	"context"
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/termstamps/internal/domain"
	"github.com/heartmarshall/termstamps/internal/service/term"
	"github.com/heartmarshall/termstamps/internal/transport/graphql/schema"
	"github.com/heartmarshall/termstamps/pkg/ctxutil"
)

// TypeName returns the GraphQL object type of a taxonomy's terms: its
// single name with the first letter upper-cased ("category" -> "Category").
func TypeName(tax domain.Taxonomy) string {
	r, size := utf8.DecodeRuneInString(tax.GraphQLSingleName)
	if r == utf8.RuneError {
		return tax.GraphQLSingleName
	}
	return string(unicode.ToUpper(r)) + tax.GraphQLSingleName[size:]
}

func termOf(p schema.ResolveParams) *domain.Term {
	return p.Source.(*domain.Term)
}

func termField(name, typ string, get func(t *domain.Term) any) schema.Field {
	return schema.Field{
		Name: name,
		Type: typeRef(typ),
		Resolve: func(_ context.Context, p schema.ResolveParams) (any, error) {
			return get(termOf(p)), nil
		},
	}
}

func (r *Resolver) registerTaxonomy(reg Registrar, tax domain.Taxonomy) error {
	typ := TypeName(tax)

	obj := &schema.ObjectType{
		Name:        typ,
		Description: fmt.Sprintf("A term of the %s taxonomy.", tax.Name),
		Fields: []schema.Field{
			termField("id", "Int!", func(t *domain.Term) any { return t.ID }),
			termField("name", "String!", func(t *domain.Term) any { return t.Name }),
			termField("slug", "String!", func(t *domain.Term) any { return t.Slug }),
			termField("description", "String", func(t *domain.Term) any { return t.Description }),
			termField("taxonomy", "String!", func(t *domain.Term) any { return t.Taxonomy }),
		},
	}
	if err := reg.RegisterObjectType(obj); err != nil {
		return err
	}

	fields := []struct {
		root  string
		field schema.Field
	}{
		{schema.QueryType, schema.Field{
			Name: tax.GraphQLSingleName,
			Type: schema.Named(typ),
			Args: []schema.Argument{
				{Name: "id", Type: schema.NonNull("Int")},
			},
			Resolve: r.termByID(tax),
		}},
		{schema.QueryType, schema.Field{
			Name: tax.GraphQLPluralName,
			Type: schema.ListOf(schema.Named(typ)),
			Args: []schema.Argument{
				{Name: "first", Type: schema.Named("Int")},
				{Name: "offset", Type: schema.Named("Int")},
			},
			Resolve: r.listTerms(tax),
		}},
		{schema.MutationType, schema.Field{
			Name: "create" + typ,
			Type: schema.Named(typ),
			Args: []schema.Argument{
				{Name: "name", Type: schema.NonNull("String")},
				{Name: "slug", Type: schema.Named("String")},
				{Name: "description", Type: schema.Named("String")},
			},
			Resolve: r.createTerm(tax),
		}},
		{schema.MutationType, schema.Field{
			Name: "update" + typ,
			Type: schema.Named(typ),
			Args: []schema.Argument{
				{Name: "id", Type: schema.NonNull("Int")},
				{Name: "name", Type: schema.Named("String")},
				{Name: "slug", Type: schema.Named("String")},
				{Name: "description", Type: schema.Named("String")},
			},
			Resolve: r.updateTerm(tax),
		}},
	}
	for _, f := range fields {
		if err := reg.RegisterField(f.root, f.field); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) termByID(tax domain.Taxonomy) schema.ResolveFunc {
	return func(ctx context.Context, p schema.ResolveParams) (any, error) {
		id, _ := schema.IntArg(p.Args, "id")
		t, err := r.terms.GetTerm(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if t.Taxonomy != tax.Name {
			return nil, nil
		}
		return t, nil
	}
}

func (r *Resolver) listTerms(tax domain.Taxonomy) schema.ResolveFunc {
	return func(ctx context.Context, p schema.ResolveParams) (any, error) {
		first, _ := schema.IntArg(p.Args, "first")
		offset, _ := schema.IntArg(p.Args, "offset")

		terms, err := r.terms.ListTerms(ctx, tax.Name, int(first), int(offset))
		if err != nil {
			return nil, err
		}

		out := make([]*domain.Term, len(terms))
		for i := range terms {
			out[i] = &terms[i]
		}
		return out, nil
	}
}

func (r *Resolver) createTerm(tax domain.Taxonomy) schema.ResolveFunc {
	return func(ctx context.Context, p schema.ResolveParams) (any, error) {
		input := term.CreateTermInput{
			Taxonomy:    tax.Name,
			Slug:        schema.StringArg(p.Args, "slug"),
			Description: schema.StringArg(p.Args, "description"),
		}
		if name := schema.StringArg(p.Args, "name"); name != nil {
			input.Name = *name
		}
		return termResult(r.terms.CreateTerm(ctx, input))
	}
}

func (r *Resolver) updateTerm(tax domain.Taxonomy) schema.ResolveFunc {
	return func(ctx context.Context, p schema.ResolveParams) (any, error) {
		if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
			return nil, domain.ErrUnauthorized
		}

		id, _ := schema.IntArg(p.Args, "id")
		existing, err := r.terms.GetTerm(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing.Taxonomy != tax.Name {
			return nil, fmt.Errorf("%s %d: %w", tax.Name, id, domain.ErrNotFound)
		}

		return termResult(r.terms.UpdateTerm(ctx, term.UpdateTermInput{
			TermID:      id,
			Name:        schema.StringArg(p.Args, "name"),
			Slug:        schema.StringArg(p.Args, "slug"),
			Description: schema.StringArg(p.Args, "description"),
		}))
	}
}

// termResult keeps a persisted term in the response even when a listener
// failed afterwards; the error is still reported.
func termResult(t *domain.Term, err error) (any, error) {
	if t == nil {
		return nil, err
	}
	return t, err
}
