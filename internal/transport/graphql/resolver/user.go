package resolver

import (
	"context"
	"strings"
	"sync"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/heartmarshall/termstamps/internal/domain"
	"github.com/heartmarshall/termstamps/internal/transport/graphql/schema"
	"github.com/heartmarshall/termstamps/pkg/ctxutil"
)

// UserType is the GraphQL object type for users.
const UserType = "User"

var userType = sync.OnceValue(func() *schema.ObjectType {
	field := func(name string, typ string, get func(u *domain.User) any) schema.Field {
		return schema.Field{
			Name: name,
			Type: typeRef(typ),
			Resolve: func(_ context.Context, p schema.ResolveParams) (any, error) {
				return get(p.Source.(*domain.User)), nil
			},
		}
	}

	return &schema.ObjectType{
		Name:        UserType,
		Description: "A user who can create or edit terms.",
		Fields: []schema.Field{
			field("id", "Int!", func(u *domain.User) any { return u.ID }),
			field("username", "String!", func(u *domain.User) any { return u.Username }),
			field("name", "String", func(u *domain.User) any { return u.Name }),
			field("email", "String", func(u *domain.User) any { return u.Email }),
		},
	}
})

func (r *Resolver) viewerField() schema.Field {
	return schema.Field{
		Name:        "viewer",
		Description: "The authenticated user, or null.",
		Type:        schema.Named(UserType),
		Resolve: func(ctx context.Context, _ schema.ResolveParams) (any, error) {
			id, ok := ctxutil.UserIDFromCtx(ctx)
			if !ok {
				return nil, nil
			}
			u, err := r.history.UserRef(ctx, &id)
			if err != nil || u == nil {
				return nil, err
			}
			return u, nil
		},
	}
}

// typeRef turns "Int!" or "String" into a type reference.
func typeRef(s string) *ast.Type {
	if name, ok := strings.CutSuffix(s, "!"); ok {
		return schema.NonNull(name)
	}
	return schema.Named(s)
}
