package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/termstamps/internal/domain"
	"github.com/heartmarshall/termstamps/internal/service/history"
	"github.com/heartmarshall/termstamps/internal/service/term"
	"github.com/heartmarshall/termstamps/internal/transport/graphql/schema"
)

// termService defines what resolver needs from the Term service.
type termService interface {
	CreateTerm(ctx context.Context, input term.CreateTermInput) (*domain.Term, error)
	UpdateTerm(ctx context.Context, input term.UpdateTermInput) (*domain.Term, error)
	GetTerm(ctx context.Context, id int64) (*domain.Term, error)
	ListTerms(ctx context.Context, taxonomy string, limit, offset int) ([]domain.Term, error)
}

// historyService defines what resolver needs from the History service.
type historyService interface {
	Created(ctx context.Context, termID int64) (*history.Record, error)
	LastModified(ctx context.Context, termID int64) (*history.Record, error)
	Modifications(ctx context.Context, termID int64) ([]history.Record, error)
	UserRef(ctx context.Context, userID *int64) (*domain.User, error)
}

// Registrar is the part of the schema registry resolvers register into.
type Registrar interface {
	RegisterObjectType(t *schema.ObjectType) error
	RegisterField(typeName string, f schema.Field) error
	Version() string
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	terms   termService
	history historyService
	log     *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(log *slog.Logger, terms termService, history historyService) *Resolver {
	return &Resolver{
		terms:   terms,
		history: history,
		log:     log.With("component", "graphql"),
	}
}

// RegisterSchema registers the User type, the viewer query, the term API
// of every GraphQL-enabled taxonomy and finally the audit fields.
func (r *Resolver) RegisterSchema(reg Registrar, taxonomies []domain.Taxonomy, names AuditFieldNames) error {
	if err := reg.RegisterObjectType(userType()); err != nil {
		return fmt.Errorf("register %s: %w", UserType, err)
	}
	if err := reg.RegisterField(schema.QueryType, r.viewerField()); err != nil {
		return fmt.Errorf("register viewer: %w", err)
	}

	exposed := 0
	for _, tax := range taxonomies {
		if !tax.ExposedInGraphQL() {
			continue
		}
		if err := r.registerTaxonomy(reg, tax); err != nil {
			return fmt.Errorf("register taxonomy %s: %w", tax.Name, err)
		}
		exposed++
	}

	r.log.Info("graphql taxonomies registered", slog.Int("count", exposed))

	return RegisterAuditFields(r.log, reg, r.history, taxonomies, names)
}
