package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Masterminds/semver/v3"

	"github.com/heartmarshall/termstamps/internal/domain"
	"github.com/heartmarshall/termstamps/internal/service/history"
	"github.com/heartmarshall/termstamps/internal/transport/graphql/schema"
)

// AuditRecordType is the shared object type of all audit fields.
const AuditRecordType = "AuditRecord"

// MinRegistrarVersion is the oldest registry API the audit fields can be
// registered on.
const MinRegistrarVersion = ">= 1.0.0"

var supportedRegistrar = func() *semver.Constraints {
	c, err := semver.NewConstraint(MinRegistrarVersion)
	if err != nil {
		panic(err)
	}
	return c
}()

// AuditFieldNames are the names the audit fields get on taxonomy types.
type AuditFieldNames struct {
	Created       string
	Modifications string
	LastModified  string
}

// DefaultAuditFieldNames returns created, modifications and lastModified.
func DefaultAuditFieldNames() AuditFieldNames {
	return AuditFieldNames{
		Created:       "created",
		Modifications: "modifications",
		LastModified:  "lastModified",
	}
}

// auditRecord is the source value of AuditRecord objects.
type auditRecord struct {
	history.Record
	userRef func(ctx context.Context, id *int64) (*domain.User, error)
}

var auditRecordType = sync.OnceValue(func() *schema.ObjectType {
	return &schema.ObjectType{
		Name:        AuditRecordType,
		Description: "Who changed a term, and when.",
		Fields: []schema.Field{
			{
				Name:        "time",
				Description: `Formatted as "Mon Jan 2,2006 15:04:05".`,
				Type:        schema.Named("String"),
				Resolve: func(_ context.Context, p schema.ResolveParams) (any, error) {
					return p.Source.(*auditRecord).Time, nil
				},
			},
			{
				Name: "user",
				Type: schema.Named(UserType),
				Resolve: func(ctx context.Context, p schema.ResolveParams) (any, error) {
					rec := p.Source.(*auditRecord)
					u, err := rec.userRef(ctx, rec.UserID)
					if err != nil || u == nil {
						return nil, err
					}
					return u, nil
				},
			},
		},
	}
})

// RegisterAuditFields adds the created, modifications and lastModified
// fields to the object type of every GraphQL-enabled taxonomy. The types
// must already be registered. With no registrar, or one older than
// MinRegistrarVersion, it logs a warning and registers nothing.
func RegisterAuditFields(
	log *slog.Logger,
	reg Registrar,
	hist historyService,
	taxonomies []domain.Taxonomy,
	names AuditFieldNames,
) error {
	log = log.With("component", "graphql_audit")

	if reg == nil {
		log.Warn("no graphql registrar, audit fields not registered")
		return nil
	}
	v, err := semver.NewVersion(reg.Version())
	if err != nil || !supportedRegistrar.Check(v) {
		log.Warn("graphql registrar version not supported, audit fields not registered",
			slog.String("version", reg.Version()),
			slog.String("required", MinRegistrarVersion),
		)
		return nil
	}

	if err := reg.RegisterObjectType(userType()); err != nil {
		return fmt.Errorf("register %s: %w", UserType, err)
	}
	if err := reg.RegisterObjectType(auditRecordType()); err != nil {
		return fmt.Errorf("register %s: %w", AuditRecordType, err)
	}

	fields := auditFields(hist, names)
	for _, tax := range taxonomies {
		if !tax.ExposedInGraphQL() {
			continue
		}
		typ := TypeName(tax)
		for _, f := range fields {
			if err := reg.RegisterField(typ, f); err != nil {
				return fmt.Errorf("register %s.%s: %w", typ, f.Name, err)
			}
		}
	}
	return nil
}

func auditFields(hist historyService, names AuditFieldNames) []schema.Field {
	wrap := func(rec history.Record) *auditRecord {
		return &auditRecord{Record: rec, userRef: hist.UserRef}
	}
	single := func(get func(ctx context.Context, termID int64) (*history.Record, error)) schema.ResolveFunc {
		return func(ctx context.Context, p schema.ResolveParams) (any, error) {
			rec, err := get(ctx, termOf(p).ID)
			if err != nil || rec == nil {
				return nil, err
			}
			return wrap(*rec), nil
		}
	}

	return []schema.Field{
		{
			Name:        names.Created,
			Description: "Who created the term and when.",
			Type:        schema.Named(AuditRecordType),
			Resolve:     single(hist.Created),
		},
		{
			Name:        names.Modifications,
			Description: "Every recorded edit, newest first.",
			Type:        schema.ListOf(schema.Named(AuditRecordType)),
			Resolve: func(ctx context.Context, p schema.ResolveParams) (any, error) {
				recs, err := hist.Modifications(ctx, termOf(p).ID)
				if err != nil || len(recs) == 0 {
					return nil, err
				}
				out := make([]*auditRecord, len(recs))
				for i, rec := range recs {
					out[i] = wrap(rec)
				}
				return out, nil
			},
		},
		{
			Name:        names.LastModified,
			Description: "The most recent edit.",
			Type:        schema.Named(AuditRecordType),
			Resolve:     single(hist.LastModified),
		},
	}
}
