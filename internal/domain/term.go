package domain

import "time"

// Term is a taxonomy term: the entity the audit trail annotates.
type Term struct {
	ID             int64     `db:"id"`
	TermTaxonomyID int64     `db:"term_taxonomy_id"`
	Taxonomy       string    `db:"taxonomy"`
	Name           string    `db:"name"`
	Slug           string    `db:"slug"`
	Description    string    `db:"description"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// TermUpdateParams holds optional fields for a term update. Nil means
// "leave unchanged".
type TermUpdateParams struct {
	Name        *string
	Slug        *string
	Description *string
}

// Taxonomy is a term classifier such as "category" or "post_tag".
type Taxonomy struct {
	Name              string `db:"name"`
	Label             string `db:"label"`
	ShowUI            bool   `db:"show_ui"`
	ShowInGraphQL     bool   `db:"show_in_graphql"`
	GraphQLSingleName string `db:"graphql_single_name"`
	GraphQLPluralName string `db:"graphql_plural_name"`
}

// ExposedInGraphQL reports whether terms of this taxonomy get a GraphQL type.
func (t Taxonomy) ExposedInGraphQL() bool {
	return t.ShowInGraphQL && t.GraphQLSingleName != "" && t.GraphQLPluralName != ""
}
