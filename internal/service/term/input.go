package term

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/termstamps/internal/domain"
)

const (
	maxNameLen        = 200
	maxSlugLen        = 200
	maxDescriptionLen = 2000
)

// CreateTermInput holds the parameters for creating a term.
type CreateTermInput struct {
	Taxonomy    string
	Name        string
	Slug        *string // nil = derive from name
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateTermInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Taxonomy) == "" {
		errs = append(errs, domain.FieldError{Field: "taxonomy", Message: "required"})
	}
	errs = append(errs, validateName(i.Name)...)
	if i.Slug != nil {
		errs = append(errs, validateSlug(*i.Slug)...)
	} else if domain.Slugify(i.Name) == "" && domain.NormalizeName(i.Name) != "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "cannot be derived from name"})
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTermInput holds the parameters for updating a term.
type UpdateTermInput struct {
	TermID      int64
	Name        *string
	Slug        *string
	Description *string // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateTermInput) Validate() error {
	var errs []domain.FieldError

	if i.TermID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.Slug == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}
	if i.Slug != nil {
		errs = append(errs, validateSlug(*i.Slug)...)
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	n := domain.NormalizeName(name)
	switch {
	case n == "":
		return []domain.FieldError{{Field: "name", Message: "required"}}
	case utf8.RuneCountInString(n) > maxNameLen:
		return []domain.FieldError{{Field: "name", Message: "max 200 characters"}}
	}
	return nil
}

func validateSlug(slug string) []domain.FieldError {
	s := domain.Slugify(slug)
	switch {
	case s == "":
		return []domain.FieldError{{Field: "slug", Message: "must contain letters or digits"}}
	case len(s) > maxSlugLen:
		return []domain.FieldError{{Field: "slug", Message: "max 200 characters"}}
	}
	return nil
}
