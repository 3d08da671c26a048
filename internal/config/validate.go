package config

import (
	"fmt"
	"regexp"
	"time"
)

// graphQLName matches a valid GraphQL field name.
var graphQLName = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.GraphQL.ComplexityLimit <= 0 {
		return fmt.Errorf("graphql.complexity_limit must be > 0 (got %d)", c.GraphQL.ComplexityLimit)
	}

	if c.GraphQL.RateLimit < 0 {
		return fmt.Errorf("graphql.rate_limit must be >= 0 (got %d)", c.GraphQL.RateLimit)
	}

	if c.GraphQL.Concurrency <= 0 {
		return fmt.Errorf("graphql.concurrency must be > 0 (got %d)", c.GraphQL.Concurrency)
	}

	if c.Redis.Enabled() && c.Redis.UserTTL <= 0 {
		return fmt.Errorf("redis.user_ttl must be > 0 (got %s)", c.Redis.UserTTL)
	}

	if err := c.Timestamps.validate(); err != nil {
		return fmt.Errorf("timestamps: %w", err)
	}

	return nil
}

func (t *TimestampsConfig) validate() error {
	keys := map[string]string{
		"created_by_key":              t.CreatedByKey,
		"created_timestamp_key":       t.CreatedTimestampKey,
		"last_modified_by_key":        t.LastModifiedByKey,
		"last_modified_timestamp_key": t.LastModifiedTimestampKey,
		"modifications_key":           t.ModificationsKey,
	}
	if err := distinctNonEmpty(keys); err != nil {
		return err
	}

	fields := map[string]string{
		"created_field":       t.CreatedField,
		"modifications_field": t.ModificationsField,
		"last_modified_field": t.LastModifiedField,
	}
	if err := distinctNonEmpty(fields); err != nil {
		return err
	}
	for setting, name := range fields {
		if !graphQLName.MatchString(name) {
			return fmt.Errorf("%s %q is not a valid GraphQL name", setting, name)
		}
		if len(name) > 1 && name[:2] == "__" {
			return fmt.Errorf("%s %q uses the reserved __ prefix", setting, name)
		}
	}

	loc, err := time.LoadLocation(t.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", t.Timezone, err)
	}
	t.Location = loc

	return nil
}

// distinctNonEmpty checks that every value is set and no two settings
// share a value. Settings are reported by their YAML names.
func distinctNonEmpty(values map[string]string) error {
	owner := make(map[string]string, len(values))
	for setting, v := range values {
		if v == "" {
			return fmt.Errorf("%s must not be empty", setting)
		}
		if other, dup := owner[v]; dup {
			a, b := other, setting
			if b < a {
				a, b = b, a
			}
			return fmt.Errorf("%s and %s must differ (both %q)", a, b, v)
		}
		owner[v] = setting
	}
	return nil
}
