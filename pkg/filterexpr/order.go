package filterexpr

import (
	"errors"
	"fmt"
	"strings"
)

// OrderSchema describes ordering defaults and whitelisted keys (key -> column).
type OrderSchema struct {
	DefaultPrimary     string
	DefaultPrimaryDesc bool
	FallbackKey        string
	Fields             map[string]string
}

// OrderTerm is one validated ORDER BY element.
type OrderTerm struct {
	Key    string
	Column string
	Desc   bool
}

// ParseOrderBy parses "key [asc|desc], ..." and always appends the fallback key
// (ascending) unless it was already named, so results are deterministic.
func ParseOrderBy(raw string, schema OrderSchema) ([]OrderTerm, error) {
	if _, ok := schema.Fields[schema.DefaultPrimary]; !ok {
		return nil, fmt.Errorf("order key %q missing from schema fields", schema.DefaultPrimary)
	}
	if _, ok := schema.Fields[schema.FallbackKey]; !ok {
		return nil, fmt.Errorf("fallback order key %q missing from schema fields", schema.FallbackKey)
	}

	var terms []OrderTerm
	seen := map[string]struct{}{}
	for _, seg := range strings.Split(raw, ",") {
		parts := strings.Fields(seg)
		if len(parts) == 0 {
			continue
		}
		key := parts[0]
		column, ok := schema.Fields[key]
		if !ok {
			return nil, fmt.Errorf("field %q cannot be used for ordering", key)
		}
		var desc bool
		switch len(parts) {
		case 1:
		case 2:
			switch strings.ToLower(parts[1]) {
			case "asc":
			case "desc":
				desc = true
			default:
				return nil, fmt.Errorf("invalid direction %q for field %q", parts[1], key)
			}
		default:
			return nil, fmt.Errorf("invalid order segment %q", strings.TrimSpace(seg))
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate order key %q", key)
		}
		seen[key] = struct{}{}
		terms = append(terms, OrderTerm{Key: key, Column: column, Desc: desc})
	}

	if len(terms) > 2 {
		return nil, errors.New("order_by supports at most two keys")
	}
	if len(terms) == 0 {
		terms = append(terms, OrderTerm{
			Key:    schema.DefaultPrimary,
			Column: schema.Fields[schema.DefaultPrimary],
			Desc:   schema.DefaultPrimaryDesc,
		})
		seen[schema.DefaultPrimary] = struct{}{}
	}
	if _, ok := seen[schema.FallbackKey]; !ok {
		terms = append(terms, OrderTerm{Key: schema.FallbackKey, Column: schema.Fields[schema.FallbackKey]})
	}
	return terms, nil
}
