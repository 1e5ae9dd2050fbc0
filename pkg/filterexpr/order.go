package filterexpr

import (
	"errors"
	"fmt"
	"strings"
)

// OrderField exposes the sortable key of one resource attribute. The
// accessor must return a string or a float64.
type OrderField[T any] struct {
	Key func(T) any
}

// OrderSchema describes ordering defaults and whitelisted keys.
type OrderSchema[T any] struct {
	DefaultPrimary     string
	DefaultPrimaryDesc bool
	FallbackKey        string
	FallbackDesc       bool
	Fields             map[string]OrderField[T]
}

// Less is a strict-weak-ordering comparator over two items.
type Less[T any] func(a, b T) bool

type orderTerm[T any] struct {
	key  func(T) any
	desc bool
}

// Comparator parses an "key [asc|desc][, key [asc|desc]]" order clause and
// returns a comparator suitable for sort.SliceStable. At most two keys are
// accepted; the schema fallback key breaks remaining ties.
func Comparator[T any](raw string, schema OrderSchema[T]) (Less[T], error) {
	if schema.Fields == nil {
		schema.Fields = map[string]OrderField[T]{}
	}
	if schema.DefaultPrimary == "" {
		return nil, errors.New("order schema default primary key required")
	}
	if schema.FallbackKey == "" {
		return nil, errors.New("order schema fallback key required")
	}
	if _, ok := schema.Fields[schema.DefaultPrimary]; !ok {
		return nil, fmt.Errorf("order key %q missing from schema fields", schema.DefaultPrimary)
	}
	if _, ok := schema.Fields[schema.FallbackKey]; !ok {
		return nil, fmt.Errorf("fallback order key %q missing from schema fields", schema.FallbackKey)
	}

	terms := []orderTerm[T]{
		{key: schema.Fields[schema.DefaultPrimary].Key, desc: schema.DefaultPrimaryDesc},
	}
	primaryKey := schema.DefaultPrimary

	raw = strings.TrimSpace(raw)
	if raw != "" {
		terms = terms[:0]
		seen := make(map[string]struct{})
		for _, seg := range strings.Split(raw, ",") {
			seg = strings.TrimSpace(seg)
			if seg == "" {
				continue
			}

			parts := strings.Fields(seg)
			key := parts[0]
			rule, ok := schema.Fields[key]
			if !ok {
				return nil, fmt.Errorf("field %q cannot be used for ordering", key)
			}

			var desc bool
			switch len(parts) {
			case 1:
				desc = false
			case 2:
				switch strings.ToLower(parts[1]) {
				case "asc":
					desc = false
				case "desc":
					desc = true
				default:
					return nil, fmt.Errorf("invalid direction %q for field %q", parts[1], key)
				}
			default:
				return nil, fmt.Errorf("invalid order segment %q", seg)
			}

			if _, dup := seen[key]; dup {
				return nil, fmt.Errorf("duplicate order key %q", key)
			}
			seen[key] = struct{}{}

			if len(terms) == 2 {
				return nil, errors.New("order_by supports at most two keys")
			}
			terms = append(terms, orderTerm[T]{key: rule.Key, desc: desc})
			if len(terms) == 1 {
				primaryKey = key
			}
		}
		if len(terms) == 0 {
			terms = append(terms, orderTerm[T]{key: schema.Fields[schema.DefaultPrimary].Key, desc: schema.DefaultPrimaryDesc})
			primaryKey = schema.DefaultPrimary
		}
	}

	if len(terms) == 1 && schema.FallbackKey != primaryKey {
		terms = append(terms, orderTerm[T]{key: schema.Fields[schema.FallbackKey].Key, desc: schema.FallbackDesc})
	}

	return func(a, b T) bool {
		for _, term := range terms {
			switch cmp := compareKeys(term.key(a), term.key(b)); {
			case cmp == 0:
				continue
			case term.desc:
				return cmp > 0
			default:
				return cmp < 0
			}
		}
		return false
	}, nil
}

// compareKeys orders two accessor results; mismatched or unsupported types
// compare as equal so a bad accessor degrades to input order.
func compareKeys(a, b any) int {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0
		}
		return strings.Compare(strings.ToLower(av), strings.ToLower(bv))
	case float64:
		bv, ok := b.(float64)
		if !ok {
			return 0
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	default:
		return 0
	}
}
