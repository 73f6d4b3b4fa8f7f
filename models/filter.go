/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
)

// Filter is an opaque boolean predicate over entity attributes, expressed in
// the store's expression syntax together with its placeholder values. The
// accessor never interprets a filter; it only composes filters and forwards
// them to the store. Callers are responsible for placeholder uniqueness when
// composing hand-written filters; FilterBuilder generates unique placeholders.
//
// The placeholders :pk, :rk and :cutoff are reserved by the accessor.
type Filter struct {
	Expression string
	Values     map[string]types.AttributeValue
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Expression) == ""
}

// And joins two filters with logical AND. A blank side is dropped: if both
// sides are blank the result is blank, if one side is blank the other is
// returned unmodified.
func (f Filter) And(other Filter) Filter {
	return combine(f, other, "AND")
}

// Or joins two filters with logical OR, with the same blank handling as And.
func (f Filter) Or(other Filter) Filter {
	return combine(f, other, "OR")
}

// CombineFilters joins two filters with logical AND.
func CombineFilters(a, b Filter) Filter {
	return combine(a, b, "AND")
}

func combine(a, b Filter, op string) Filter {
	switch {
	case a.IsZero() && b.IsZero():
		return Filter{}
	case a.IsZero():
		return b
	case b.IsZero():
		return a
	}
	return Filter{
		Expression: fmt.Sprintf("%s %s %s", a.Expression, op, b.Expression),
		Values:     mergeValues(a.Values, b.Values),
	}
}

func mergeValues(a, b map[string]types.AttributeValue) map[string]types.AttributeValue {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	merged := make(map[string]types.AttributeValue, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// FilterBuilder accumulates conditions into a Filter, generating a unique
// value placeholder per condition.
type FilterBuilder struct {
	filter Filter
	n      int
}

// NewFilterBuilder creates an empty FilterBuilder.
func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{}
}

// Equals ANDs an attribute string-equality condition.
func (b *FilterBuilder) Equals(attr, value string) *FilterBuilder {
	return b.condition(attr, "=", &types.AttributeValueMemberS{Value: value}, "AND")
}

// OrEquals ORs an attribute string-equality condition.
func (b *FilterBuilder) OrEquals(attr, value string) *FilterBuilder {
	return b.condition(attr, "=", &types.AttributeValueMemberS{Value: value}, "OR")
}

// EqualsBool ANDs an attribute boolean-equality condition.
func (b *FilterBuilder) EqualsBool(attr string, value bool) *FilterBuilder {
	return b.condition(attr, "=", &types.AttributeValueMemberBOOL{Value: value}, "AND")
}

// Before ANDs a condition matching timestamps at or before t.
func (b *FilterBuilder) Before(attr string, t time.Time) *FilterBuilder {
	value := strfmt.DateTime(t.UTC()).String()
	return b.condition(attr, "<=", &types.AttributeValueMemberS{Value: value}, "AND")
}

// After ANDs a condition matching timestamps at or after t.
func (b *FilterBuilder) After(attr string, t time.Time) *FilterBuilder {
	value := strfmt.DateTime(t.UTC()).String()
	return b.condition(attr, ">=", &types.AttributeValueMemberS{Value: value}, "AND")
}

// Build returns the accumulated filter.
func (b *FilterBuilder) Build() Filter {
	return b.filter
}

func (b *FilterBuilder) condition(attr, op string, value types.AttributeValue, join string) *FilterBuilder {
	placeholder := fmt.Sprintf(":f%d", b.n)
	b.n++
	clause := Filter{
		Expression: fmt.Sprintf("%s %s %s", attr, op, placeholder),
		Values:     map[string]types.AttributeValue{placeholder: value},
	}
	b.filter = combine(b.filter, clause, join)
	return b
}
