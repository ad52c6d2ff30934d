// Copyright (c) 2024-2026 Xplainable Pty Ltd and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package normalize contains the response normalization layer between the
// MCP tool handlers and the platform client.
//
// Some platform endpoints return a literal null where an empty collection
// is expected.  The platform client reports that single defect class as
// platform.ErrNullCollection; this package converts it into an explicit
// "absent" result and guarantees that a normalized sequence or mapping is
// never nil.  Matching is deliberately narrow: only the sentinel is
// suppressed, every other error propagates unchanged, so that genuine
// failures are not masked.
package normalize

import (
	"context"
	"errors"
	"log/slog"

	"github.com/xplainable-io/xmcp/internal/platform"
)

// Mapper is the conversion capability every response model implements: a
// plain mapping with the wire field names as keys.
type Mapper interface {
	AsMap() map[string]any
}

// Shape is the shape a tool expects its result to have.
type Shape int

const (
	// ShapeValue passes values through unchanged.
	ShapeValue Shape = iota
	// ShapeSequence expects an ordered sequence of mappings.
	ShapeSequence
	// ShapeMapping expects a single mapping.
	ShapeMapping
)

// CallSafely invokes fn and classifies its error.  When fn fails with the
// known null-collection defect, CallSafely logs a warning naming op,
// reports absent=true and swallows the error; any other error propagates
// unchanged.  A nil logger falls back to slog.Default().
func CallSafely[T any](ctx context.Context, lg *slog.Logger, op string, fn func(context.Context) (T, error)) (v T, absent bool, err error) {
	v, err = fn(ctx)
	if err == nil {
		return v, false, nil
	}
	if errors.Is(err, platform.ErrNullCollection) {
		if lg == nil {
			lg = slog.Default()
		}
		lg.WarnContext(ctx, "backend returned null, treating as empty", "op", op)
		var zero T
		return zero, true, nil
	}
	return v, false, err
}

// MappingList converts a slice of response models to a slice of plain
// mappings.  A nil or empty input yields an empty, non-nil slice.  Elements
// whose conversion yields no mapping (the absent-element case) are dropped.
func MappingList[T Mapper](items []T) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		m := item.AsMap()
		if m == nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Mapping converts a single response model to a plain mapping.  ok is false
// when the model is absent; the caller decides whether absence is a valid
// empty result or a not-found condition.
func Mapping[T Mapper](item *T) (m map[string]any, ok bool) {
	if item == nil {
		return nil, false
	}
	return (*item).AsMap(), true
}

// Coerce applies the expected shape to v: an absent value becomes an empty
// sequence or mapping according to shape, everything else passes through
// unchanged.
func Coerce(v any, shape Shape) any {
	if v != nil {
		return v
	}
	switch shape {
	case ShapeSequence:
		return []map[string]any{}
	case ShapeMapping:
		return map[string]any{}
	default:
		return v
	}
}

// CoerceList is Coerce for typed mapping lists: it only replaces nil with
// an empty slice.
func CoerceList(v []map[string]any) []map[string]any {
	if v == nil {
		return []map[string]any{}
	}
	return v
}

// CoerceMap is Coerce for untyped mappings: it only replaces nil with an
// empty map.
func CoerceMap(v map[string]any) map[string]any {
	if v == nil {
		return map[string]any{}
	}
	return v
}
