// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models against their `validate` struct
// tags and reports every failing field at once.
//
// A failed check returns a [*ValidationError] whose Violations carry the JSON
// name of each offending field (nested fields as "exercises[1].sets") and a
// readable message. Handlers map it to 400 with the violations as details.
package validators

import "context"

// Validator validates request models.
type Validator interface {
	// Validate checks v. When fields are given, only those struct fields are
	// checked, which is how partial updates validate just what they set.
	Validate(ctx context.Context, v any, fields ...string) error
}
