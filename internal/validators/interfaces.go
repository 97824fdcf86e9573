// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks credentials, listings and todos before they
// reach the services. Each validator can be limited to a subset of fields,
// which is how PATCH bodies are checked without requiring every field.
package validators

import "context"

// Validator checks obj and returns an error naming the first offending field.
// When fields are given only those are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
