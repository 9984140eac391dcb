// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrNoSessionInContext is returned when a journal handler runs without the
// session gate having stored a state in the request context.
var ErrNoSessionInContext = errors.New("no session in request context")
