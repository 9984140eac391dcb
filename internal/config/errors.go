// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Sentinel errors returned by config validation. Callers can match them
// with [errors.Is].
var (
	// ErrInvalidStorageConfigs is returned when the database driver or DSN is
	// missing or unsupported.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs is returned when the session key is empty or the
	// password hash cost is outside the range accepted by bcrypt.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidServerConfigs is returned for negative durations.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
