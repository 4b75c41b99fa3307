// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tip holds the tip calculation. Everything here is pure: the same
// bill amount, tip percentage and rounding flag always produce the same
// result, and nothing is remembered between calls.
package tip
