// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package idgen makes short request identifiers for log correlation.
package idgen

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

// Make returns a short ID built from a clock component and 4 bytes of entropy.
//
// IDs are unique enough for correlating log lines within one instance; they
// are not globally unique.
func Make() string {
	var entropy [4]byte

	_, _ = rand.Read(entropy[:])

	return clockPart(time.Now()) + "-" + base64.RawURLEncoding.EncodeToString(entropy[:])
}

func clockPart(t time.Time) string {
	return t.Format("150405")
}
