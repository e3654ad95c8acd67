// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package idgen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	t.Parallel()

	now := time.Now()

	id := Make()

	prefix, suffix, found := strings.Cut(id, "-")
	assert.True(t, found)
	assert.Equal(t, strings.ReplaceAll(now.Format("15:04:05"), ":", ""), prefix)
	assert.Len(t, suffix, 6)

	assert.NotEqual(t, Make(), Make())
}
