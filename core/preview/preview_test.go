// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package preview

import (
	"testing"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/visagefe/visagefe/i18n"
)

func newTestSigner(t *testing.T, ttl time.Duration) *Signer {
	t.Helper()

	return &Signer{
		key: paseto.NewV4SymmetricKey(),
		ttl: ttl,
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, time.Hour)

	encoded := signer.Issue(i18n.PT, "nova-tecnica-endomidface")

	loc, slug, err := signer.Verify(encoded)
	require.NoError(t, err)
	assert.Equal(t, i18n.PT, loc)
	assert.Equal(t, "nova-tecnica-endomidface", slug)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, -time.Minute)

	encoded := signer.Issue(i18n.EN, "upcoming-post")

	_, _, err := signer.Verify(encoded)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, time.Hour)
	other := newTestSigner(t, time.Hour)

	encoded := signer.Issue(i18n.ES, "borrador")

	_, _, err := other.Verify(encoded)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, time.Hour)

	for _, encoded := range []string{"", "v4.local.notatoken", "v2.public.whatever"} {
		_, _, err := signer.Verify(encoded)
		assert.ErrorIs(t, err, ErrInvalidToken, encoded)
	}
}

func TestVerifyRejectsWrongSubject(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, time.Hour)

	token := paseto.NewToken()
	token.SetSubject("something else")
	token.SetExpiration(time.Now().Add(time.Hour))
	token.SetString("locale", string(i18n.PT))
	token.SetString("slug", "rascunho")

	_, _, err := signer.Verify(token.V4Encrypt(signer.key, []byte(implicit)))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsUnknownLocale(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, time.Hour)

	token := paseto.NewToken()
	token.SetSubject(tokenSubject)
	token.SetExpiration(time.Now().Add(time.Hour))
	token.SetString("locale", "fr")
	token.SetString("slug", "brouillon")

	_, _, err := signer.Verify(token.V4Encrypt(signer.key, []byte(implicit)))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewSecretHex(t *testing.T) {
	t.Parallel()

	hex := NewSecretHex()
	assert.Len(t, hex, 64)

	_, err := paseto.V4SymmetricKeyFromHex(hex)
	assert.NoError(t, err)
}
