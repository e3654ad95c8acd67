// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package preview issues and verifies draft preview tokens.

A preview link carries a v4.local PASETO bound to one draft post (locale and
slug) with a limited lifetime. Whoever holds the link can read that one
draft until the token expires; nothing else is granted.

The key comes from configuration. When none is configured, an ephemeral key
is generated at startup, which keeps previews working in development but
invalidates outstanding links on every restart.
*/
package preview

import (
	"errors"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/rs/zerolog/log"

	"codeberg.org/visagefe/visagefe/config"
	"codeberg.org/visagefe/visagefe/i18n"
)

// implicit is the domain separation assertion. Changing it invalidates every
// outstanding preview link.
const implicit = "VisageFE draft preview"

const tokenSubject = "draft preview"

// ErrInvalidToken covers every verification failure: wrong key, malformed
// token, wrong subject, or expiry. Callers get no finer detail; an expired
// link and a forged one both render the same error page.
var ErrInvalidToken = errors.New("invalid or expired preview token")

var tokenParser = paseto.MakeParser([]paseto.Rule{
	paseto.NotExpired(),
	paseto.Subject(tokenSubject),
})

// Signer issues and verifies preview tokens with one symmetric key.
type Signer struct {
	key paseto.V4SymmetricKey
	ttl time.Duration
}

// Setup builds the signer from the global configuration.
func Setup() (*Signer, error) {
	logger := log.With().Str("sys", "preview").Logger()

	ttl := config.Global.Preview.TTL

	if config.Global.Preview.Secret == "" {
		logger.Warn().Msg("No preview secret configured, using an ephemeral key; links will not survive a restart")

		return &Signer{
			key: paseto.NewV4SymmetricKey(),
			ttl: ttl,
		}, nil
	}

	key, err := paseto.V4SymmetricKeyFromHex(config.Global.Preview.Secret)
	if err != nil {
		return nil, fmt.Errorf("invalid preview secret: %w", err)
	}

	return &Signer{key: key, ttl: ttl}, nil
}

// NewSecretHex generates a fresh key in the configuration's hex format.
func NewSecretHex() string {
	return paseto.NewV4SymmetricKey().ExportHex()
}

// Issue returns a preview token for one draft post.
func (s *Signer) Issue(loc i18n.Locale, slug string) string {
	token := paseto.NewToken()
	token.SetSubject(tokenSubject)
	token.SetIssuedAt(time.Now())
	token.SetExpiration(time.Now().Add(s.ttl))
	token.SetString("locale", string(loc))
	token.SetString("slug", slug)

	return token.V4Encrypt(s.key, []byte(implicit))
}

// Verify checks a token and returns the draft it grants access to.
func (s *Signer) Verify(encoded string) (i18n.Locale, string, error) {
	token, err := tokenParser.ParseV4Local(s.key, encoded, []byte(implicit))
	if err != nil {
		return "", "", ErrInvalidToken
	}

	locale, err := token.GetString("locale")
	if err != nil {
		return "", "", ErrInvalidToken
	}

	slug, err := token.GetString("slug")
	if err != nil {
		return "", "", ErrInvalidToken
	}

	loc := i18n.Locale(locale)
	if !loc.Valid() || slug == "" {
		return "", "", ErrInvalidToken
	}

	return loc, slug, nil
}
