package googleauth

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// Credentials obtains a valid token from the provider: a persisted token is
// used as-is when still valid, refreshed when expired but refreshable, and
// replaced via the interactive flow otherwise. Any token obtained by refresh
// or interactive authorization is persisted for the next run.
//
// On failure the returned error is always a *AuthError; no spreadsheet call
// has been made at that point.
func Credentials(ctx context.Context, p Provider) (*oauth2.Token, error) {
	tok, err := p.Load()
	if err == nil && tok.Valid() {
		log.Debug().Msg("Using persisted credential")
		return tok, nil
	}

	if err == nil && tok != nil && tok.RefreshToken != "" {
		refreshed, refreshErr := p.Refresh(ctx, tok)
		if refreshErr != nil {
			return nil, &AuthError{Step: "refresh", Err: refreshErr}
		}
		tok = refreshed
	} else {
		if err != nil {
			log.Debug().Err(err).Msg("No persisted credential; starting interactive authorization")
		}
		acquired, acquireErr := p.AcquireInteractively(ctx)
		if acquireErr != nil {
			return nil, &AuthError{Step: "interactive", Err: acquireErr}
		}
		tok = acquired
	}

	if err := p.Persist(tok); err != nil {
		return nil, &AuthError{Step: "persist", Err: err}
	}

	return tok, nil
}
