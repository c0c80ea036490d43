package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// Provider abstracts the lifecycle of an authorized-user credential.
// The spreadsheet client never touches token storage directly; tests
// supply a fake Provider.
type Provider interface {
	// Load returns the persisted token, or an error if none is stored.
	Load() (*oauth2.Token, error)

	// Refresh exchanges the token's refresh token for a fresh access token.
	Refresh(ctx context.Context, tok *oauth2.Token) (*oauth2.Token, error)

	// AcquireInteractively runs the interactive authorization flow and
	// returns the resulting token.
	AcquireInteractively(ctx context.Context) (*oauth2.Token, error)

	// Persist stores the token for the next run, overwriting any previous one.
	Persist(tok *oauth2.Token) error
}

// FileProvider implements Provider over two local files: the registered
// application's OAuth client secret and a JSON-serialized user token.
type FileProvider struct {
	config    *oauth2.Config
	tokenFile string
}

// NewFileProvider parses the client secret file and returns a provider that
// stores the user token at tokenFile.
func NewFileProvider(credentialsFile, tokenFile string) (*FileProvider, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, &AuthError{Step: "load", Err: fmt.Errorf("failed to read client secret file %s: %w", credentialsFile, err)}
	}

	config, err := google.ConfigFromJSON(b, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, &AuthError{Step: "load", Err: fmt.Errorf("failed to parse client secret file %s: %w", credentialsFile, err)}
	}

	return &FileProvider{
		config:    config,
		tokenFile: tokenFile,
	}, nil
}

// Load reads the persisted token from the token file.
func (p *FileProvider) Load() (*oauth2.Token, error) {
	f, err := os.Open(p.tokenFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open token file %s: %w", p.tokenFile, err)
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token file %s: %w", p.tokenFile, err)
	}

	return tok, nil
}

// Refresh obtains a fresh access token using the stored refresh token.
func (p *FileProvider) Refresh(ctx context.Context, tok *oauth2.Token) (*oauth2.Token, error) {
	refreshed, err := p.config.TokenSource(ctx, tok).Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	log.Debug().
		Time("expiry", refreshed.Expiry).
		Msg("Refreshed access token")

	return refreshed, nil
}

// Persist writes the token to the token file, overwriting any previous one.
func (p *FileProvider) Persist(tok *oauth2.Token) error {
	f, err := os.OpenFile(p.tokenFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open token file %s for writing: %w", p.tokenFile, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to encode token to %s: %w", p.tokenFile, err)
	}

	log.Debug().
		Str("token_file", p.tokenFile).
		Msg("Persisted credential")

	return nil
}

// Client returns an HTTP client that authorizes requests with tok and
// rotates the access token in place when it expires.
func (p *FileProvider) Client(ctx context.Context, tok *oauth2.Token) *http.Client {
	return p.config.Client(ctx, tok)
}
