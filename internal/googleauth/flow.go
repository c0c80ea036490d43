package googleauth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// AcquireInteractively runs the locally-hosted authorization callback flow:
// it listens on an ephemeral loopback port, prints the authorization URL,
// waits for the provider to redirect the browser back with a code, and
// exchanges the code for a token.
func (p *FileProvider) AcquireInteractively(ctx context.Context) (*oauth2.Token, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to start callback listener: %w", err)
	}
	defer ln.Close()

	state, err := randomState()
	if err != nil {
		return nil, err
	}

	// The registered redirect URI must cover loopback addresses; the port is
	// chosen at listen time.
	config := *p.config
	config.RedirectURL = fmt.Sprintf("http://%s/", ln.Addr().String())

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("state") != state {
				http.Error(w, "state mismatch", http.StatusBadRequest)
				errCh <- fmt.Errorf("authorization callback state mismatch")
				return
			}
			if errMsg := r.URL.Query().Get("error"); errMsg != "" {
				http.Error(w, "authorization refused", http.StatusForbidden)
				errCh <- fmt.Errorf("authorization refused: %s", errMsg)
				return
			}
			code := r.URL.Query().Get("code")
			if code == "" {
				http.Error(w, "missing code", http.StatusBadRequest)
				errCh <- fmt.Errorf("authorization callback missing code parameter")
				return
			}
			fmt.Fprintln(w, "Authorization complete. You can close this window.")
			codeCh <- code
		}),
	}
	go server.Serve(ln)
	defer server.Close()

	authURL := config.AuthCodeURL(state, oauth2.AccessTypeOffline)
	log.Info().
		Str("url", authURL).
		Msg("Open this URL in your browser to authorize spreadsheet access")

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	log.Info().Msg("Interactive authorization completed")
	return tok, nil
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
