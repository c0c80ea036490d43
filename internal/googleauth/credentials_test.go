package googleauth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

// fakeProvider is a test double for the credential provider
type fakeProvider struct {
	loadResponse    *oauth2.Token
	loadError       error
	refreshResponse *oauth2.Token
	refreshError    error
	acquireResponse *oauth2.Token
	acquireError    error
	persistError    error

	loadCalled    bool
	refreshCalled bool
	acquireCalled bool
	persistCalled bool
	persistedTok  *oauth2.Token
}

func (f *fakeProvider) Load() (*oauth2.Token, error) {
	f.loadCalled = true
	return f.loadResponse, f.loadError
}

func (f *fakeProvider) Refresh(ctx context.Context, tok *oauth2.Token) (*oauth2.Token, error) {
	f.refreshCalled = true
	return f.refreshResponse, f.refreshError
}

func (f *fakeProvider) AcquireInteractively(ctx context.Context) (*oauth2.Token, error) {
	f.acquireCalled = true
	return f.acquireResponse, f.acquireError
}

func (f *fakeProvider) Persist(tok *oauth2.Token) error {
	f.persistCalled = true
	f.persistedTok = tok
	return f.persistError
}

func validToken() *oauth2.Token {
	return &oauth2.Token{
		AccessToken: "valid_access_token",
		Expiry:      time.Now().Add(time.Hour),
	}
}

func expiredToken() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  "stale_access_token",
		RefreshToken: "refresh_token",
		Expiry:       time.Now().Add(-time.Hour),
	}
}

func TestCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidStoredTokenUsedDirectly", func(t *testing.T) {
		provider := &fakeProvider{loadResponse: validToken()}

		tok, err := Credentials(ctx, provider)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if tok.AccessToken != "valid_access_token" {
			t.Errorf("Expected stored token, got %q", tok.AccessToken)
		}
		if provider.refreshCalled || provider.acquireCalled {
			t.Error("Expected no refresh or interactive flow for a valid stored token")
		}
		if provider.persistCalled {
			t.Error("Expected no re-persist of an unchanged token")
		}
	})

	t.Run("ExpiredRefreshableTokenIsRefreshed", func(t *testing.T) {
		refreshed := validToken()
		provider := &fakeProvider{
			loadResponse:    expiredToken(),
			refreshResponse: refreshed,
		}

		tok, err := Credentials(ctx, provider)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if !provider.refreshCalled {
			t.Error("Expected refresh to be attempted")
		}
		if provider.acquireCalled {
			t.Error("Expected no interactive flow when refresh succeeds")
		}
		if !provider.persistCalled || provider.persistedTok != refreshed {
			t.Error("Expected the refreshed token to be persisted")
		}
		if tok != refreshed {
			t.Error("Expected the refreshed token to be returned")
		}
	})

	t.Run("MissingTokenTriggersInteractiveFlow", func(t *testing.T) {
		acquired := validToken()
		provider := &fakeProvider{
			loadError:       fmt.Errorf("open token.json: no such file or directory"),
			acquireResponse: acquired,
		}

		tok, err := Credentials(ctx, provider)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if !provider.acquireCalled {
			t.Error("Expected interactive flow for missing token")
		}
		if !provider.persistCalled || provider.persistedTok != acquired {
			t.Error("Expected the acquired token to be persisted")
		}
		if tok != acquired {
			t.Error("Expected the acquired token to be returned")
		}
	})

	t.Run("ExpiredNonRefreshableTokenTriggersInteractiveFlow", func(t *testing.T) {
		stale := expiredToken()
		stale.RefreshToken = ""
		provider := &fakeProvider{
			loadResponse:    stale,
			acquireResponse: validToken(),
		}

		if _, err := Credentials(ctx, provider); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if provider.refreshCalled {
			t.Error("Expected no refresh attempt without a refresh token")
		}
		if !provider.acquireCalled {
			t.Error("Expected interactive flow for non-refreshable token")
		}
	})

	t.Run("RefusedInteractiveFlowFailsAuthentication", func(t *testing.T) {
		provider := &fakeProvider{
			loadError:    fmt.Errorf("no token stored"),
			acquireError: fmt.Errorf("authorization refused: access_denied"),
		}

		_, err := Credentials(ctx, provider)
		if err == nil {
			t.Fatal("Expected error, got nil")
		}

		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("Expected *AuthError, got %T", err)
		}
		if authErr.Step != "interactive" {
			t.Errorf("Expected step 'interactive', got %q", authErr.Step)
		}
		if provider.persistCalled {
			t.Error("Expected no persist after a refused authorization")
		}
	})

	t.Run("RefreshFailureFailsAuthentication", func(t *testing.T) {
		provider := &fakeProvider{
			loadResponse: expiredToken(),
			refreshError: fmt.Errorf("invalid_grant: token revoked"),
		}

		_, err := Credentials(ctx, provider)
		if err == nil {
			t.Fatal("Expected error, got nil")
		}

		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("Expected *AuthError, got %T", err)
		}
		if authErr.Step != "refresh" {
			t.Errorf("Expected step 'refresh', got %q", authErr.Step)
		}
	})

	t.Run("UnwritableStorageFailsAuthentication", func(t *testing.T) {
		provider := &fakeProvider{
			loadError:       fmt.Errorf("no token stored"),
			acquireResponse: validToken(),
			persistError:    fmt.Errorf("read-only file system"),
		}

		_, err := Credentials(ctx, provider)
		if err == nil {
			t.Fatal("Expected error, got nil")
		}

		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("Expected *AuthError, got %T", err)
		}
		if authErr.Step != "persist" {
			t.Errorf("Expected step 'persist', got %q", authErr.Step)
		}
	})
}

func TestAuthError(t *testing.T) {
	cause := fmt.Errorf("access_denied")
	err := &AuthError{Step: "interactive", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("Expected the cause to be reachable via errors.Is")
	}
	if err.Error() == "" {
		t.Error("Expected a non-empty message")
	}
}
