package apiclient

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/mediflow/mediflow-go/pkg/credstore"
)

// storeTokenSource adapts the credential store to oauth2.TokenSource so the
// standard oauth2 transport performs the bearer injection. The store is read
// on every request: tokens installed or cleared by the session manager take
// effect immediately, with no cached copy going stale.
type storeTokenSource struct {
	creds credstore.Store
}

func (s storeTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.creds.Token(context.Background())
	if err != nil {
		if errors.Is(err, credstore.ErrNoCredential) {
			return nil, errors.Join(ErrUnauthorized, err)
		}
		return nil, err
	}
	return &oauth2.Token{AccessToken: token}, nil
}

// newAuthClient builds the http.Client used for authenticated endpoints. The
// oauth2 transport wraps base's transport so test transports still apply. The
// token source is used directly, not through oauth2.ReuseTokenSource: a
// cached token would outlive a logout, so every request must hit the store.
func newAuthClient(base *http.Client, creds credstore.Store) *http.Client {
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: storeTokenSource{creds: creds},
			Base:   base.Transport,
		},
		Timeout: base.Timeout,
	}
}
