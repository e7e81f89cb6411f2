package client

import "github.com/jobtrail/jobtrail-backend/internal/trello/domain"

// Credentials authenticate every Trello request.
type Credentials struct {
	APIKey string
	Token  string
}

// Resolve returns the credentials, failing when either secret is empty so
// no request is ever sent anonymously.
func (c Credentials) Resolve() (Credentials, error) {
	if c.APIKey == "" || c.Token == "" {
		return Credentials{}, domain.NewConfigurationError(
			"missing credentials: TRELLO_API_KEY and TRELLO_TOKEN must be set")
	}
	return c, nil
}
