package userinfo

import "fmt"

// ProviderError is the error envelope returned by the identity provider when
// the userinfo request does not succeed, or when its response cannot be
// understood.
type ProviderError struct {
	Code        string `json:"error"`
	Description string `json:"error_description"`
	Status      int    `json:"-"`
}

func (e *ProviderError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("userinfo request failed: %s (%s)", e.Code, e.Description)
	}

	return fmt.Sprintf("userinfo request failed: %s", e.Code)
}

// NetworkError indicates a transport-level failure reaching the userinfo
// endpoint.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to reach userinfo endpoint %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
