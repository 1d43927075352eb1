package tutor

import "context"

// UnavailableProvider is used when no API key is configured. Every
// request fails with ErrProviderUnavailable so the UI can show its
// fallback message instead of crashing.
type UnavailableProvider struct{}

// NewUnavailableProvider returns the no-op provider.
func NewUnavailableProvider() *UnavailableProvider {
	return &UnavailableProvider{}
}

func (*UnavailableProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, &ErrProviderUnavailable{}
}

func (*UnavailableProvider) ModelID() string {
	return "none"
}
