package schoox

import "context"

// UsageService reports academy usage.
type UsageService service

// Get returns the academy's usage and quota figures.
func (s *UsageService) Get(ctx context.Context) (*Response, error) {
	return s.client.get(ctx, "usage", nil)
}
