package schoox

import "context"

// UsersService manages academy members.
type UsersService service

// UserListOptions filters Users.List.
type UserListOptions struct {
	Past    string `mapstructure:"past,omitempty"`
	Search  string `mapstructure:"search,omitempty"`
	AboveID string `mapstructure:"aboveId,omitempty"`
	UnitID  string `mapstructure:"unitId,omitempty"`
	JobID   string `mapstructure:"jobId,omitempty"`
	Start   int    `mapstructure:"start,omitempty"`
	Limit   int    `mapstructure:"limit,omitempty"`
}

// Get fetches one user. When external is true userID is the academy's
// external id for the user.
func (s *UsersService) Get(ctx context.Context, userID string, external bool) (*Response, error) {
	var opts *ExternalIDOptions
	if external {
		opts = &ExternalIDOptions{ExternalID: Bool(true)}
	}
	return s.client.get(ctx, "users/{userId}", opts, userID)
}

// List returns the academy's users holding role.
func (s *UsersService) List(ctx context.Context, role string, opts *UserListOptions) (*Response, error) {
	q, err := withParam(opts, "role", role)
	if err != nil {
		return nil, err
	}
	return s.client.get(ctx, "users", q)
}

// Create adds a user. body is sent as JSON unchanged.
func (s *UsersService) Create(ctx context.Context, body any) (*Response, error) {
	return s.client.post(ctx, "users", body)
}

// AddUnits associates the user with units.
func (s *UsersService) AddUnits(ctx context.Context, userID string, body any) (*Response, error) {
	return s.client.put(ctx, "users/{userId}/units", nil, body, userID)
}

// AddAboveUnits associates the user with above units.
func (s *UsersService) AddAboveUnits(ctx context.Context, userID string, body any) (*Response, error) {
	return s.client.put(ctx, "users/{userId}/aboves", nil, body, userID)
}

// UpdateJobs replaces the user's jobs.
func (s *UsersService) UpdateJobs(ctx context.Context, userID string, body any) (*Response, error) {
	return s.client.put(ctx, "users/{userId}/jobs", nil, body, userID)
}
