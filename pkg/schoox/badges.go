package schoox

import "context"

// BadgesService lists and awards badges.
type BadgesService service

// BadgeListOptions filters Badges.List.
type BadgeListOptions struct {
	BadgeType string `mapstructure:"badge_type,omitempty"`
}

func (s *BadgesService) List(ctx context.Context, opts *BadgeListOptions) (*Response, error) {
	return s.client.get(ctx, "badges", opts)
}

// Award gives a badge to users. users is sent as the JSON body.
func (s *BadgesService) Award(ctx context.Context, badgeID string, users any) (*Response, error) {
	return s.client.put(ctx, "badges/{badgeId}/award", nil, users, badgeID)
}
