package schoox

import "context"

// ContentService reads the academy's content library.
type ContentService service

// ContentListOptions filters Content.List.
type ContentListOptions struct {
	Start      int    `mapstructure:"start,omitempty"`
	Limit      int    `mapstructure:"limit,omitempty"`
	OrderBy    string `mapstructure:"order_by,omitempty"`
	Direction  string `mapstructure:"direction,omitempty"`
	CategoryID string `mapstructure:"category_id,omitempty"`
	TypeID     int    `mapstructure:"type_id,omitempty"`
	SubTypeID  int    `mapstructure:"sub_type_id,omitempty"`
	Tags       string `mapstructure:"tags,omitempty"`
	Search     string `mapstructure:"search,omitempty"`
}

func (s *ContentService) List(ctx context.Context, opts *ContentListOptions) (*Response, error) {
	return s.client.get(ctx, "content", opts)
}

// Categories lists content categories. Start is ignored by the API.
func (s *ContentService) Categories(ctx context.Context, opts *SearchOptions) (*Response, error) {
	return s.client.get(ctx, "content/categories", opts)
}

func (s *ContentService) Venues(ctx context.Context, opts *SearchOptions) (*Response, error) {
	return s.client.get(ctx, "content/venues", opts)
}

func (s *ContentService) Timezones(ctx context.Context) (*Response, error) {
	return s.client.get(ctx, "content/timezones", nil)
}
