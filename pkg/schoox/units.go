package schoox

import "context"

// UnitsService covers the academy's organisational structure: units, above
// units and jobs.
type UnitsService service

func (s *UnitsService) List(ctx context.Context, opts *SearchOptions) (*Response, error) {
	return s.client.get(ctx, "units", opts)
}

func (s *UnitsService) ListAboves(ctx context.Context, opts *SearchOptions) (*Response, error) {
	return s.client.get(ctx, "aboves", opts)
}

func (s *UnitsService) ListJobs(ctx context.Context, opts *SearchOptions) (*Response, error) {
	return s.client.get(ctx, "jobs", opts)
}

// Edit updates a unit. body is sent as JSON unchanged.
func (s *UnitsService) Edit(ctx context.Context, unitID string, body any) (*Response, error) {
	return s.client.put(ctx, "units/{unitId}", nil, body, unitID)
}

// CreateBulk creates several units in one call.
func (s *UnitsService) CreateBulk(ctx context.Context, body any) (*Response, error) {
	return s.client.post(ctx, "units/bulk", body)
}

func (s *UnitsService) Delete(ctx context.Context, unitID string) (*Response, error) {
	return s.client.delete(ctx, "units/{unitId}", unitID)
}
