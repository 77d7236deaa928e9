package schoox

import "context"

// CurriculumsService reads curriculums and completes them for users.
type CurriculumsService service

// UserCurriculumOptions filters Curriculums.ListForUser.
type UserCurriculumOptions struct {
	UserID     string `mapstructure:"userId,omitempty"`
	ExternalID *bool  `mapstructure:"external_id,omitempty"`
	Start      int    `mapstructure:"start,omitempty"`
	Limit      int    `mapstructure:"limit,omitempty"`
}

// CurriculumOptions scopes a curriculum lookup.
type CurriculumOptions struct {
	UserID      string `mapstructure:"userId,omitempty"`
	AnyLanguage *bool  `mapstructure:"anyLanguage,omitempty"`
}

// CurriculumStudentOptions pages through a curriculum's students. Dates
// bound the completion date and are passed through as given.
type CurriculumStudentOptions struct {
	Start               int    `mapstructure:"start,omitempty"`
	Limit               int    `mapstructure:"limit,omitempty"`
	OnlyCompleted       *bool  `mapstructure:"onlyCompleted,omitempty"`
	CompletionStartDate string `mapstructure:"completionStartDate,omitempty"`
	CompletionEndDate   string `mapstructure:"completionEndDate,omitempty"`
}

// ListForUser lists curriculums, optionally those of opts.UserID.
func (s *CurriculumsService) ListForUser(ctx context.Context, opts *UserCurriculumOptions) (*Response, error) {
	return s.client.get(ctx, "curriculums", opts)
}

// Get fetches one curriculum. The API serves this under the singular
// curriculum/ path.
func (s *CurriculumsService) Get(ctx context.Context, curriculumID string, opts *CurriculumOptions) (*Response, error) {
	return s.client.get(ctx, "curriculum/{curriculumId}", opts, curriculumID)
}

func (s *CurriculumsService) Students(ctx context.Context, curriculumID string, opts *CurriculumStudentOptions) (*Response, error) {
	return s.client.get(ctx, "curriculums/{curriculumId}/students", opts, curriculumID)
}

// CompleteByAdmin marks the curriculum completed. users is sent as the JSON
// body unchanged.
func (s *CurriculumsService) CompleteByAdmin(ctx context.Context, curriculumID string, opts *CompletionOptions, users any) (*Response, error) {
	return s.client.put(ctx, "curriculums/{curriculumId}/completeByAdmin", opts, users, curriculumID)
}
