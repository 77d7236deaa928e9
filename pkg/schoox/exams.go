package schoox

import "context"

// ExamsService reads exams and their results.
type ExamsService service

func (s *ExamsService) List(ctx context.Context, opts *PageOptions) (*Response, error) {
	return s.client.get(ctx, "exams", opts)
}

// Students lists the users enrolled in an exam.
func (s *ExamsService) Students(ctx context.Context, examID string, opts *PageOptions) (*Response, error) {
	return s.client.get(ctx, "exams/{examId}/students", opts, examID)
}

// StudentPerformance returns one user's attempts at an exam.
func (s *ExamsService) StudentPerformance(ctx context.Context, examID, userID string) (*Response, error) {
	return s.client.get(ctx, "exams/{examId}/students/{userId}", nil, examID, userID)
}
