package schoox

import "context"

// DashboardService reads the reporting dashboard: progress of users across
// courses, curriculums and exams.
type DashboardService service

// DashboardUserOptions filters Dashboard.Users.
type DashboardUserOptions struct {
	UserID     string `mapstructure:"userId,omitempty"`
	ExternalID *bool  `mapstructure:"external_id,omitempty"`
	AboveID    string `mapstructure:"aboveId,omitempty"`
	JobID      string `mapstructure:"jobId,omitempty"`
	Start      int    `mapstructure:"start,omitempty"`
	Limit      int    `mapstructure:"limit,omitempty"`
	Sort       string `mapstructure:"sort,omitempty"`
}

// EnrolledUsersOptions filters the users enrolled in a course, curriculum
// or exam.
type EnrolledUsersOptions struct {
	RegionID   string `mapstructure:"regionId,omitempty"`
	LocationID string `mapstructure:"locationId,omitempty"`
	JobID      string `mapstructure:"jobId,omitempty"`
	Letter     string `mapstructure:"letter,omitempty"`
	Start      int    `mapstructure:"start,omitempty"`
	Limit      int    `mapstructure:"limit,omitempty"`
	Sort       string `mapstructure:"sort,omitempty"`
}

// Users lists users with role and their dashboard totals.
func (s *DashboardService) Users(ctx context.Context, role string, opts *DashboardUserOptions) (*Response, error) {
	q, err := withParam(opts, "role", role)
	if err != nil {
		return nil, err
	}
	return s.client.get(ctx, "dashboard/users", q)
}

func (s *DashboardService) UserCourses(ctx context.Context, userID string, opts *ExternalIDOptions) (*Response, error) {
	return s.client.get(ctx, "dashboard/users/{userId}/courses", opts, userID)
}

func (s *DashboardService) UserCurriculums(ctx context.Context, userID string, opts *ExternalIDOptions) (*Response, error) {
	return s.client.get(ctx, "dashboard/users/{userId}/curriculums", opts, userID)
}

func (s *DashboardService) UserExams(ctx context.Context, userID string, opts *ExternalIDOptions) (*Response, error) {
	return s.client.get(ctx, "dashboard/users/{userId}/exams", opts, userID)
}

// Courses lists courses visible to role with enrollment totals.
func (s *DashboardService) Courses(ctx context.Context, role string) (*Response, error) {
	q, err := withParam(nil, "role", role)
	if err != nil {
		return nil, err
	}
	return s.client.get(ctx, "dashboard/courses", q)
}

// CourseUsers lists the users enrolled in a course.
func (s *DashboardService) CourseUsers(ctx context.Context, courseID, role string, opts *EnrolledUsersOptions) (*Response, error) {
	q, err := withParam(opts, "role", role)
	if err != nil {
		return nil, err
	}
	return s.client.get(ctx, "dashboard/courses/{courseId}", q, courseID)
}

// UserCourseProgress returns one user's progress in a course.
func (s *DashboardService) UserCourseProgress(ctx context.Context, userID, courseID string, opts *ExternalIDOptions) (*Response, error) {
	return s.client.get(ctx, "dashboard/courses/{courseId}/users/{userId}", opts, courseID, userID)
}

func (s *DashboardService) Curriculums(ctx context.Context, role string) (*Response, error) {
	q, err := withParam(nil, "role", role)
	if err != nil {
		return nil, err
	}
	return s.client.get(ctx, "dashboard/curriculums", q)
}

func (s *DashboardService) CurriculumUsers(ctx context.Context, curriculumID, role string, opts *EnrolledUsersOptions) (*Response, error) {
	q, err := withParam(opts, "role", role)
	if err != nil {
		return nil, err
	}
	return s.client.get(ctx, "dashboard/curriculums/{curriculumId}", q, curriculumID)
}

func (s *DashboardService) UserCurriculumProgress(ctx context.Context, userID, curriculumID string, opts *ExternalIDOptions) (*Response, error) {
	return s.client.get(ctx, "dashboard/curriculums/{curriculumId}/users/{userId}", opts, curriculumID, userID)
}

func (s *DashboardService) Exams(ctx context.Context, role string) (*Response, error) {
	q, err := withParam(nil, "role", role)
	if err != nil {
		return nil, err
	}
	return s.client.get(ctx, "dashboard/exams", q)
}

func (s *DashboardService) ExamUsers(ctx context.Context, examID, role string, opts *EnrolledUsersOptions) (*Response, error) {
	q, err := withParam(opts, "role", role)
	if err != nil {
		return nil, err
	}
	return s.client.get(ctx, "dashboard/exams/{examId}", q, examID)
}
