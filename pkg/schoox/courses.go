package schoox

import "context"

// CoursesService reads courses and completes them on behalf of users.
type CoursesService service

// CourseListOptions filters Courses.List.
type CourseListOptions struct {
	UserID string   `mapstructure:"userId,omitempty"`
	Search string   `mapstructure:"search,omitempty"`
	Status string   `mapstructure:"status,omitempty"`
	Skills []string `mapstructure:"skills,omitempty"`
	Start  int      `mapstructure:"start,omitempty"`
	Limit  int      `mapstructure:"limit,omitempty"`
}

// UserCourseOptions filters Courses.ListForUser. ExternalID defaults to
// false when unset.
type UserCourseOptions struct {
	ExternalID *bool  `mapstructure:"external_id,omitempty"`
	Role       string `mapstructure:"role,omitempty"`
	Status     string `mapstructure:"status,omitempty"`
	Search     string `mapstructure:"search,omitempty"`
	Enrolled   *bool  `mapstructure:"enrolled,omitempty"`
	CategoryID string `mapstructure:"category_id,omitempty"`
	Language   string `mapstructure:"language,omitempty"`
	Start      int    `mapstructure:"start,omitempty"`
	Limit      int    `mapstructure:"limit,omitempty"`
}

// CourseCategoryOptions filters Courses.Categories.
type CourseCategoryOptions struct {
	UserID     string `mapstructure:"userId,omitempty"`
	ExternalID *bool  `mapstructure:"external_id,omitempty"`
	Role       string `mapstructure:"role,omitempty"`
}

// CourseOptions scopes a course lookup to a user or status.
type CourseOptions struct {
	UserID string `mapstructure:"userId,omitempty"`
	Status string `mapstructure:"status,omitempty"`
}

// StudentOptions pages through a course's students.
type StudentOptions struct {
	Start         int   `mapstructure:"start,omitempty"`
	Limit         int   `mapstructure:"limit,omitempty"`
	OnlyCompleted *bool `mapstructure:"onlyCompleted,omitempty"`
}

// UserOptions scopes a listing to one user's view.
type UserOptions struct {
	UserID string `mapstructure:"userId,omitempty"`
}

// CompletionOptions are the query parameters of the completeByAdmin calls.
// CompletedAt is a date the API accepts as-is, e.g. 2024-01-31.
type CompletionOptions struct {
	ExternalIDs *bool  `mapstructure:"externalIds,omitempty"`
	CompletedAt string `mapstructure:"completedAt,omitempty"`
}

// CompletionRequest is the body of Courses.CompleteByAdmin.
type CompletionRequest struct {
	UserIDs              []string `json:"userIds"`
	CertificatePdfBase64 string   `json:"certificatePdfBase64,omitempty"`
}

// CertificateRequest is the body of Courses.IssueCustomCertificate.
type CertificateRequest struct {
	CertificatePdfBase64 string `json:"certificatePdfBase64"`
}

func (s *CoursesService) List(ctx context.Context, opts *CourseListOptions) (*Response, error) {
	return s.client.get(ctx, "courses", opts)
}

// ListForUser lists the courses of one user.
func (s *CoursesService) ListForUser(ctx context.Context, userID string, opts *UserCourseOptions) (*Response, error) {
	o := UserCourseOptions{}
	if opts != nil {
		o = *opts
	}
	if o.ExternalID == nil {
		o.ExternalID = Bool(false)
	}
	return s.client.get(ctx, "courses/user/{userId}", &o, userID)
}

func (s *CoursesService) Categories(ctx context.Context, opts *CourseCategoryOptions) (*Response, error) {
	return s.client.get(ctx, "courses/categories", opts)
}

func (s *CoursesService) Get(ctx context.Context, courseID string, opts *CourseOptions) (*Response, error) {
	return s.client.get(ctx, "courses/{courseId}", opts, courseID)
}

func (s *CoursesService) Students(ctx context.Context, courseID string, opts *StudentOptions) (*Response, error) {
	return s.client.get(ctx, "courses/{courseId}/students", opts, courseID)
}

func (s *CoursesService) Lectures(ctx context.Context, courseID string, opts *UserOptions) (*Response, error) {
	return s.client.get(ctx, "courses/{courseId}/lectures", opts, courseID)
}

func (s *CoursesService) Exams(ctx context.Context, courseID string, opts *UserOptions) (*Response, error) {
	return s.client.get(ctx, "courses/{courseId}/exams", opts, courseID)
}

func (s *CoursesService) Coupons(ctx context.Context, courseID string) (*Response, error) {
	return s.client.get(ctx, "courses/{courseId}/coupons", nil, courseID)
}

// CouponStudents lists the users who redeemed a coupon.
func (s *CoursesService) CouponStudents(ctx context.Context, courseID, couponID string) (*Response, error) {
	return s.client.get(ctx, "courses/{courseId}/coupons/{couponId}", nil, courseID, couponID)
}

func (s *CoursesService) Invitations(ctx context.Context, courseID string) (*Response, error) {
	return s.client.get(ctx, "courses/{courseId}/invitations", nil, courseID)
}

func (s *CoursesService) Skills(ctx context.Context, courseID string) (*Response, error) {
	return s.client.get(ctx, "courses/{courseId}/skills", nil, courseID)
}

// CompleteByAdmin marks the course completed for req.UserIDs.
func (s *CoursesService) CompleteByAdmin(ctx context.Context, courseID string, opts *CompletionOptions, req CompletionRequest) (*Response, error) {
	if req.UserIDs == nil {
		req.UserIDs = []string{}
	}
	return s.client.put(ctx, "courses/{courseId}/completeByAdmin", opts, req, courseID)
}

// IssueCustomCertificate attaches a PDF certificate to a course.
func (s *CoursesService) IssueCustomCertificate(ctx context.Context, courseID string, req CertificateRequest) (*Response, error) {
	return s.client.put(ctx, "courses/{courseId}/issueCustomCertificate", nil, req, courseID)
}
