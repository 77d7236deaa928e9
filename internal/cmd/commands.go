package cmd

import (
	"context"
	"net/http"

	"github.com/mitchellh/cli"

	"github.com/okian/schoox/pkg/schoox"
)

var groups = map[string]string{
	"users":       "Read academy users",
	"units":       "Read units, above units and jobs",
	"dashboard":   "Read dashboard progress reports",
	"courses":     "Read courses, their students and coupons",
	"curriculums": "Read curriculums and their students",
	"exams":       "Read exams and exam results",
	"badges":      "Read badges",
	"groups":      "Read groups",
	"content":     "Read the content library",
}

func endpoints() []endpoint {
	return []endpoint{
		{
			name: "usage", synopsis: "Show academy usage",
			run: func(ctx context.Context, c *schoox.Client, _ []string, _ any) (*schoox.Response, error) {
				return c.Usage.Get(ctx)
			},
		},
		{
			name: "users get", synopsis: "Show a user", args: []string{"user-id"},
			options: func() any { return &schoox.ExternalIDOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				ext := o.(*schoox.ExternalIDOptions).ExternalID
				return c.Users.Get(ctx, a[0], ext != nil && *ext)
			},
		},
		{
			name: "users list", synopsis: "List users with a role", args: []string{"role"},
			options: func() any { return &schoox.UserListOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Users.List(ctx, a[0], o.(*schoox.UserListOptions))
			},
		},
		{
			name: "units list", synopsis: "List units",
			options: func() any { return &schoox.SearchOptions{} },
			run: func(ctx context.Context, c *schoox.Client, _ []string, o any) (*schoox.Response, error) {
				return c.Units.List(ctx, o.(*schoox.SearchOptions))
			},
		},
		{
			name: "units aboves", synopsis: "List above units",
			options: func() any { return &schoox.SearchOptions{} },
			run: func(ctx context.Context, c *schoox.Client, _ []string, o any) (*schoox.Response, error) {
				return c.Units.ListAboves(ctx, o.(*schoox.SearchOptions))
			},
		},
		{
			name: "units jobs", synopsis: "List jobs",
			options: func() any { return &schoox.SearchOptions{} },
			run: func(ctx context.Context, c *schoox.Client, _ []string, o any) (*schoox.Response, error) {
				return c.Units.ListJobs(ctx, o.(*schoox.SearchOptions))
			},
		},
		{
			name: "dashboard users", synopsis: "List users with dashboard totals", args: []string{"role"},
			options: func() any { return &schoox.DashboardUserOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Dashboard.Users(ctx, a[0], o.(*schoox.DashboardUserOptions))
			},
		},
		{
			name: "dashboard user-courses", synopsis: "Show a user's course progress", args: []string{"user-id"},
			options: func() any { return &schoox.ExternalIDOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Dashboard.UserCourses(ctx, a[0], o.(*schoox.ExternalIDOptions))
			},
		},
		{
			name: "dashboard user-curriculums", synopsis: "Show a user's curriculum progress", args: []string{"user-id"},
			options: func() any { return &schoox.ExternalIDOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Dashboard.UserCurriculums(ctx, a[0], o.(*schoox.ExternalIDOptions))
			},
		},
		{
			name: "dashboard user-exams", synopsis: "Show a user's exam results", args: []string{"user-id"},
			options: func() any { return &schoox.ExternalIDOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Dashboard.UserExams(ctx, a[0], o.(*schoox.ExternalIDOptions))
			},
		},
		{
			name: "dashboard courses", synopsis: "List courses with enrollment totals", args: []string{"role"},
			run: func(ctx context.Context, c *schoox.Client, a []string, _ any) (*schoox.Response, error) {
				return c.Dashboard.Courses(ctx, a[0])
			},
		},
		{
			name: "dashboard course-users", synopsis: "List the users enrolled in a course", args: []string{"course-id", "role"},
			options: func() any { return &schoox.EnrolledUsersOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Dashboard.CourseUsers(ctx, a[0], a[1], o.(*schoox.EnrolledUsersOptions))
			},
		},
		{
			name: "dashboard course-progress", synopsis: "Show a user's progress in a course", args: []string{"user-id", "course-id"},
			options: func() any { return &schoox.ExternalIDOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Dashboard.UserCourseProgress(ctx, a[0], a[1], o.(*schoox.ExternalIDOptions))
			},
		},
		{
			name: "dashboard curriculums", synopsis: "List curriculums with enrollment totals", args: []string{"role"},
			run: func(ctx context.Context, c *schoox.Client, a []string, _ any) (*schoox.Response, error) {
				return c.Dashboard.Curriculums(ctx, a[0])
			},
		},
		{
			name: "dashboard curriculum-users", synopsis: "List the users enrolled in a curriculum", args: []string{"curriculum-id", "role"},
			options: func() any { return &schoox.EnrolledUsersOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Dashboard.CurriculumUsers(ctx, a[0], a[1], o.(*schoox.EnrolledUsersOptions))
			},
		},
		{
			name: "dashboard curriculum-progress", synopsis: "Show a user's progress in a curriculum", args: []string{"user-id", "curriculum-id"},
			options: func() any { return &schoox.ExternalIDOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Dashboard.UserCurriculumProgress(ctx, a[0], a[1], o.(*schoox.ExternalIDOptions))
			},
		},
		{
			name: "dashboard exams", synopsis: "List exams with enrollment totals", args: []string{"role"},
			run: func(ctx context.Context, c *schoox.Client, a []string, _ any) (*schoox.Response, error) {
				return c.Dashboard.Exams(ctx, a[0])
			},
		},
		{
			name: "dashboard exam-users", synopsis: "List the users enrolled in an exam", args: []string{"exam-id", "role"},
			options: func() any { return &schoox.EnrolledUsersOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Dashboard.ExamUsers(ctx, a[0], a[1], o.(*schoox.EnrolledUsersOptions))
			},
		},
		{
			name: "courses list", synopsis: "List courses",
			options: func() any { return &schoox.CourseListOptions{} },
			run: func(ctx context.Context, c *schoox.Client, _ []string, o any) (*schoox.Response, error) {
				return c.Courses.List(ctx, o.(*schoox.CourseListOptions))
			},
		},
		{
			name: "courses user", synopsis: "List a user's courses", args: []string{"user-id"},
			options: func() any { return &schoox.UserCourseOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Courses.ListForUser(ctx, a[0], o.(*schoox.UserCourseOptions))
			},
		},
		{
			name: "courses categories", synopsis: "List course categories",
			options: func() any { return &schoox.CourseCategoryOptions{} },
			run: func(ctx context.Context, c *schoox.Client, _ []string, o any) (*schoox.Response, error) {
				return c.Courses.Categories(ctx, o.(*schoox.CourseCategoryOptions))
			},
		},
		{
			name: "courses get", synopsis: "Show a course", args: []string{"course-id"},
			options: func() any { return &schoox.CourseOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Courses.Get(ctx, a[0], o.(*schoox.CourseOptions))
			},
		},
		{
			name: "courses students", synopsis: "List a course's students", args: []string{"course-id"},
			options: func() any { return &schoox.StudentOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Courses.Students(ctx, a[0], o.(*schoox.StudentOptions))
			},
		},
		{
			name: "courses lectures", synopsis: "List a course's lectures", args: []string{"course-id"},
			options: func() any { return &schoox.UserOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Courses.Lectures(ctx, a[0], o.(*schoox.UserOptions))
			},
		},
		{
			name: "courses exams", synopsis: "List a course's exams", args: []string{"course-id"},
			options: func() any { return &schoox.UserOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Courses.Exams(ctx, a[0], o.(*schoox.UserOptions))
			},
		},
		{
			name: "courses coupons", synopsis: "List a course's coupons", args: []string{"course-id"},
			run: func(ctx context.Context, c *schoox.Client, a []string, _ any) (*schoox.Response, error) {
				return c.Courses.Coupons(ctx, a[0])
			},
		},
		{
			name: "courses coupon-students", synopsis: "List the users who redeemed a coupon", args: []string{"course-id", "coupon-id"},
			run: func(ctx context.Context, c *schoox.Client, a []string, _ any) (*schoox.Response, error) {
				return c.Courses.CouponStudents(ctx, a[0], a[1])
			},
		},
		{
			name: "courses invitations", synopsis: "List a course's invitations", args: []string{"course-id"},
			run: func(ctx context.Context, c *schoox.Client, a []string, _ any) (*schoox.Response, error) {
				return c.Courses.Invitations(ctx, a[0])
			},
		},
		{
			name: "courses skills", synopsis: "List a course's skills", args: []string{"course-id"},
			run: func(ctx context.Context, c *schoox.Client, a []string, _ any) (*schoox.Response, error) {
				return c.Courses.Skills(ctx, a[0])
			},
		},
		{
			name: "curriculums list", synopsis: "List curriculums",
			options: func() any { return &schoox.UserCurriculumOptions{} },
			run: func(ctx context.Context, c *schoox.Client, _ []string, o any) (*schoox.Response, error) {
				return c.Curriculums.ListForUser(ctx, o.(*schoox.UserCurriculumOptions))
			},
		},
		{
			name: "curriculums get", synopsis: "Show a curriculum", args: []string{"curriculum-id"},
			options: func() any { return &schoox.CurriculumOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Curriculums.Get(ctx, a[0], o.(*schoox.CurriculumOptions))
			},
		},
		{
			name: "curriculums students", synopsis: "List a curriculum's students", args: []string{"curriculum-id"},
			options: func() any { return &schoox.CurriculumStudentOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Curriculums.Students(ctx, a[0], o.(*schoox.CurriculumStudentOptions))
			},
		},
		{
			name: "exams list", synopsis: "List exams",
			options: func() any { return &schoox.PageOptions{} },
			run: func(ctx context.Context, c *schoox.Client, _ []string, o any) (*schoox.Response, error) {
				return c.Exams.List(ctx, o.(*schoox.PageOptions))
			},
		},
		{
			name: "exams students", synopsis: "List an exam's students", args: []string{"exam-id"},
			options: func() any { return &schoox.PageOptions{} },
			run: func(ctx context.Context, c *schoox.Client, a []string, o any) (*schoox.Response, error) {
				return c.Exams.Students(ctx, a[0], o.(*schoox.PageOptions))
			},
		},
		{
			name: "exams performance", synopsis: "Show a user's exam attempts", args: []string{"exam-id", "user-id"},
			run: func(ctx context.Context, c *schoox.Client, a []string, _ any) (*schoox.Response, error) {
				return c.Exams.StudentPerformance(ctx, a[0], a[1])
			},
		},
		{
			name: "badges list", synopsis: "List badges",
			options: func() any { return &schoox.BadgeListOptions{} },
			run: func(ctx context.Context, c *schoox.Client, _ []string, o any) (*schoox.Response, error) {
				return c.Badges.List(ctx, o.(*schoox.BadgeListOptions))
			},
		},
		{
			name: "groups list", synopsis: "List groups",
			options: func() any { return &schoox.PageOptions{} },
			run: func(ctx context.Context, c *schoox.Client, _ []string, o any) (*schoox.Response, error) {
				return c.Groups.List(ctx, o.(*schoox.PageOptions))
			},
		},
		{
			name: "content list", synopsis: "List content",
			options: func() any { return &schoox.ContentListOptions{} },
			run: func(ctx context.Context, c *schoox.Client, _ []string, o any) (*schoox.Response, error) {
				return c.Content.List(ctx, o.(*schoox.ContentListOptions))
			},
		},
		{
			name: "content categories", synopsis: "List content categories",
			options: func() any { return &schoox.SearchOptions{} },
			run: func(ctx context.Context, c *schoox.Client, _ []string, o any) (*schoox.Response, error) {
				return c.Content.Categories(ctx, o.(*schoox.SearchOptions))
			},
		},
		{
			name: "content venues", synopsis: "List venues",
			options: func() any { return &schoox.SearchOptions{} },
			run: func(ctx context.Context, c *schoox.Client, _ []string, o any) (*schoox.Response, error) {
				return c.Content.Venues(ctx, o.(*schoox.SearchOptions))
			},
		},
		{
			name: "content timezones", synopsis: "List timezones",
			run: func(ctx context.Context, c *schoox.Client, _ []string, _ any) (*schoox.Response, error) {
				return c.Content.Timezones(ctx)
			},
		},
	}
}

// Commands builds the command table around base.
func Commands(base *Base) map[string]cli.CommandFactory {
	commands := map[string]cli.CommandFactory{
		"version": func() (cli.Command, error) {
			return &VersionCommand{Base: base}, nil
		},
	}
	for name, synopsis := range groups {
		g := &GroupCommand{Base: base, name: name, synopsis: synopsis}
		commands[name] = func() (cli.Command, error) { return g, nil }
	}
	for _, e := range endpoints() {
		c := &EndpointCommand{Base: base, endpoint: e}
		commands[e.name] = func() (cli.Command, error) { return c, nil }
	}
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete} {
		c := &RawCommand{Base: base, method: method}
		commands[rawName(method)] = func() (cli.Command, error) { return c, nil }
	}
	return commands
}

func rawName(method string) string {
	switch method {
	case http.MethodPut:
		return "put"
	case http.MethodPost:
		return "post"
	case http.MethodDelete:
		return "delete"
	default:
		return "get"
	}
}
