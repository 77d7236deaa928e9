package schoox

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResolvePath(t *testing.T) {
	Convey("Given an endpoint template", t, func() {
		Convey("When every placeholder has an id", func() {
			path, err := resolvePath("courses/{courseId}/coupons/{couponId}", []string{"12", "SUMMER"})
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "courses/12/coupons/SUMMER")
		})

		Convey("When an id needs escaping", func() {
			path, err := resolvePath("users/{userId}", []string{"ext/1 a"})
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "users/ext%2F1%20a")
		})

		Convey("When ids are missing or blank", func() {
			_, err := resolvePath("exams/{examId}/students/{userId}", []string{"5"})
			So(errors.Is(err, ErrMissingPathParam), ShouldBeTrue)

			_, err = resolvePath("users/{userId}", []string{"  "})
			So(errors.Is(err, ErrMissingPathParam), ShouldBeTrue)
		})

		Convey("When the template has no placeholders", func() {
			path, err := resolvePath("content/timezones", nil)
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "content/timezones")
		})
	})
}

func TestEndpointLabel(t *testing.T) {
	Convey("Given raw request paths", t, func() {
		Convey("When a path matches a known endpoint", func() {
			So(endpointLabel("courses/42/students"), ShouldEqual, "courses/{courseId}/students")
			So(endpointLabel("exams/7/students/99"), ShouldEqual, "exams/{examId}/students/{userId}")
			So(endpointLabel("usage"), ShouldEqual, "usage")

			Convey("Then non-numeric ids are collapsed too", func() {
				So(endpointLabel("users/ext-1"), ShouldEqual, "users/{userId}")
				So(endpointLabel("courses/12/coupons/SUMMER24"), ShouldEqual, "courses/{courseId}/coupons/{couponId}")
				So(endpointLabel("courses/user/emp-7"), ShouldEqual, "courses/user/{userId}")
			})

			Convey("Then literal routes win over placeholders", func() {
				So(endpointLabel("units/bulk"), ShouldEqual, "units/bulk")
				So(endpointLabel("courses/categories"), ShouldEqual, "courses/categories")
			})
		})

		Convey("When a path is unknown", func() {
			So(endpointLabel("reports/42/export"), ShouldEqual, "reports/{id}/export")
			So(endpointLabel("users/emp-7/badges/gold"), ShouldEqual, "users/{id}/badges/{id}")
			So(endpointLabel("users/emp-7/badges"), ShouldEqual, "users/{id}/badges")
		})

		Convey("When every known endpoint is called with ids", func() {
			for _, tmpl := range endpointTemplates {
				n := strings.Count(tmpl, "{")
				ids := make([]string, n)
				for i := range ids {
					ids[i] = "id-x" + strconv.Itoa(i)
				}
				path, err := resolvePath(tmpl, ids)
				So(err, ShouldBeNil)
				So(endpointLabel(path), ShouldEqual, tmpl)
			}
		})
	})
}

func TestSuccessful(t *testing.T) {
	Convey("Reads need 200 and writes accept any 2xx", t, func() {
		So(successful(http.MethodGet, 200), ShouldBeTrue)
		So(successful(http.MethodGet, 204), ShouldBeFalse)
		So(successful(http.MethodPut, 204), ShouldBeTrue)
		So(successful(http.MethodPost, 201), ShouldBeTrue)
		So(successful(http.MethodDelete, 200), ShouldBeTrue)
		So(successful(http.MethodDelete, 302), ShouldBeFalse)
		So(successful(http.MethodPost, 400), ShouldBeFalse)
	})
}
