// Package schoox is a client for the Schoox LMS REST API.
//
// Every call is a single HTTP request. The academy id and api key are added
// to the query string of each request, and the JSON body is returned
// undecoded in Response.Body.
//
//	client, err := schoox.New(schoox.Credentials{AcadID: "123", APIKey: key},
//		schoox.WithEnvironment(schoox.Staging))
//	if err != nil {
//		return err
//	}
//	resp, err := client.Courses.Students(ctx, "42", &schoox.StudentOptions{Limit: 100})
//	if err != nil {
//		return err
//	}
//	var students []map[string]any
//	err = resp.Decode(&students)
//
// Non-success statuses come back as *APIError, which matches
// ErrUnexpectedStatus with errors.Is.
package schoox
