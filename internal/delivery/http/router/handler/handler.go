// Package handler contains the HTTP handlers for the application. Handlers
// bind and validate the request, call a usecase and render the wire payload;
// business errors flow back to the error middleware untouched.
package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// bindBody decodes the JSON body into req. A malformed or missing body is not
// an error here: the request structs use pointer fields, so whatever failed to
// bind stays nil and the field validation reports it.
func bindBody(c echo.Context, req any) {
	_ = c.Bind(req)
}

// pathID parses an already-validated integer path parameter.
func pathID(c echo.Context, name string) int64 {
	id, _ := strconv.ParseInt(c.Param(name), 10, 64)

	return id
}

// queryInt64 returns the already-validated integer query parameter, or nil
// when it was absent.
func queryInt64(c echo.Context, name string) *int64 {
	s := c.QueryParam(name)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}

	return &n
}

// queryFloat64 returns the already-validated numeric query parameter, or nil
// when it was absent.
func queryFloat64(c echo.Context, name string) *float64 {
	s := c.QueryParam(name)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	return &n
}

// queryInt returns the already-validated integer query parameter, or nil when
// it was absent.
func queryInt(c echo.Context, name string) *int {
	s := c.QueryParam(name)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}

	return &n
}
