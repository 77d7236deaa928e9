package schoox

import (
	"fmt"
	"net/url"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// Bool returns a pointer to v, for optional flags such as ExternalID.
func Bool(v bool) *bool { return &v }

// EncodeParams turns endpoint options into query values.
//
// opts may be nil, url.Values, a map keyed by parameter name or a struct
// whose fields carry `mapstructure:"name,omitempty"` tags. Zero values and
// nil pointers are dropped. Slices are sent as repeated name[] entries.
func EncodeParams(opts any) (url.Values, error) {
	values := url.Values{}
	if opts == nil {
		return values, nil
	}
	rv := reflect.ValueOf(opts)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return values, nil
	}

	switch o := opts.(type) {
	case url.Values:
		for k, vs := range o {
			values[k] = append([]string(nil), vs...)
		}
		return values, nil
	case map[string]string:
		for k, v := range o {
			values.Set(k, v)
		}
		return values, nil
	}

	fields := map[string]any{}
	if err := mapstructure.Decode(opts, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeParams, err)
	}
	for key, raw := range fields {
		if err := addParam(values, key, raw); err != nil {
			return nil, err
		}
	}
	return values, nil
}

func addParam(values url.Values, key string, raw any) error {
	rv := reflect.ValueOf(raw)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			s, err := cast.ToStringE(rv.Index(i).Interface())
			if err != nil {
				return fmt.Errorf("%w: %s[%d]: %w", ErrEncodeParams, key, i, err)
			}
			values.Add(key+"[]", s)
		}
		return nil
	}

	s, err := cast.ToStringE(rv.Interface())
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncodeParams, key, err)
	}
	values.Add(key, s)
	return nil
}

// withParam encodes opts and sets key when value is not empty. Endpoints
// that take a positional argument such as role use it.
func withParam(opts any, key, value string) (url.Values, error) {
	q, err := EncodeParams(opts)
	if err != nil {
		return nil, err
	}
	if value != "" {
		q.Set(key, value)
	}
	return q, nil
}

// PageOptions pages through list endpoints.
type PageOptions struct {
	Start int `mapstructure:"start,omitempty"`
	Limit int `mapstructure:"limit,omitempty"`
}

// SearchOptions pages through list endpoints that accept a search term.
type SearchOptions struct {
	Search string `mapstructure:"search,omitempty"`
	Start  int    `mapstructure:"start,omitempty"`
	Limit  int    `mapstructure:"limit,omitempty"`
}

// ExternalIDOptions marks a user id argument as the academy's external id.
type ExternalIDOptions struct {
	ExternalID *bool `mapstructure:"external_id,omitempty"`
}
