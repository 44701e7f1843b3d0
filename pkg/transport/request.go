package transport

import (
	"net/url"
)

type request struct {
	query       url.Values
	body        []byte
	contentType string
}

type RequestOption func(*request) error

// WithQuery appends query parameters to the request URL.
func WithQuery(query url.Values) RequestOption {
	return func(r *request) error {
		r.query = query
		return nil
	}
}

// WithJSON sends v as a JSON body.
func WithJSON(v any) RequestOption {
	return func(r *request) error {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}

		r.body = b
		r.contentType = "application/json"

		return nil
	}
}

// WithForm sends the values as a form-encoded body.
func WithForm(form url.Values) RequestOption {
	return func(r *request) error {
		r.body = []byte(form.Encode())
		r.contentType = "application/x-www-form-urlencoded"

		return nil
	}
}
