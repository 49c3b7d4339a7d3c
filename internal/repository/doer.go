package repository

import "net/http"

// Doer is the part of *http.Client the service clients depend on.
// Tests substitute an httptest server client or a stub.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Compile-time check that *http.Client implements Doer.
var _ Doer = (*http.Client)(nil)
