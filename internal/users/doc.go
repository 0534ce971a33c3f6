// Package users fetches the user record set from the upstream endpoint.
//
// The upstream is called once per load and returns either the full JSON array of
// users or a failure. Failures are reported as *FetchError carrying the HTTP status,
// with 500 standing in for transport and decoding errors that have no status.
package users
