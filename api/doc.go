// Package api is a thin HTTP client for the Västtrafik web API.
//
// It knows the two endpoints this program uses: the full stop-area
// list and the per-stop departure board. Responses are returned as raw
// bytes; decoding is left to the callers.
package api
