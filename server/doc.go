// Package server serves tridiagonal verification runs over HTTP.
//
// Routes:
//
//	POST /tridiagonal/test     {"id": "basic"} -> service.Result
//	GET  /tridiagonal/fixtures -> {"fixtures": [...]}
//	GET  /healthz              -> {"status": "ok"}
//
// Failed runs still answer with a service.Result body; th1/th2 are present
// when the fixture loaded. See StatusFor for the status codes.
package server
