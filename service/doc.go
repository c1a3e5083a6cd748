// Package service runs fixture verifications under a configured numeric
// backend and renders them as JSON-ready Results.
//
// A Runner resolves fixture ids through package fixture, picks the backend
// named in config.Config (float64, bigfloat or decimal), calls
// tridiagonal.System.Verify and, when cross_check is on, compares the
// solution with the float64 reference solvers. Batches fan out over an
// errgroup bounded by config.Config.Workers.
//
// Runs are logged with zap: one entry per run carrying the fixture id, a
// uuid run id, the backend, th1/th2 and the elapsed time.
package service
