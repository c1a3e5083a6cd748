// Package cmd implements the tridiag command tree:
//
//	tridiag solve <id|file>   th1, th2, solution, residual as JSON
//	tridiag check <id|file>   th1, th2 only
//	tridiag batch [ids...]    parallel solve, JSON array
//	tridiag fixtures          fixture ids
//	tridiag serve             HTTP server (see package server)
//
// Flags override TRIDIAG_* environment variables, which override the
// --config file.
package cmd
