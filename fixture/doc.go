// Package fixture resolves fixture ids to tridiagonal system files.
//
// A fixture id is a bare name such as "basic"; it maps to "<dir>/basic.txt".
// Ids are restricted to letters, digits, '_' and '-', so a request can never
// escape the fixture directory.
package fixture
