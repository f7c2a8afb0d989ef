// Package service holds the business rules that sit between the HTTP
// handlers and the repositories.
package service

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID  uint
	IsAdmin bool
}
