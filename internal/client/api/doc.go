// Package api implements the shared REST client for the AgroConnect backend.
//
// One client instance is shared by the whole application. The bearer token is
// a mutable default header: the session layer attaches it on bootstrap/login
// and clears it on logout, and every authorized request picks up the current
// value. Transport and HTTP failures are mapped onto the sentinel errors in
// internal/common; 4xx/5xx responses carrying a backend message are surfaced
// as *ServerError.
package api
