// Package cli is the terminal front end of the AgroConnect client. It wires
// the REST client, the local session store, and the application services into
// a read-eval-print loop whose commands mirror the application's views.
//
// Navigation is modeled on the routes package: the App tracks a current
// route, and role-gated commands go through the same gate decision the views
// use. Commands that require a buyer or farmer account print a redirect
// notice instead of executing.
package cli
