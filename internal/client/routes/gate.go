package routes

import "github.com/agroconnect/agroconnect-cli/internal/client/models"

// SessionState is the slice of session state the gate depends on. The gate
// must be re-evaluated whenever any of these change.
type SessionState struct {
	IsLoading       bool
	IsAuthenticated bool
	Role            models.Role
}

// Outcome is the gate's decision for one navigation evaluation.
type Outcome int

const (
	// OutcomeLoading blocks rendering behind a loading view; no redirect.
	OutcomeLoading Outcome = iota
	// OutcomeRedirectLogin sends the user to /login, replacing history.
	OutcomeRedirectLogin
	// OutcomeRedirectNotFound hides the route's existence on role mismatch.
	OutcomeRedirectNotFound
	// OutcomeAllow renders the requested view.
	OutcomeAllow
)

// Evaluate decides whether a protected view may render. requiredRole is empty
// when any authenticated user is allowed.
//
// While the session is still loading the only correct answer is to wait:
// redirecting or rendering now would flash the wrong view once bootstrap
// finishes.
func Evaluate(s SessionState, requiredRole models.Role) Outcome {
	if s.IsLoading {
		return OutcomeLoading
	}
	if !s.IsAuthenticated {
		return OutcomeRedirectLogin
	}
	if requiredRole != "" && s.Role != requiredRole {
		return OutcomeRedirectNotFound
	}
	return OutcomeAllow
}

// EvaluatePath resolves path against the route table and gates it. Public
// routes are always allowed.
func EvaluatePath(s SessionState, path string) (Spec, Outcome) {
	spec := Resolve(path)
	if spec.Public {
		return spec, OutcomeAllow
	}
	return spec, Evaluate(s, spec.Role)
}
