// Package models defines client-side data models exchanged with the
// AgroConnect backend. JSON tags follow the backend's wire format, which
// uses French field names.
package models

// Role classifies an account. The set is closed; only RoleAgriculteur and
// RoleAcheteur may be chosen at registration time.
type Role string

const (
	RoleAgriculteur     Role = "agriculteur"
	RoleAcheteur        Role = "acheteur"
	RoleVendeurMateriel Role = "vendeur_materiel"
	RoleTransformateur  Role = "transformateur"
	RoleLivreur         Role = "livreur"
	RoleAdministrateur  Role = "administrateur"
)

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAgriculteur, RoleAcheteur, RoleVendeurMateriel,
		RoleTransformateur, RoleLivreur, RoleAdministrateur:
		return true
	}
	return false
}

// GPS holds geographic coordinates.
type GPS struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Localisation describes where a user or exploitation is located.
type Localisation struct {
	Region         string `json:"region,omitempty"`
	Adresse        string `json:"adresse,omitempty"`
	CoordonneesGPS *GPS   `json:"coordonnees_gps,omitempty"`
}

// User is the backend's account representation. The phone number is the
// primary credential; email is optional.
type User struct {
	ID                 string        `json:"_id"`
	Prenom             string        `json:"prenom"`
	Nom                string        `json:"nom"`
	Telephone          string        `json:"telephone"`
	Email              string        `json:"email,omitempty"`
	TypeUtilisateur    Role          `json:"type_utilisateur"`
	PhotoProfil        string        `json:"photo_profil,omitempty"`
	Localisation       *Localisation `json:"localisation,omitempty"`
	StatutVerification string        `json:"statut_verification,omitempty"`
}

// AuthResponse is the login/register payload: the user profile inline plus
// the bearer token. A missing token is a contract violation.
type AuthResponse struct {
	User
	Token string `json:"token"`
}

// RegisterRequest creates a new account. TypeUtilisateur is restricted to
// agriculteur or acheteur at registration.
type RegisterRequest struct {
	Prenom          string `json:"prenom"`
	Nom             string `json:"nom"`
	Telephone       string `json:"telephone"`
	Email           string `json:"email,omitempty"`
	MotDePasse      string `json:"mot_de_passe"`
	TypeUtilisateur Role   `json:"type_utilisateur"`
}

// ProfileUpdate carries the fields a user may change. Zero-valued fields are
// omitted from the request; the server's response is authoritative for the
// resulting profile.
type ProfileUpdate struct {
	Prenom       string        `json:"prenom,omitempty"`
	Nom          string        `json:"nom,omitempty"`
	Email        string        `json:"email,omitempty"`
	PhotoProfil  string        `json:"photo_profil,omitempty"`
	Localisation *Localisation `json:"localisation,omitempty"`
}
