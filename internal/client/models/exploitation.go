package models

// Exploitation is a farmer's production site.
type Exploitation struct {
	ID             string   `json:"_id"`
	Nom            string   `json:"nom"`
	Superficie     float64  `json:"superficie"`
	Region         string   `json:"region,omitempty"`
	Adresse        string   `json:"adresse,omitempty"`
	CoordonneesGPS *GPS     `json:"coordonnees_gps,omitempty"`
	TypesCulture   []string `json:"types_culture,omitempty"`
	Photos         []string `json:"photos,omitempty"`
}

// ExploitationInput creates or updates an exploitation.
type ExploitationInput struct {
	Nom            string   `json:"nom"`
	Superficie     float64  `json:"superficie"`
	Region         string   `json:"region,omitempty"`
	Adresse        string   `json:"adresse,omitempty"`
	CoordonneesGPS *GPS     `json:"coordonnees_gps,omitempty"`
	TypesCulture   []string `json:"types_culture,omitempty"`
}

// FarmerStats is the farmer dashboard summary.
type FarmerStats struct {
	TotalProduits    int   `json:"total_produits"`
	TotalOffres      int   `json:"total_offres"`
	CommandesEnCours int   `json:"commandes_en_cours"`
	CommandesLivrees int   `json:"commandes_livrees"`
	RevenusTotal     int64 `json:"revenus_total"`
}
