package models

import "time"

// Order statuses as the backend reports them.
const (
	OrderEnAttente   = "en_attente"
	OrderConfirmee   = "confirmee"
	OrderEnLivraison = "en_livraison"
	OrderLivree      = "livree"
	OrderAnnulee     = "annulee"
)

// OrderLine is one line of a placed order.
type OrderLine struct {
	OffreID      string `json:"offre_id"`
	NomProduit   string `json:"nom_produit"`
	Quantite     int    `json:"quantite"`
	PrixUnitaire int64  `json:"prix_unitaire"`
}

// Order is a placed order as returned by the backend.
type Order struct {
	ID               string      `json:"_id"`
	Articles         []OrderLine `json:"articles"`
	MontantTotal     int64       `json:"montant_total"`
	Statut           string      `json:"statut"`
	AdresseLivraison string      `json:"adresse_livraison,omitempty"`
	ModePaiement     string      `json:"mode_paiement,omitempty"`
	DateCreation     time.Time   `json:"date_creation"`
}

// OrderInput places a new order from the current cart contents.
type OrderInput struct {
	Articles         []OrderLine `json:"articles"`
	AdresseLivraison string      `json:"adresse_livraison"`
	ModePaiement     string      `json:"mode_paiement"`
}

// OrderPage is the paginated order listing envelope.
type OrderPage struct {
	Commandes []Order `json:"commandes"`
	Page      int     `json:"page"`
	Pages     int     `json:"pages"`
	Total     int     `json:"total"`
}

// Payment methods accepted at checkout.
const (
	PaymentOrangeMoney = "orange_money"
	PaymentWave        = "wave"
	PaymentEspeces     = "especes"
)

// Payment is a payment record attached to an order.
type Payment struct {
	ID         string `json:"_id"`
	CommandeID string `json:"commande_id"`
	Montant    int64  `json:"montant"`
	Methode    string `json:"methode"`
	Statut     string `json:"statut"`
	Reference  string `json:"reference,omitempty"`
}

// PaymentInput creates a payment for an order. Reference is a
// client-generated idempotency key.
type PaymentInput struct {
	CommandeID string `json:"commande_id"`
	Montant    int64  `json:"montant"`
	Methode    string `json:"methode"`
	Telephone  string `json:"telephone,omitempty"`
	Reference  string `json:"reference"`
}
