package models

// CartItem is one pending order line, keyed by the offer it was added from.
// PrixUnitaire is an integer amount in FCFA. Quantite must stay within
// [1, StockDisponible]; the cart engine enforces this on every mutation.
type CartItem struct {
	OffreID         string `json:"offre_id"`
	NomProduit      string `json:"nom_produit"`
	PrixUnitaire    int64  `json:"prix_unitaire"`
	Quantite        int    `json:"quantite"`
	VendeurNom      string `json:"vendeur_nom"`
	Image           string `json:"image,omitempty"`
	StockDisponible int    `json:"stock_disponible"`
}
