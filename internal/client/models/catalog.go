package models

// Product is a catalog entry created by a farmer. Offers reference products
// and carry the actual price/stock.
type Product struct {
	ID          string `json:"_id"`
	Nom         string `json:"nom"`
	Categorie   string `json:"categorie"`
	Description string `json:"description,omitempty"`
	Unite       string `json:"unite,omitempty"`
	Image       string `json:"image,omitempty"`
}

// ProductInput creates or updates a product.
type ProductInput struct {
	Nom         string `json:"nom"`
	Categorie   string `json:"categorie"`
	Description string `json:"description,omitempty"`
	Unite       string `json:"unite,omitempty"`
	Image       string `json:"image,omitempty"`
}

// ProductPage is the paginated product listing envelope.
type ProductPage struct {
	Produits []Product `json:"produits"`
	Page     int       `json:"page"`
	Pages    int       `json:"pages"`
	Total    int       `json:"total"`
}

// Vendeur identifies the seller on an offer.
type Vendeur struct {
	ID     string `json:"_id"`
	Prenom string `json:"prenom"`
	Nom    string `json:"nom"`
}

// Offer is a seller's listing of a product at a given price and stock. It is
// the unit addressable by the cart.
type Offer struct {
	ID              string  `json:"_id"`
	Produit         Product `json:"produit"`
	PrixUnitaire    int64   `json:"prix_unitaire"`
	StockDisponible int     `json:"stock_disponible"`
	Unite           string  `json:"unite,omitempty"`
	Vendeur         Vendeur `json:"vendeur"`
	Statut          string  `json:"statut,omitempty"`
	Image           string  `json:"image,omitempty"`
}

// OfferInput creates or updates an offer.
type OfferInput struct {
	ProduitID       string `json:"produit_id"`
	PrixUnitaire    int64  `json:"prix_unitaire"`
	StockDisponible int    `json:"stock_disponible"`
	Unite           string `json:"unite,omitempty"`
	Statut          string `json:"statut,omitempty"`
}

// OfferPage is the paginated offer listing envelope.
type OfferPage struct {
	Offres []Offer `json:"offres"`
	Page   int     `json:"page"`
	Pages  int     `json:"pages"`
	Total  int     `json:"total"`
}

// VendeurNom renders the seller's display name.
func (o Offer) VendeurNom() string {
	if o.Vendeur.Prenom == "" {
		return o.Vendeur.Nom
	}
	return o.Vendeur.Prenom + " " + o.Vendeur.Nom
}
