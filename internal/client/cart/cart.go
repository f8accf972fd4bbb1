// Package cart maintains the buyer's pending line items with stock-bounded
// quantities. It is purely local state: every mutation is applied in memory
// and synchronously re-serialized into the persisted session store, so the
// cart survives restarts and never depends on network connectivity.
//
// All mutations run on the REPL goroutine; the cart has a single writer and
// needs no locking.
package cart

import (
	"context"
	"encoding/json"

	repo "github.com/agroconnect/agroconnect-cli/internal/client/repositories/session"

	"github.com/agroconnect/agroconnect-cli/internal/client/models"
	"github.com/agroconnect/agroconnect-cli/internal/client/notify"
	"github.com/agroconnect/agroconnect-cli/internal/logging"
)

// User-facing notices, matching the backend's language.
const (
	noticeMaxStock    = "Quantité maximale disponible atteinte"
	noticeQtyUpdated  = "Quantité mise à jour dans le panier"
	noticeItemAdded   = "Produit ajouté au panier"
	noticeItemRemoved = "Produit retiré du panier"
)

// Cart owns the in-progress order lines. Items keep insertion order; there is
// at most one item per offer id, and every item satisfies
// 1 <= Quantite <= StockDisponible after any mutation.
type Cart struct {
	items    []models.CartItem
	store    repo.Store
	notifier notify.Notifier
	log      logging.Logger
}

func New(store repo.Store, notifier notify.Notifier, log logging.Logger) *Cart {
	return &Cart{store: store, notifier: notifier, log: log}
}

// Load rehydrates the cart from the persisted store. An absent value yields
// an empty cart; a corrupted value is logged and also yields an empty cart —
// never a startup error.
func (c *Cart) Load(ctx context.Context) {
	c.items = nil

	raw, err := c.store.Get(ctx, repo.KeyCart)
	if err != nil {
		c.log.Error(ctx, "failed to read persisted cart", "error", err)
		return
	}
	if len(raw) == 0 {
		return
	}

	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Error(ctx, "failed to parse persisted cart, starting empty", "error", err)
		return
	}
	c.items = items
}

// AddItem appends item, or merges quantities when the offer is already in the
// cart. An add whose resulting quantity would exceed the offer's available
// stock, fresh or merged, is rejected as a whole: the cart is left unchanged
// and a rejection notice is emitted.
func (c *Cart) AddItem(ctx context.Context, item models.CartItem) {
	for i := range c.items {
		if c.items[i].OffreID != item.OffreID {
			continue
		}

		newQty := c.items[i].Quantite + item.Quantite
		if newQty > item.StockDisponible {
			c.notifier.Error(noticeMaxStock)
			return
		}

		c.items[i].Quantite = newQty
		c.notifier.Success(noticeQtyUpdated)
		c.persist(ctx)
		return
	}

	if item.Quantite > item.StockDisponible {
		c.notifier.Error(noticeMaxStock)
		return
	}
	c.items = append(c.items, item)
	c.notifier.Success(noticeItemAdded)
	c.persist(ctx)
}

// RemoveItem drops the matching entry. Removing an offer that is not in the
// cart is a silent no-op.
func (c *Cart) RemoveItem(ctx context.Context, offreID string) {
	kept := c.items[:0]
	for _, it := range c.items {
		if it.OffreID != offreID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(c.items) {
		return
	}
	c.items = kept
	c.notifier.Success(noticeItemRemoved)
	c.persist(ctx)
}

// UpdateQuantity sets the matching entry's quantity. A quantity above the
// entry's stock ceiling is rejected, leaving the entry unchanged. Callers are
// responsible for clamping requests below 1 before calling.
func (c *Cart) UpdateQuantity(ctx context.Context, offreID string, quantite int) {
	for i := range c.items {
		if c.items[i].OffreID != offreID {
			continue
		}
		if quantite > c.items[i].StockDisponible {
			c.notifier.Error(noticeMaxStock)
			return
		}
		c.items[i].Quantite = quantite
		c.persist(ctx)
		return
	}
}

// Clear empties the cart unconditionally, without a notice. Used after a
// successful order placement.
func (c *Cart) Clear(ctx context.Context) {
	c.items = nil
	c.persist(ctx)
}

// Items returns a copy of the line items in display order.
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems is the sum of quantities, recomputed on every call.
func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.items {
		total += it.Quantite
	}
	return total
}

// TotalPrice is the order amount in FCFA, recomputed on every call.
func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, it := range c.items {
		total += it.PrixUnitaire * int64(it.Quantite)
	}
	return total
}

// persist re-serializes the full item collection. A storage failure keeps the
// in-memory state authoritative and is only logged.
func (c *Cart) persist(ctx context.Context) {
	raw, err := json.Marshal(c.Items())
	if err != nil {
		c.log.Error(ctx, "failed to serialize cart", "error", err)
		return
	}
	if err := c.store.Set(ctx, repo.KeyCart, raw); err != nil {
		c.log.Error(ctx, "failed to persist cart", "error", err)
	}
}
