package models

import "time"

// Notification categories as the backend reports them.
const (
	NotifCommande  = "commande"
	NotifPaiement  = "paiement"
	NotifLivraison = "livraison"
	NotifMessage   = "message"
	NotifSysteme   = "systeme"
	NotifAutre     = "autre"
)

// Notification read states.
const (
	NotifLue    = "lue"
	NotifNonLue = "non lue"
)

// NotificationRef points a notification at the entity it concerns.
type NotificationRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Notification is a server-held user notification. The client keeps a
// read-through cache; the backend owns the data.
type Notification struct {
	ID           string           `json:"_id"`
	Titre        string           `json:"titre"`
	Contenu      string           `json:"contenu"`
	Type         string           `json:"type"`
	DateCreation time.Time        `json:"date_creation"`
	Statut       string           `json:"statut"`
	Reference    *NotificationRef `json:"reference,omitempty"`
}

// Unread reports whether the notification has not been read yet.
func (n Notification) Unread() bool { return n.Statut == NotifNonLue }

// NotificationList is the full-list envelope with the unread counter.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	Unread        int            `json:"unread"`
}

// UnreadCount is the envelope of the unread-count endpoint.
type UnreadCount struct {
	Count int `json:"count"`
}
