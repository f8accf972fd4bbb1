package services

import (
	"context"
	"sync"
	"time"

	"github.com/agroconnect/agroconnect-cli/internal/client/api"
	"github.com/agroconnect/agroconnect-cli/internal/client/models"
	"github.com/agroconnect/agroconnect-cli/internal/logging"
)

// NotificationCache is an eventual-consistency read cache over the backend's
// notifications, scoped to the authenticated session.
//
// It implements AuthWatcher: when authentication becomes true it fetches the
// full list once and starts a fixed-period refresh of the unread count only;
// when authentication becomes false the poller is cancelled immediately and
// the cache cleared. The poller is owned by auth transitions, never by any
// UI lifecycle.
//
// Mark/Delete mutations are optimistic: local state is updated first and is
// the source of truth for rendering; the remote call's failure is logged,
// never rolled back.
type NotificationCache struct {
	api      api.Client
	interval time.Duration
	log      logging.Logger

	mu            sync.Mutex
	notifications []models.Notification
	unread        int
	loading       bool
	cancel        context.CancelFunc
}

func NewNotificationCache(client api.Client, interval time.Duration, log logging.Logger) *NotificationCache {
	return &NotificationCache{api: client, interval: interval, log: log}
}

// AuthChanged starts or stops the unread poller on session transitions.
func (n *NotificationCache) AuthChanged(authenticated bool) {
	if authenticated {
		n.start()
	} else {
		n.stop()
	}
}

func (n *NotificationCache) start() {
	n.mu.Lock()
	if n.cancel != nil {
		n.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	n.cancel = cancel
	n.mu.Unlock()

	go n.run(ctx)
}

func (n *NotificationCache) stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.notifications = nil
	n.unread = 0
}

func (n *NotificationCache) run(ctx context.Context) {
	n.Refresh(ctx)

	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n.refreshUnread(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Refresh fetches the full notification list plus the unread counter.
func (n *NotificationCache) Refresh(ctx context.Context) {
	n.setLoading(true)
	defer n.setLoading(false)

	list, err := n.api.ListNotifications(ctx)
	if err != nil {
		n.log.Error(ctx, "failed to fetch notifications", "error", err)
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = list.Notifications
	n.unread = list.Unread
}

// refreshUnread updates only the unread counter; the list is refreshed on
// demand.
func (n *NotificationCache) refreshUnread(ctx context.Context) {
	count, err := n.api.GetUnreadCount(ctx)
	if err != nil {
		n.log.Error(ctx, "failed to fetch unread count", "error", err)
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.unread = count
}

// MarkRead flips one entry to read locally and fires the authorized request;
// a remote failure is logged, not surfaced, and the local state stands.
func (n *NotificationCache) MarkRead(ctx context.Context, id string) {
	n.mu.Lock()
	for i := range n.notifications {
		if n.notifications[i].ID == id && n.notifications[i].Unread() {
			n.notifications[i].Statut = models.NotifLue
			if n.unread > 0 {
				n.unread--
			}
			break
		}
	}
	n.mu.Unlock()

	if err := n.api.MarkNotificationRead(ctx, id); err != nil {
		n.log.Error(ctx, "failed to mark notification read", "id", id, "error", err)
	}
}

// MarkAllRead sets every entry read and zeroes the counter, optimistically.
func (n *NotificationCache) MarkAllRead(ctx context.Context) {
	n.mu.Lock()
	for i := range n.notifications {
		n.notifications[i].Statut = models.NotifLue
	}
	n.unread = 0
	n.mu.Unlock()

	if err := n.api.MarkAllNotificationsRead(ctx); err != nil {
		n.log.Error(ctx, "failed to mark all notifications read", "error", err)
	}
}

// Delete removes an entry locally, decrementing the unread counter only when
// the removed entry was unread.
func (n *NotificationCache) Delete(ctx context.Context, id string) {
	n.mu.Lock()
	kept := n.notifications[:0]
	for _, notif := range n.notifications {
		if notif.ID == id {
			if notif.Unread() && n.unread > 0 {
				n.unread--
			}
			continue
		}
		kept = append(kept, notif)
	}
	n.notifications = kept
	n.mu.Unlock()

	if err := n.api.DeleteNotification(ctx, id); err != nil {
		n.log.Error(ctx, "failed to delete notification", "id", id, "error", err)
	}
}

// Notifications returns a copy of the cached list.
func (n *NotificationCache) Notifications() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]models.Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}

// UnreadCount returns the cached unread counter.
func (n *NotificationCache) UnreadCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.unread
}

// PollerActive reports whether the background refresh is running.
func (n *NotificationCache) PollerActive() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cancel != nil
}

// IsLoading reports whether a full refresh is in flight.
func (n *NotificationCache) IsLoading() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.loading
}

func (n *NotificationCache) setLoading(v bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.loading = v
}
