package cli

import (
	"context"
	"fmt"
)

// Notifications refreshes and prints the notification list. Unread entries
// are marked with an asterisk.
func (a *App) Notifications(ctx context.Context) error {
	a.notifications.Refresh(ctx)

	list := a.notifications.Notifications()
	if len(list) == 0 {
		printlnFn("Aucune notification.")
		return nil
	}

	for _, n := range list {
		marker := " "
		if n.Unread() {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s %s  %s  [%s] %s", marker, n.ID, formatDate(n.DateCreation), n.Type, n.Titre))
	}
	printlnFn(fmt.Sprintf("%d non lue(s)", a.notifications.UnreadCount()))
	return nil
}

// ReadNotification marks one notification as read.
func (a *App) ReadNotification(ctx context.Context, id string) error {
	a.notifications.MarkRead(ctx, id)
	return nil
}

// ReadAllNotifications marks every notification as read.
func (a *App) ReadAllNotifications(ctx context.Context) error {
	a.notifications.MarkAllRead(ctx)
	printlnFn("Toutes les notifications sont lues.")
	return nil
}

// DeleteNotification removes one notification.
func (a *App) DeleteNotification(ctx context.Context, id string) error {
	a.notifications.Delete(ctx, id)
	return nil
}
