package api

import (
	"context"
	"net/http"

	"github.com/agroconnect/agroconnect-cli/internal/client/models"
)

func (c *RESTClient) ListNotifications(ctx context.Context) (*models.NotificationList, error) {
	var l models.NotificationList
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *RESTClient) GetUnreadCount(ctx context.Context) (int, error) {
	var u models.UnreadCount
	if err := c.do(ctx, http.MethodGet, "/notifications/unread-count", nil, &u); err != nil {
		return 0, err
	}
	return u.Count, nil
}

func (c *RESTClient) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/notifications/"+id+"/read", nil, nil)
}

func (c *RESTClient) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/notifications/read-all", nil, nil)
}

func (c *RESTClient) DeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notifications/"+id, nil, nil)
}
