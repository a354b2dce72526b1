package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/exchange-api/store"
)

// listNotifications serves the durable notification list, newest first.
// Clients page backwards with `before` and reconcile with `since`.
func (s *Server) listNotifications(c *gin.Context) {
	var params struct {
		Since      string `form:"since"`
		Before     string `form:"before"`
		Limit      int64  `form:"limit"`
		UnreadOnly bool   `form:"unread"`
	}
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	q := store.NotificationQuery{
		Limit:      params.Limit,
		UnreadOnly: params.UnreadOnly,
	}
	var err error
	if q.Since, err = parseOptionalTime(params.Since); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if q.Before, err = parseOptionalTime(params.Before); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	requester := c.GetString("requester")
	notifications, err := s.mongo.ListNotifications(c.Request.Context(), requester, q)
	if shouldInterupt(err, c) {
		return
	}

	unread, err := s.mongo.CountUnreadNotifications(c.Request.Context(), requester)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

func (s *Server) markNotificationRead(c *gin.Context) {
	err := s.mongo.MarkNotificationRead(c.Request.Context(), c.GetString("requester"), c.Param("notificationID"), s.clock.Now())
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, nil)
}

func (s *Server) markAllNotificationsRead(c *gin.Context) {
	count, err := s.mongo.MarkAllNotificationsRead(c.Request.Context(), c.GetString("requester"), s.clock.Now())
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, gin.H{"updated": count})
}

// notificationStream upgrades to a websocket carrying the caller's notifications
func (s *Server) notificationStream(c *gin.Context) {
	since, err := parseOptionalTime(c.Query("since"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.hub.Serve(c.Writer, c.Request, c.GetString("requester"), since); err != nil {
		c.Error(err)
	}
}

func parseOptionalTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, value)
}
