package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/exchange-api/exchange"
	"github.com/bitmark-inc/exchange-api/schema"
	"github.com/bitmark-inc/exchange-api/store"
)

// Paging is the limit and offset of a listing
type Paging struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (s *Server) createItem(c *gin.Context) {
	var params exchange.CreateItemInput
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	item, err := s.exchange.CreateItem(c.Request.Context(), c.GetString("requester"), params)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, item)
}

// listItems lists the approved items, or the items of the caller with `mine=true`
func (s *Server) listItems(c *gin.Context) {
	var params struct {
		Paging
		Mine     bool   `form:"mine"`
		Category string `form:"category"`
		Status   string `form:"status"`
	}
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	filter := store.ItemFilter{
		Category: params.Category,
		Status:   schema.ItemStatus(params.Status),
		Limit:    params.Limit,
		Offset:   params.Offset,
	}
	if params.Mine {
		filter.OwnerID = c.GetString("requester")
	}

	items, err := s.exchange.ListItems(c.Request.Context(), filter)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, items)
}

func (s *Server) getItem(c *gin.Context) {
	item, err := s.exchange.GetItem(c.Request.Context(), c.Param("itemID"))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, item)
}

// moderateItem is the moderator decision on a pending item
func (s *Server) moderateItem(c *gin.Context) {
	var params struct {
		Approve *bool `json:"approve"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if params.Approve == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	item, err := s.exchange.ModerateItem(c.Request.Context(), c.GetString("requester"), c.Param("itemID"), *params.Approve)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, item)
}
