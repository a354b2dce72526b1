package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/exchange-api/exchange"
	"github.com/bitmark-inc/exchange-api/schema"
)

func (s *Server) createRequest(c *gin.Context) {
	var params exchange.CreateRequestInput
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.exchange.CreateRequest(c.Request.Context(), c.GetString("requester"), params)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, request)
}

// listRequests lists the requests sent by the caller, or received with `role=charitarian`
func (s *Server) listRequests(c *gin.Context) {
	var params struct {
		Paging
		Role   string `form:"role"`
		ItemID string `form:"item_id"`
		Status string `form:"status"`
	}
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	requests, err := s.exchange.ListRequests(c.Request.Context(), c.GetString("requester"), exchange.RequestQuery{
		Role:   exchange.RequestRole(params.Role),
		ItemID: params.ItemID,
		Status: schema.RequestStatus(params.Status),
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, requests)
}

func (s *Server) getRequest(c *gin.Context) {
	request, err := s.exchange.GetRequest(c.Request.Context(), c.GetString("requester"), c.Param("requestID"))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, request)
}

// approveRequest accepts a request at one of its proposed times. Losing the
// race against another approval on the same item is reported as already handled.
func (s *Server) approveRequest(c *gin.Context) {
	var params struct {
		AppointmentDate time.Time `json:"appointment_date"`
		Message         string    `json:"approve_message"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	transaction, err := s.exchange.ApproveRequest(c.Request.Context(), c.GetString("requester"),
		c.Param("requestID"), params.AppointmentDate, params.Message)
	if err != nil {
		if errors.Is(err, schema.ErrInvalidState) {
			abortWithEncoding(c, http.StatusConflict, errorAlreadyHandled, err)
			return
		}
		abortWithError(c, err)
		return
	}

	responseOK(c, transaction)
}

func (s *Server) rejectRequest(c *gin.Context) {
	var params struct {
		Message string `json:"reject_message"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.exchange.RejectRequest(c.Request.Context(), c.GetString("requester"), c.Param("requestID"), params.Message)
	if err != nil {
		if errors.Is(err, schema.ErrInvalidState) {
			abortWithEncoding(c, http.StatusConflict, errorAlreadyHandled, err)
			return
		}
		abortWithError(c, err)
		return
	}

	responseOK(c, request)
}
