package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/exchange-api/exchange"
	"github.com/bitmark-inc/exchange-api/schema"
)

func (s *Server) listTransactions(c *gin.Context) {
	var params struct {
		Paging
		ItemID string `form:"item_id"`
		Status string `form:"status"`
	}
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	transactions, err := s.exchange.ListTransactions(c.Request.Context(), c.GetString("requester"), exchange.TransactionQuery{
		ItemID: params.ItemID,
		Status: schema.TransactionStatus(params.Status),
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, transactions)
}

func (s *Server) getTransaction(c *gin.Context) {
	transaction, err := s.exchange.GetTransaction(c.Request.Context(), c.GetString("requester"), c.Param("transactionID"))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, transaction)
}

// transactionQRCode renders the verification code as a PNG image
func (s *Server) transactionQRCode(c *gin.Context) {
	var params struct {
		Size int `form:"size"`
	}
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	png, err := s.exchange.GenerateVerificationCode(c.Request.Context(), c.GetString("requester"), c.Param("transactionID"), params.Size)
	if shouldInterupt(err, c) {
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (s *Server) verifyTransaction(c *gin.Context) {
	transaction, err := s.exchange.VerifyTransaction(c.Request.Context(), c.GetString("requester"), c.Param("transactionID"))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, transaction)
}

func (s *Server) rejectTransaction(c *gin.Context) {
	var params struct {
		Message string `json:"reject_message"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	transaction, err := s.exchange.RejectTransaction(c.Request.Context(), c.GetString("requester"), c.Param("transactionID"), params.Message)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, transaction)
}

func (s *Server) rateTransaction(c *gin.Context) {
	var params exchange.RatingInput
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	transaction, err := s.exchange.SubmitRating(c.Request.Context(), c.GetString("requester"), c.Param("transactionID"), params)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, transaction)
}

func (s *Server) reportTransaction(c *gin.Context) {
	var params exchange.ReportInput
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	report, err := s.exchange.SubmitReport(c.Request.Context(), c.GetString("requester"), c.Param("transactionID"), params)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, report)
}
