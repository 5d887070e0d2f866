package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"invtrack/internal/apierror"
	"invtrack/internal/dto"
	"invtrack/internal/service"
)

type TransactionsHandler struct{ svc service.TransactionService }

func NewTransactionsHandler(svc service.TransactionService) *TransactionsHandler {
	return &TransactionsHandler{svc: svc}
}

func (h *TransactionsHandler) List(c *gin.Context) {
	txns, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, txns)
}

func (h *TransactionsHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	txn, err := h.svc.Post(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, txn)
}

func (h *TransactionsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	txn, err := h.svc.Delete(c.Request.Context(), id)
	if errors.Is(err, service.ErrTransactionNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Transaction not found"))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	// The deleted record is echoed back; the item quantity it moved stays put.
	c.JSON(http.StatusOK, txn)
}
