// Package bankdelivery manages delivery layer of the bank: accounts, their
// ledgers and the bank-wide interest rate.
package bankdelivery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/private-bank/internal/codec"
	"github.com/go-petr/private-bank/internal/domain"
	"github.com/go-petr/private-bank/internal/report"
	"github.com/go-petr/private-bank/pkg/errorspkg"
	"github.com/go-petr/private-bank/pkg/web"
)

// Service provides service layer interface needed by bank delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package bankdelivery
type Service interface {
	Name() string
	InterestRate() domain.InterestRate
	SetInterestRate(ctx context.Context, incoming, outgoing decimal.Decimal) (domain.InterestRate, error)
	Accounts(ctx context.Context) []string
	HasAccount(ctx context.Context, name string) bool
	CreateAccountWith(ctx context.Context, name string, txs []domain.Transaction) error
	DeleteAccount(ctx context.Context, name string) error
	AddTransaction(ctx context.Context, name string, t domain.Transaction) error
	RemoveTransaction(ctx context.Context, name string, t domain.Transaction) error
	AccountBalance(ctx context.Context, name string) decimal.Decimal
	Transactions(ctx context.Context, name string) []domain.Transaction
	Statement(ctx context.Context, name string) ([]domain.Transaction, decimal.Decimal)
	TransactionsSorted(ctx context.Context, name string, asc bool) []domain.Transaction
	TransactionsByType(ctx context.Context, name string, positive bool) []domain.Transaction
}

// Handler facilitates bank delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns bank handler.
func NewHandler(bs Service) Handler {
	return Handler{service: bs}
}

// Transaction is the response form of a transaction: its envelope plus the
// contribution it makes to the balance.
type Transaction struct {
	Kind         domain.Kind     `json:"kind"`
	Fields       json.RawMessage `json:"fields"`
	Contribution decimal.Decimal `json:"contribution"`
}

func view(t domain.Transaction) (Transaction, error) {
	e, err := codec.Wrap(t)
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{Kind: e.Kind, Fields: e.Fields, Contribution: t.Contribution()}, nil
}

func views(txs []domain.Transaction) ([]Transaction, error) {
	out := make([]Transaction, 0, len(txs))

	for _, t := range txs {
		v, err := view(t)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

// envelope is the request form of a transaction.
type envelope struct {
	Kind   string          `json:"kind" binding:"required"`
	Fields json.RawMessage `json:"fields" binding:"required"`
}

func (e envelope) transaction() (domain.Transaction, error) {
	return codec.Unwrap(codec.Envelope{Kind: domain.Kind(e.Kind), Fields: e.Fields})
}

// bindError answers 400 with the first failed validation, if any.
func bindError(gctx *gin.Context, err error) {
	errMsg := err.Error()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		errMsg = field.Field() + web.GetErrorMsg(field)
	}

	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
	gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})
}

// serviceError maps a service error to its status code.
func serviceError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidTransaction),
		errors.Is(err, domain.ErrDuplicateTransaction),
		errors.Is(err, domain.ErrUnknownVariant),
		errors.Is(err, domain.ErrInvalidRate):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrAccountExists):
		gctx.JSON(http.StatusConflict, web.Error(err))
	default:
		zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type accountURI struct {
	Name string `uri:"name" binding:"required,accountname"`
}

// bindAccount binds the account uri and, when mustExist is set, answers 404
// for an unknown account.
func (h *Handler) bindAccount(gctx *gin.Context, mustExist bool) (string, bool) {
	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return "", false
	}

	if mustExist && !h.service.HasAccount(gctx.Request.Context(), uri.Name) {
		gctx.JSON(http.StatusNotFound, web.Error(domain.ErrAccountNotFound))
		return "", false
	}

	return uri.Name, true
}

type bankData struct {
	Name             string          `json:"name"`
	IncomingInterest decimal.Decimal `json:"incomingInterest"`
	OutgoingInterest decimal.Decimal `json:"outgoingInterest"`
}

func (h *Handler) bank(rate domain.InterestRate) web.Response {
	return web.Response{Data: bankData{
		Name:             h.service.Name(),
		IncomingInterest: rate.Incoming(),
		OutgoingInterest: rate.Outgoing(),
	}}
}

// GetBank handles http request to get the bank name and interest rate.
func (h *Handler) GetBank(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, h.bank(h.service.InterestRate()))
}

type interestRequest struct {
	Incoming *decimal.Decimal `json:"incoming" binding:"required"`
	Outgoing *decimal.Decimal `json:"outgoing" binding:"required"`
}

// SetInterest handles http request to replace the bank-wide interest rate.
func (h *Handler) SetInterest(gctx *gin.Context) {
	var req interestRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	rate, err := h.service.SetInterestRate(gctx.Request.Context(), *req.Incoming, *req.Outgoing)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, h.bank(rate))
}

type accountsData struct {
	Accounts []string `json:"accounts"`
}

// ListAccounts handles http request to list account names.
func (h *Handler) ListAccounts(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, web.Response{Data: accountsData{h.service.Accounts(gctx.Request.Context())}})
}

type createRequest struct {
	Name         string     `json:"name" binding:"required,accountname"`
	Transactions []envelope `json:"transactions" binding:"dive"`
}

type balanceData struct {
	Account string          `json:"account"`
	Balance decimal.Decimal `json:"balance"`
}

// CreateAccount handles http request to create an account with optional
// initial transactions.
func (h *Handler) CreateAccount(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	txs := make([]domain.Transaction, 0, len(req.Transactions))

	for i, e := range req.Transactions {
		t, err := e.transaction()
		if err != nil {
			zerolog.Ctx(ctx).Info().Err(err).Send()
			gctx.JSON(http.StatusBadRequest, web.Error(fmt.Errorf("transaction %d: %w", i, err)))

			return
		}

		txs = append(txs, t)
	}

	if err := h.service.CreateAccountWith(ctx, req.Name, txs); err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: balanceData{
		Account: req.Name,
		Balance: h.service.AccountBalance(ctx, req.Name),
	}})
}

// DeleteAccount handles http request to delete an account.
func (h *Handler) DeleteAccount(gctx *gin.Context) {
	name, ok := h.bindAccount(gctx, false)
	if !ok {
		return
	}

	if err := h.service.DeleteAccount(gctx.Request.Context(), name); err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountsData{[]string{name}}})
}

// GetBalance handles http request to get the account balance.
func (h *Handler) GetBalance(gctx *gin.Context) {
	name, ok := h.bindAccount(gctx, true)
	if !ok {
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: balanceData{
		Account: name,
		Balance: h.service.AccountBalance(gctx.Request.Context(), name),
	}})
}

type listRequest struct {
	Order string `form:"order" binding:"omitempty,oneof=asc desc"`
	Type  string `form:"type" binding:"omitempty,oneof=positive negative"`
}

type transactionsData struct {
	Account      string        `json:"account"`
	Transactions []Transaction `json:"transactions"`
}

var errOrderWithType = errors.New("order and type cannot be combined")

// ListTransactions handles http request to list account transactions in
// insertion order, sorted by contribution, or filtered by sign.
func (h *Handler) ListTransactions(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	name, ok := h.bindAccount(gctx, true)
	if !ok {
		return
	}

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		bindError(gctx, err)
		return
	}

	var txs []domain.Transaction

	switch {
	case req.Order != "" && req.Type != "":
		gctx.JSON(http.StatusBadRequest, web.Error(errOrderWithType))
		return
	case req.Order != "":
		txs = h.service.TransactionsSorted(ctx, name, req.Order == "asc")
	case req.Type != "":
		txs = h.service.TransactionsByType(ctx, name, req.Type == "positive")
	default:
		txs = h.service.Transactions(ctx, name)
	}

	out, err := views(txs)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: transactionsData{Account: name, Transactions: out}})
}

// bindTransaction binds the account uri and the envelope body.
func (h *Handler) bindTransaction(gctx *gin.Context) (string, domain.Transaction, bool) {
	name, ok := h.bindAccount(gctx, false)
	if !ok {
		return "", nil, false
	}

	var req envelope
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return "", nil, false
	}

	t, err := req.transaction()
	if err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
		serviceError(gctx, err)

		return "", nil, false
	}

	return name, t, true
}

// AddTransaction handles http request to add a transaction to the account.
func (h *Handler) AddTransaction(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	name, t, ok := h.bindTransaction(gctx)
	if !ok {
		return
	}

	if err := h.service.AddTransaction(ctx, name, t); err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: balanceData{
		Account: name,
		Balance: h.service.AccountBalance(ctx, name),
	}})
}

// RemoveTransaction handles http request to remove a transaction from the account.
func (h *Handler) RemoveTransaction(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	name, t, ok := h.bindTransaction(gctx)
	if !ok {
		return
	}

	if err := h.service.RemoveTransaction(ctx, name, t); err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: balanceData{
		Account: name,
		Balance: h.service.AccountBalance(ctx, name),
	}})
}

// Statement handles http request to download the account statement as XLSX.
func (h *Handler) Statement(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	name, ok := h.bindAccount(gctx, true)
	if !ok {
		return
	}

	txs, balance := h.service.Statement(ctx, name)

	gctx.Header("Content-Type", report.ContentType)
	gctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "statement.xlsx"))

	if err := report.WriteStatement(gctx.Writer, name, txs, balance); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("account", name).Send()
		gctx.AbortWithStatus(http.StatusInternalServerError)
	}
}
