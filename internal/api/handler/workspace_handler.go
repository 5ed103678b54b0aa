package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/rules"
	"github.com/senabank/operator-console/internal/core/service"
)

// ResultObserver is told about every dispatch result so it can drop
// sessions whose ledger token expired.
type ResultObserver interface {
	Observe(ctx context.Context, session domain.Session, res domain.Result) bool
}

// WorkspaceHandler exposes one route per workspace command. Every route
// submits through the caller's routed workspace, so the role gate and
// validation run in the core exactly as they do for the terminal console.
type WorkspaceHandler struct {
	observer ResultObserver
	log      zerolog.Logger
}

func NewWorkspaceHandler(observer ResultObserver, log zerolog.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{observer: observer, log: log}
}

func (h *WorkspaceHandler) submit(c echo.Context, kind domain.CommandKind, args any) error {
	session, ws, err := ctxSession(c)
	if err != nil {
		return err
	}
	res := ws.Submit(c.Request().Context(), session, kind, args)
	h.observe(c, session, res)
	return renderResult(c, res)
}

func (h *WorkspaceHandler) observe(c echo.Context, session domain.Session, res domain.Result) {
	if h.observer == nil {
		return
	}
	if h.observer.Observe(c.Request().Context(), session, res) {
		h.log.Info().Str("session", session.ID).Str("kind", string(res.Kind)).Msg("session dropped after ledger token expiry")
	}
}

// bindBody binds the JSON body into args. A body that cannot be decoded is
// treated as fields not supplied and fails as invalid input without a
// ledger call.
func (h *WorkspaceHandler) bindBody(c echo.Context, kind domain.CommandKind, args any) (bool, error) {
	if err := c.Bind(args); err != nil {
		h.log.Debug().Err(err).Str("kind", string(kind)).Msg("request body not decodable")
		return false, renderResult(c, domain.Failure(kind, domain.FailureInvalidInput, err))
	}
	return true, nil
}

func accountParam(c echo.Context, name string) rules.AccountRef {
	return rules.AccountRef{AccountID: rules.ParseRef(c.Param(name))}
}

// ── Clerk commands ────────────────────────────────────────────────────────────

// AllAccounts lists every account.
//
// @Summary      List accounts
// @Tags         clerk
// @Security     BearerAuth
// @Produce      plain
// @Success      200  {string}  string  "pretty-printed ledger payload"
// @Failure      400  {string}  string  "Invalid info entered."
// @Router       /clerk/accounts [get]
func (h *WorkspaceHandler) AllAccounts(c echo.Context) error {
	return h.submit(c, domain.CmdAllAccounts, nil)
}

// AccountByID looks up one account.
//
// @Summary      Get account
// @Tags         clerk
// @Security     BearerAuth
// @Produce      plain
// @Param        id   path      int  true  "Account id"
// @Success      200  {string}  string  "pretty-printed ledger payload"
// @Failure      400  {string}  string  "Invalid info entered."
// @Router       /clerk/accounts/{id} [get]
func (h *WorkspaceHandler) AccountByID(c echo.Context) error {
	return h.submit(c, domain.CmdAccountByID, accountParam(c, "id"))
}

// AccountWithTransactions returns an account with its transactions.
//
// @Summary      Get account with transactions
// @Tags         clerk
// @Security     BearerAuth
// @Produce      plain
// @Param        id   path      int  true  "Account id"
// @Success      200  {string}  string  "pretty-printed ledger payload"
// @Failure      400  {string}  string  "Invalid info entered."
// @Router       /clerk/accounts/{id}/transactions [get]
func (h *WorkspaceHandler) AccountWithTransactions(c echo.Context) error {
	return h.submit(c, domain.CmdWithTransactions, accountParam(c, "id"))
}

// Summary returns the summary over all accounts.
//
// @Summary      Accounts summary
// @Tags         clerk
// @Security     BearerAuth
// @Produce      plain
// @Success      200  {string}  string  "pretty-printed ledger payload"
// @Failure      400  {string}  string  "Invalid info entered."
// @Router       /clerk/accounts/summary [get]
func (h *WorkspaceHandler) Summary(c echo.Context) error {
	return h.submit(c, domain.CmdSummary, nil)
}

// SummaryByAccount returns the summary of one account.
//
// @Summary      Account summary
// @Tags         clerk
// @Security     BearerAuth
// @Produce      plain
// @Param        id   path      int  true  "Account id"
// @Success      200  {string}  string  "pretty-printed ledger payload"
// @Failure      400  {string}  string  "Invalid info entered."
// @Router       /clerk/accounts/{id}/summary [get]
func (h *WorkspaceHandler) SummaryByAccount(c echo.Context) error {
	return h.submit(c, domain.CmdSummaryByAccount, accountParam(c, "id"))
}

// Deposit credits an account.
//
// @Summary      Deposit
// @Tags         clerk
// @Security     BearerAuth
// @Accept       json
// @Produce      plain
// @Param        body  body      rules.Movement  true  "Account and amount"
// @Success      200   {string}  string  "pretty-printed ledger payload"
// @Failure      400   {string}  string  "Invalid info entered."
// @Router       /clerk/deposit [post]
func (h *WorkspaceHandler) Deposit(c echo.Context) error {
	var req rules.Movement
	if ok, err := h.bindBody(c, domain.CmdDeposit, &req); !ok {
		return err
	}
	return h.submit(c, domain.CmdDeposit, req)
}

// Withdraw debits an account.
//
// @Summary      Withdraw
// @Tags         clerk
// @Security     BearerAuth
// @Accept       json
// @Produce      plain
// @Param        body  body      rules.Movement  true  "Account and amount"
// @Success      200   {string}  string  "pretty-printed ledger payload"
// @Failure      400   {string}  string  "Invalid info entered."
// @Router       /clerk/withdraw [post]
func (h *WorkspaceHandler) Withdraw(c echo.Context) error {
	var req rules.Movement
	if ok, err := h.bindBody(c, domain.CmdWithdraw, &req); !ok {
		return err
	}
	return h.submit(c, domain.CmdWithdraw, req)
}

// Transfer moves money between two accounts.
//
// @Summary      Transfer
// @Tags         clerk
// @Security     BearerAuth
// @Accept       json
// @Produce      plain
// @Param        body  body      rules.Transfer  true  "Source, destination and amount"
// @Success      200   {string}  string  "pretty-printed ledger payload"
// @Failure      400   {string}  string  "Invalid info entered."
// @Router       /clerk/transfer [post]
func (h *WorkspaceHandler) Transfer(c echo.Context) error {
	var req rules.Transfer
	if ok, err := h.bindBody(c, domain.CmdTransfer, &req); !ok {
		return err
	}
	return h.submit(c, domain.CmdTransfer, req)
}

// ── Manager commands ──────────────────────────────────────────────────────────

// CreateClerk provisions a clerk login.
//
// @Summary      Create clerk
// @Tags         manager
// @Security     BearerAuth
// @Accept       json
// @Produce      plain
// @Param        body  body      rules.NewClerk  true  "Clerk credentials"
// @Success      200   {string}  string  "pretty-printed ledger payload"
// @Failure      400   {string}  string  "Invalid info entered."
// @Router       /manager/clerks [post]
func (h *WorkspaceHandler) CreateClerk(c echo.Context) error {
	var req rules.NewClerk
	if ok, err := h.bindBody(c, domain.CmdCreateClerk, &req); !ok {
		return err
	}
	return h.submit(c, domain.CmdCreateClerk, req)
}

// AddAccount opens an account.
//
// @Summary      Add account
// @Tags         manager
// @Security     BearerAuth
// @Accept       json
// @Produce      plain
// @Param        body  body      rules.NewAccount  true  "Account holder and opening balance"
// @Success      200   {string}  string  "pretty-printed ledger payload"
// @Failure      400   {string}  string  "Invalid info entered."
// @Router       /manager/accounts [post]
func (h *WorkspaceHandler) AddAccount(c echo.Context) error {
	var req rules.NewAccount
	if ok, err := h.bindBody(c, domain.CmdAddAccount, &req); !ok {
		return err
	}
	return h.submit(c, domain.CmdAddAccount, req)
}

// DeleteAccount closes an account.
//
// @Summary      Delete account
// @Tags         manager
// @Security     BearerAuth
// @Produce      plain
// @Param        id   path      int  true  "Account id"
// @Success      200  {string}  string  "pretty-printed ledger payload"
// @Failure      400  {string}  string  "Invalid info entered."
// @Router       /manager/accounts/{id} [delete]
func (h *WorkspaceHandler) DeleteAccount(c echo.Context) error {
	return h.submit(c, domain.CmdDeleteAccount, accountParam(c, "id"))
}

// AllTransactions lists every transaction.
//
// @Summary      List transactions
// @Tags         manager
// @Security     BearerAuth
// @Produce      plain
// @Success      200  {string}  string  "pretty-printed ledger payload"
// @Failure      400  {string}  string  "Invalid info entered."
// @Router       /manager/transactions [get]
func (h *WorkspaceHandler) AllTransactions(c echo.Context) error {
	return h.submit(c, domain.CmdAllTransactions, nil)
}

// TransactionByID looks up one transaction.
//
// @Summary      Get transaction
// @Tags         manager
// @Security     BearerAuth
// @Produce      plain
// @Param        id   path      int  true  "Transaction id"
// @Success      200  {string}  string  "pretty-printed ledger payload"
// @Failure      400  {string}  string  "Invalid info entered."
// @Router       /manager/transactions/{id} [get]
func (h *WorkspaceHandler) TransactionByID(c echo.Context) error {
	return h.submit(c, domain.CmdTransactionByID, rules.TransactionRef{TransactionID: rules.ParseRef(c.Param("id"))})
}

// TransactionCount counts an account's transactions.
//
// @Summary      Count transactions
// @Tags         manager
// @Security     BearerAuth
// @Produce      plain
// @Param        accountId  path      int  true  "Account id"
// @Success      200        {string}  string  "pretty-printed ledger payload"
// @Failure      400        {string}  string  "Invalid info entered."
// @Router       /manager/transactions/count/{accountId} [get]
func (h *WorkspaceHandler) TransactionCount(c echo.Context) error {
	return h.submit(c, domain.CmdTransactionCount, accountParam(c, "accountId"))
}

// ApproveWithdrawal records a decision on a pending withdrawal. An absent
// decision approves.
//
// @Summary      Approve or reject a withdrawal
// @Tags         manager
// @Security     BearerAuth
// @Accept       json
// @Produce      plain
// @Param        body  body      approveRequest  true  "Transaction and decision"
// @Success      200   {string}  string  "pretty-printed ledger payload"
// @Failure      400   {string}  string  "Invalid info entered."
// @Router       /manager/transactions/approve [post]
func (h *WorkspaceHandler) ApproveWithdrawal(c echo.Context) error {
	var req approveRequest
	if ok, err := h.bindBody(c, domain.CmdApproveWithdrawal, &req); !ok {
		return err
	}
	session, ws, err := ctxSession(c)
	if err != nil {
		return err
	}
	res := service.NewApprovalWorkflow(ws).Submit(c.Request().Context(), session, req.TransactionID, req.Approve)
	h.observe(c, session, res)
	return renderResult(c, res)
}
