package handler

import "github.com/senabank/operator-console/internal/core/domain"

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Session   string               `json:"session"`
	Workspace string               `json:"workspace"`
	Commands  []domain.CommandKind `json:"commands"`
}

// approveRequest leaves approve optional; an absent decision approves.
type approveRequest struct {
	TransactionID int64 `json:"transactionId"`
	Approve       *bool `json:"approve"`
}
