package ports

import (
	"time"

	"github.com/senabank/operator-console/internal/core/domain"
)

// DispatchObserver receives one notification per dispatch, after the result is known.
type DispatchObserver interface {
	ObserveDispatch(kind domain.CommandKind, failure domain.FailureKind, elapsed time.Duration)
}

// LoginObserver receives one notification per login attempt.
type LoginObserver interface {
	ObserveLogin(failure domain.FailureKind)
}
