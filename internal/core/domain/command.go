package domain

// CommandKind identifies one operation in the console's command catalogue.
type CommandKind string

const (
	CmdAllAccounts       CommandKind = "all-accounts"
	CmdAccountByID       CommandKind = "lookup-by-account"
	CmdWithTransactions  CommandKind = "with-transactions"
	CmdSummary           CommandKind = "summary"
	CmdSummaryByAccount  CommandKind = "summary-by-account"
	CmdDeposit           CommandKind = "deposit"
	CmdWithdraw          CommandKind = "withdraw"
	CmdTransfer          CommandKind = "transfer"
	CmdCreateClerk       CommandKind = "create-clerk"
	CmdAddAccount        CommandKind = "add-account"
	CmdDeleteAccount     CommandKind = "delete-account"
	CmdAllTransactions   CommandKind = "all-transactions"
	CmdTransactionByID   CommandKind = "transaction-by-id"
	CmdTransactionCount  CommandKind = "transaction-count"
	CmdApproveWithdrawal CommandKind = "approve-withdrawal"
)

// CommandDescriptor is the declarative description of one operator action.
// Args holds the typed argument value for Kind (see package rules), or nil
// for commands that take none.
type CommandDescriptor struct {
	Kind         CommandKind
	Args         any
	RequiredRole Role
}
