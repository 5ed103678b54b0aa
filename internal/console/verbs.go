package console

import (
	"strings"

	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/rules"
)

// verb maps one REPL word onto a command kind. Missing or malformed
// arguments parse to zero values, which the command rules reject as not
// supplied.
type verb struct {
	name  string
	usage string
	// kinds lists the command kinds the verb can produce; the verb is shown
	// when the workspace offers the first one.
	kinds []domain.CommandKind
	parse func(args []string) (domain.CommandKind, any)
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func accountRef(args []string) rules.AccountRef {
	return rules.AccountRef{AccountID: rules.ParseRef(arg(args, 0))}
}

func movement(args []string) rules.Movement {
	return rules.Movement{AccountID: rules.ParseRef(arg(args, 0)), Amount: rules.ParseAmount(arg(args, 1))}
}

var verbs = []verb{
	{
		name:  "accounts",
		usage: "accounts",
		kinds: []domain.CommandKind{domain.CmdAllAccounts},
		parse: func([]string) (domain.CommandKind, any) { return domain.CmdAllAccounts, nil },
	},
	{
		name:  "account",
		usage: "account <account-id>",
		kinds: []domain.CommandKind{domain.CmdAccountByID},
		parse: func(a []string) (domain.CommandKind, any) { return domain.CmdAccountByID, accountRef(a) },
	},
	{
		name:  "history",
		usage: "history <account-id>",
		kinds: []domain.CommandKind{domain.CmdWithTransactions},
		parse: func(a []string) (domain.CommandKind, any) { return domain.CmdWithTransactions, accountRef(a) },
	},
	{
		name:  "summary",
		usage: "summary [account-id]",
		kinds: []domain.CommandKind{domain.CmdSummary, domain.CmdSummaryByAccount},
		parse: func(a []string) (domain.CommandKind, any) {
			if len(a) == 0 {
				return domain.CmdSummary, nil
			}
			return domain.CmdSummaryByAccount, accountRef(a)
		},
	},
	{
		name:  "deposit",
		usage: "deposit <account-id> <amount>",
		kinds: []domain.CommandKind{domain.CmdDeposit},
		parse: func(a []string) (domain.CommandKind, any) { return domain.CmdDeposit, movement(a) },
	},
	{
		name:  "withdraw",
		usage: "withdraw <account-id> <amount>",
		kinds: []domain.CommandKind{domain.CmdWithdraw},
		parse: func(a []string) (domain.CommandKind, any) { return domain.CmdWithdraw, movement(a) },
	},
	{
		name:  "transfer",
		usage: "transfer <from-account-id> <to-account-id> <amount>",
		kinds: []domain.CommandKind{domain.CmdTransfer},
		parse: func(a []string) (domain.CommandKind, any) {
			return domain.CmdTransfer, rules.Transfer{
				FromAccountID: rules.ParseRef(arg(a, 0)),
				ToAccountID:   rules.ParseRef(arg(a, 1)),
				Amount:        rules.ParseAmount(arg(a, 2)),
			}
		},
	},
	{
		name:  "create-clerk",
		usage: "create-clerk <username> <password>",
		kinds: []domain.CommandKind{domain.CmdCreateClerk},
		parse: func(a []string) (domain.CommandKind, any) {
			return domain.CmdCreateClerk, rules.NewClerk{Username: arg(a, 0), Password: arg(a, 1)}
		},
	},
	{
		name:  "add-account",
		usage: "add-account <name> <balance> <email> <phone>",
		kinds: []domain.CommandKind{domain.CmdAddAccount},
		parse: func(a []string) (domain.CommandKind, any) {
			return domain.CmdAddAccount, rules.NewAccount{
				Name:    arg(a, 0),
				Balance: rules.ParseAmount(arg(a, 1)),
				Email:   arg(a, 2),
				Phone:   arg(a, 3),
			}
		},
	},
	{
		name:  "delete-account",
		usage: "delete-account <account-id>",
		kinds: []domain.CommandKind{domain.CmdDeleteAccount},
		parse: func(a []string) (domain.CommandKind, any) { return domain.CmdDeleteAccount, accountRef(a) },
	},
	{
		name:  "transactions",
		usage: "transactions [transaction-id]",
		kinds: []domain.CommandKind{domain.CmdAllTransactions, domain.CmdTransactionByID},
		parse: func(a []string) (domain.CommandKind, any) {
			if len(a) == 0 {
				return domain.CmdAllTransactions, nil
			}
			return domain.CmdTransactionByID, rules.TransactionRef{TransactionID: rules.ParseRef(a[0])}
		},
	},
	{
		name:  "count",
		usage: "count <account-id>",
		kinds: []domain.CommandKind{domain.CmdTransactionCount},
		parse: func(a []string) (domain.CommandKind, any) { return domain.CmdTransactionCount, accountRef(a) },
	},
}

// approveUsage is handled by the console itself because it goes through
// the approval workflow.
const approveUsage = "approve <transaction-id> [approve|reject]"

func lookupVerb(name string) (verb, bool) {
	for _, v := range verbs {
		if v.name == name {
			return v, true
		}
	}
	return verb{}, false
}

// parseDecision reads the optional approve/reject word. ok is false for a
// word that is neither.
func parseDecision(s string) (decision *bool, ok bool) {
	yes, no := true, false
	switch strings.ToLower(s) {
	case "":
		return nil, true
	case "approve", "approved", "yes", "true":
		return &yes, true
	case "reject", "rejected", "no", "false":
		return &no, true
	default:
		return nil, false
	}
}
