// @title                       Sena Bank Operator Console API
// @version                     1.0
// @description                 Role-gated back-office console in front of the core ledger.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"os"

	"github.com/senabank/operator-console/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
