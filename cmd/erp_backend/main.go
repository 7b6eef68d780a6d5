package main

import (
	"fmt"
	"os"
)

// @title ERP Ledger API
// @version 1.0
// @description Double-entry bookkeeping backend: companies, chart of accounts, ledgers, vouchers, inventory, GST and financial reports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
