package system

import (
	"context"
	"fmt"

	"github.com/solterra/reservas/internal/cli"
	"github.com/solterra/reservas/internal/keyring"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: keyring available (warning only; env/flag config still works)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: UNAVAILABLE (use --url or RESERVAS_SHEET_URL)\n")
	}

	// Check 2: endpoint configured
	if ctx.Config.SheetURL != "" {
		fmt.Printf("✓ Sheet endpoint configured: OK\n")
	} else {
		fmt.Printf("❌ Sheet endpoint configured: FAIL\n")
		hasError = true
	}

	// Check 3: endpoint reachable and speaking the protocol
	if ctx.Config.SheetURL != "" {
		reqCtx, cancel := context.WithTimeout(context.Background(), ctx.Config.HTTPTimeout)
		defer cancel()
		records, err := ctx.Client.List(reqCtx)
		if err != nil {
			fmt.Printf("❌ Sheet endpoint reachable: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Sheet endpoint reachable: OK (%d reservations)\n", len(records))
		}
	} else {
		fmt.Printf("⊘ Sheet endpoint reachable: SKIPPED (not configured)\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}
