package main

import (
	"fmt"
	"log"

	"pollywolly.org/internal/holder"
	"pollywolly.org/internal/ids"
	"pollywolly.org/internal/ledger"
	"pollywolly.org/internal/money"
)

// Runs a deposit/withdraw/transfer scenario against the in-process engine
// and verifies conservation. Exits non-zero on any violation.
func main() {
	h := holder.New("smoke", "x", "x", "Smoke", "Test")

	accA, err := h.CreateAccount("Smoke Checking", 100000001111, money.MustParse("1000.00"))
	if err != nil {
		log.Fatalf("create account A: %v", err)
	}
	accB, err := h.CreateAccount("Smoke Savings", 100000002222, money.MustParse("0.00"))
	if err != nil {
		log.Fatalf("create account B: %v", err)
	}

	engine := ledger.NewEngine(ledger.SystemClock{}, ids.NewConfirmations())

	engine.Deposit(accA, money.MustParse("250.00"))
	engine.Withdraw(accA, money.MustParse("50.00"))

	if _, err := engine.Transfer(accA, accB, money.MustParse("420.00")); err != nil {
		log.Fatalf("transfer: %v", err)
	}

	total := accA.Balance().Add(accB.Balance())
	if !total.Equal(money.MustParse("1200.00")) {
		log.Fatalf("ledger conservation failed: %s + %s", accA.Balance(), accB.Balance())
	}
	if !accA.Balance().Equal(money.MustParse("780.00")) || !accB.Balance().Equal(money.MustParse("420.00")) {
		log.Fatalf("unexpected balances: A=%s B=%s", accA.Balance(), accB.Balance())
	}

	if _, err := engine.Transfer(accA, accB, accA.Balance()); err != ledger.ErrInsufficientFunds {
		log.Fatalf("expected strict funds rejection, got %v", err)
	}

	fmt.Printf("ledger smoke test passed: A=%s B=%s\n", money.Format(accA.Balance()), money.Format(accB.Balance()))
}
