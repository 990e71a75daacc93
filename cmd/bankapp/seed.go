package main

import (
	"context"

	"pollywolly.org/internal/auth"
	"pollywolly.org/internal/holder"
	"pollywolly.org/internal/ledger"
	"pollywolly.org/internal/money"
)

// seedDemoBank loads the directory with two demo holders and a plausible
// slice of account history so the interactive app has something to show.
// Demo credentials: rick/san pin 1234, morty/smi pin 4321.
func seedDemoBank(ctx context.Context, store holder.Store) error {
	rick := holder.New("rick", auth.MustHashSecret("san"), auth.MustHashSecret("1234"), "Rick", "Sanchez")
	morty := holder.New("morty", auth.MustHashSecret("smi"), auth.MustHashSecret("4321"), "Morty", "Smith")

	rickDebit, err := rick.CreateAccount("Adv Plus Banking", 392852342332, money.MustParse("100.00"))
	if err != nil {
		return err
	}
	rickSaving, err := rick.CreateAccount("Advantage Savings", 385683729957, money.MustParse("0.00"))
	if err != nil {
		return err
	}
	mortyDebit, err := morty.CreateAccount("Adv Plus Banking", 194859284823, money.MustParse("50.00"))
	if err != nil {
		return err
	}
	mortySaving, err := morty.CreateAccount("Advantage Savings", 475729550483, money.MustParse("200.00"))
	if err != nil {
		return err
	}

	rickDebit.RecordTransaction(ledger.PendingDate, "Etsy", ledger.CategoryCredit, money.MustParse("-10.00"))
	rickDebit.RecordTransaction("1/08/2023", "Amazon", ledger.CategoryCredit, money.MustParse("-26.83"))
	rickDebit.RecordTransaction("1/05/2023", "Seaside Bakery", ledger.CategoryCash, money.MustParse("-7.00"))
	rickDebit.RecordTransaction("1/04/2023", "Kitakata Ramen", ledger.CategoryCredit, money.MustParse("-21.47"))
	rickDebit.RecordTransaction("1/01/2023", "Target Refund", ledger.CategoryCredit, money.MustParse("13.20"))
	rickSaving.RecordTransaction("1/03/2023", "Online Banking Transfer from CHK 2332 Confirmation #2849539105", ledger.CategoryTransfer, money.MustParse("100.00"))
	rickSaving.RecordTransaction("12/30/2022", "Online Banking Transfer from CHK 2332 Confirmation #9353066105", ledger.CategoryTransfer, money.MustParse("150.00"))
	rickSaving.RecordTransaction("12/21/2022", "Online Banking Transfer from CHK 2332 Confirmation #2934828544", ledger.CategoryTransfer, money.MustParse("200.00"))

	mortyDebit.RecordTransaction(ledger.PendingDate, "Walmart", ledger.CategoryCash, money.MustParse("-34.80"))
	mortyDebit.RecordTransaction("1/12/2023", "Barnes & Noble", ledger.CategoryCredit, money.MustParse("-17.65"))
	mortyDebit.RecordTransaction("1/10/2023", "Starbucks", ledger.CategoryCash, money.MustParse("-6.22"))
	mortyDebit.RecordTransaction("1/10/2023", "IHop", ledger.CategoryCredit, money.MustParse("-22.50"))
	mortyDebit.RecordTransaction("1/06/2023", "7Leaves", ledger.CategoryCash, money.MustParse("-5.60"))
	mortySaving.RecordTransaction("12/31/2022", "Online Banking Transfer from CHK 9232 Confirmation #2849539105", ledger.CategoryTransfer, money.MustParse("34.00"))
	mortySaving.RecordTransaction("12/22/2022", "Online Banking Transfer from CHK 9232 Confirmation #9353066105", ledger.CategoryTransfer, money.MustParse("360.00"))
	mortySaving.RecordTransaction("12/18/2022", "Online Banking Transfer to CHK 2332 Confirmation #2934828544", ledger.CategoryTransfer, money.MustParse("-50.00"))

	if err := store.Create(ctx, rick); err != nil {
		return err
	}
	return store.Create(ctx, morty)
}
