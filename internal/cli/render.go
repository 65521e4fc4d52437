package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"
)

// formatAmount renders d in the given currency, e.g. ₹1,250.00. Unknown codes fall back to INR.
func formatAmount(d decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(money.INR)
	}
	minor := d.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// cell escapes free text for a markdown table cell.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

// TotalsMarkdown renders the dashboard summary and the account breakdown.
func TotalsMarkdown(t domain.Totals, currency string) string {
	var b strings.Builder
	b.WriteString("# Totals\n\n")
	b.WriteString("| | Amount |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Net balance | %s |\n", formatAmount(t.NetBalance, currency))
	fmt.Fprintf(&b, "| To receive | %s |\n", formatAmount(t.TotalReceivable, currency))
	fmt.Fprintf(&b, "| To pay | %s |\n", formatAmount(t.TotalPayable, currency))

	b.WriteString("\n## Accounts\n\n")
	b.WriteString("| Account | Balance |\n|---|---:|\n")
	for _, a := range t.Accounts {
		fmt.Fprintf(&b, "| %s | %s |\n", cell(a.Name), formatAmount(a.Balance, currency))
	}
	return b.String()
}

// LedgersMarkdown renders one section per counterparty.
func LedgersMarkdown(ledgers []domain.NameLedger, currency string) string {
	var b strings.Builder
	b.WriteString("# Ledgers\n\n")
	if len(ledgers) == 0 {
		b.WriteString("No debts recorded.\n")
		return b.String()
	}
	for _, l := range ledgers {
		fmt.Fprintf(&b, "## %s\n\n", cell(l.Name))
		fmt.Fprintf(&b, "Receivable %s, payable %s, **net %s**\n\n",
			formatAmount(l.Receivables, currency), formatAmount(l.Payables, currency), formatAmount(l.Net, currency))

		b.WriteString("| Type | Total | Paid | Due |\n|---|---:|---:|---|\n")
		for _, d := range l.Records {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", d.Type, formatAmount(d.Total, currency), formatAmount(d.Paid, currency), cell(d.DueDate))
		}
		if len(l.LinkedTransactions) > 0 {
			b.WriteString("\n")
			writeTransactionTable(&b, l.LinkedTransactions, currency)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// GoalsMarkdown renders the goal projections.
func GoalsMarkdown(goals []domain.GoalView, currency string) string {
	var b strings.Builder
	b.WriteString("# Goals\n\n")
	if len(goals) == 0 {
		b.WriteString("No goals recorded.\n")
		return b.String()
	}
	b.WriteString("| Goal | Saved | Target | Remaining | Months | Monthly |\n|---|---:|---:|---:|---:|---:|\n")
	for _, g := range goals {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %s |\n",
			cell(g.Name),
			formatAmount(g.Current, currency),
			formatAmount(g.Target, currency),
			formatAmount(g.Remaining, currency),
			g.MonthsToTarget,
			formatAmount(g.MonthlyRequired, currency))
	}
	return b.String()
}

// TransactionsMarkdown renders a transaction list in the given order.
func TransactionsMarkdown(txs []domain.Transaction, currency string) string {
	var b strings.Builder
	b.WriteString("# Transactions\n\n")
	if len(txs) == 0 {
		b.WriteString("No matching transactions.\n")
		return b.String()
	}
	writeTransactionTable(&b, txs, currency)
	return b.String()
}

func writeTransactionTable(b *strings.Builder, txs []domain.Transaction, currency string) {
	b.WriteString("| Date | Type | Category | Account | Amount | Note |\n|---|---|---|---|---:|---|\n")
	for _, tx := range txs {
		account := tx.Account
		if tx.Type == domain.BalanceTransfer && tx.ToAccount != "" {
			account += " → " + tx.ToAccount
		}
		category := tx.Category
		if tx.Subcategory != "" {
			category += " / " + tx.Subcategory
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.Date, tx.Type, cell(category), cell(account), formatAmount(tx.Amount, currency), cell(tx.Note))
	}
}

// printMarkdown writes md to w, styled for the terminal unless raw is set.
func printMarkdown(w io.Writer, md string, raw bool) error {
	if raw {
		_, err := io.WriteString(w, md)
		return err
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		return err
	}
	out, err := r.Render(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
