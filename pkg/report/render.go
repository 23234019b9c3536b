package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Render writes the statement as an aligned text table.
func Render(w io.Writer, s *Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	lines := []struct {
		label string
		value float64
	}{
		{"家賃収入", s.HouseRentTotal},
		{"その他収入", s.OtherIncomeTotal},
		{"収入合計", s.IncomeTotal},
		{"管理料", s.ManageAmount},
		{"管理料消費税", s.ManageTax},
		{"管理料合計", s.ManageTotal},
	}

	fmt.Fprintf(tw, "収支報告\t%s\t\n", s.Period)
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%s\t\n", l.label, Yen(l.value))
	}
	for _, e := range s.Expenses {
		name := e.Name
		if e.Fixed {
			name += " *"
		}
		fmt.Fprintf(tw, "%s (%s)\t%s\t\n", name, e.Code, Yen(e.Total))
	}
	fmt.Fprintf(tw, "支出合計\t%s\t\n", Yen(s.ExpenseTotal))
	fmt.Fprintf(tw, "差引\t%s\t\n", Yen(s.Difference))
	for _, a := range s.Advances {
		fmt.Fprintf(tw, "%s\t%s\t\n", a.Name, Yen(a.Amount))
	}
	fmt.Fprintf(tw, "立替合計\t%s\t\n", Yen(s.TotalAdvance))
	fmt.Fprintf(tw, "純収益\t%s\t\n", Yen(s.NetIncome))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.Distributions) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "分配\t割合\t基準額\t前月調整\t立替\t支払額\t繰越\t振込先\t")
	for _, p := range s.Distributions {
		fmt.Fprintf(tw, "%s\t%s%%\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			p.Name, strconv.FormatFloat(p.Percent, 'f', -1, 64),
			Yen(p.Base), Yen(p.PriorAdjustment), Yen(p.Advance), Yen(p.Payout), Yen(p.CarryForward),
			p.Account)
	}
	return tw.Flush()
}

// String formats the account as "bank branch type number holder", skipping
// blank parts.
func (a BankAccount) String() string {
	parts := make([]string, 0, 5)
	for _, v := range []string{a.Bank, a.Branch, a.AccountType, a.AccountNumber, a.Holder} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

// Yen formats v with thousands separators, dropping the fraction when it
// is zero.
func Yen(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
