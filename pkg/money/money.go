package money

import "github.com/shopspring/decimal"

// Format денежная сумма с разделителями тысяч: -1,250,000
func Format(amount int64) string {
	s := decimal.NewFromInt(amount).Abs().String()

	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}

	if amount < 0 {
		return "-" + string(out)
	}
	return string(out)
}

// Units сумма в единицах масштаба с одним знаком после точки: 125000 при масштабе 10000 -> 12.5
func Units(amount, scale int64) string {
	if scale <= 0 {
		scale = 1
	}
	return decimal.NewFromInt(amount).Div(decimal.NewFromInt(scale)).StringFixed(1)
}
