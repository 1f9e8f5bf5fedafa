package aggregating

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const notAvailable = "N/A"

var million = decimal.NewFromInt(1_000_000)

// VolumeFormatter formata volumes financeiros para o dashboard.
// Abaixo de um milhão: valor inteiro com separador de milhar do locale.
// A partir de um milhão: milhões com uma casa decimal e sufixo "M".
type VolumeFormatter struct {
	printer *message.Printer
	symbol  string
}

func NewVolumeFormatter(locale, symbol string) *VolumeFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	if symbol == "" {
		symbol = "R$"
	}

	return &VolumeFormatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

func (f *VolumeFormatter) Format(value decimal.NullDecimal) string {
	if !value.Valid {
		return notAvailable
	}

	if value.Decimal.LessThan(million) {
		return f.symbol + " " + f.printer.Sprintf("%d", value.Decimal.Round(0).IntPart())
	}

	millions := value.Decimal.Div(million).Round(1).InexactFloat64()
	return f.symbol + " " + f.printer.Sprintf("%.1f", millions) + "M"
}
