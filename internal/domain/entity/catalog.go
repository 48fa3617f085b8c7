package entity

import "slices"

// NoInvoice es la referencia registrada cuando la operación no tiene nota fiscal.
const NoInvoice = "SEM NOTA"

// Units unidades de medida admitidas.
var Units = []string{"m³", "un", "kg", "saco", "ton", "litro", "caixa", "barra", "hora"}

// PaymentMethods formas de pago admitidas.
var PaymentMethods = []string{
	"À vista", "A prazo", "Cartão débito", "Cartão crédito", "PIX", "Boleto", "Cheque",
}

// ExpenseCategories categorías fijas de gastos operativos.
var ExpenseCategories = []string{
	"Peças de carro",
	"Combustíveis",
	"Salários de funcionários",
	"Manutenção caminhões caçamba",
	"Manutenção retroescavadeiras",
	"Custos de depósito – Aluguel",
	"Custos de depósito – Luz/Água",
	"Custos de depósito – Outros",
	"Seguros",
	"Impostos",
}

func IsValidUnit(u string) bool            { return slices.Contains(Units, u) }
func IsValidPaymentMethod(m string) bool   { return slices.Contains(PaymentMethods, m) }
func IsValidExpenseCategory(c string) bool { return slices.Contains(ExpenseCategories, c) }
