package mailer

import (
	"fmt"
	"strings"

	"github.com/ItaloOlivier/shopcrypto/internal/utils"
)

type ConfirmationItem struct {
	Name     string
	Price    float64
	Quantity int
}

type ConfirmationData struct {
	OrderNumber   string
	Name          string
	Total         float64
	PaymentMethod string
	Items         []ConfirmationItem
}

// ConfirmationSubject is the subject line for the order confirmation mail.
func ConfirmationSubject(orderNumber string) string {
	return fmt.Sprintf("ShopCrypto order %s received", orderNumber)
}

// BuildConfirmationBody renders the plain-text confirmation mail: line items,
// total, and settlement instructions for the chosen payment method.
func BuildConfirmationBody(data ConfirmationData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\n", data.Name)
	fmt.Fprintf(&b, "Thank you for your order %s. It is pending payment.\n\n", data.OrderNumber)

	b.WriteString("Your items:\n")
	for _, item := range data.Items {
		fmt.Fprintf(&b, "  %d x %s @ %s\n", item.Quantity, item.Name, utils.FormatPrice(item.Price))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n\n", utils.FormatPrice(data.Total))

	b.WriteString("How to pay:\n")
	steps := InjectVariables(GetInstructions(data.PaymentMethod), InstructionVars{
		"amount":       utils.FormatPrice(data.Total),
		"order_number": data.OrderNumber,
	})
	for i, step := range steps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}

	b.WriteString("\nWe will confirm shipment once payment reflects.\n")
	b.WriteString("ShopCrypto\n")

	return b.String()
}
