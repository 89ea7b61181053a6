package mailer

import "strings"

// Payment method tags accepted at checkout. Settlement happens out-of-band;
// these only select which instructions go into the confirmation mail.
const (
	MethodEFT = "eft"
	MethodBTC = "btc"
)

var instructionMap = map[string][]string{
	MethodEFT: {
		"Make an EFT payment of {{amount}} to the account below",
		"Bank: First National Bank",
		"Account name: ShopCrypto (Pty) Ltd",
		"Account number: 627 1234 5678",
		"Branch code: 250655",
		"Use your order number {{order_number}} as the payment reference",
		"Email proof of payment to orders@shopcrypto.co.za",
	},
	MethodBTC: {
		"Send the BTC equivalent of {{amount}} to the address we will email you",
		"Quote your order number {{order_number}} when confirming the transfer",
		"The rate is locked for 1 hour from the time the quote is issued",
	},
}

// GetInstructions returns the settlement steps for a payment method tag,
// falling back to a generic line for unknown tags.
func GetInstructions(method string) []string {
	if steps, ok := instructionMap[strings.ToLower(method)]; ok {
		return steps
	}

	return []string{
		"Our sales team will contact you with payment instructions",
	}
}

type InstructionVars map[string]string

// InjectVariables substitutes {{key}} placeholders in each instruction step.
func InjectVariables(steps []string, vars InstructionVars) []string {
	result := make([]string, 0, len(steps))

	for _, step := range steps {
		updated := step
		for key, value := range vars {
			updated = strings.ReplaceAll(updated, "{{"+key+"}}", value)
		}
		result = append(result, updated)
	}

	return result
}
