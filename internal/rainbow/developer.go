package rainbow

import (
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/cli"
)

// Payments shows the payment account of a developer.
func Payments(developerID string) cli.Command {
	return cli.Command{
		Action: "List payment for user",
		Target: developerID,
		Sequence: cli.Single(cli.GetStep("Get payment account",
			endpoint(subscriptionAPI, "developers", developerID, "accounts")+"?format=full")),
		Render:  cli.ShowLast(cli.KeyValueView),
		Success: constant("Successfully executed"),
	}
}

// Methods lists the payment methods of a developer.
func Methods(developerID string) cli.Command {
	return cli.Command{
		Action: "List payment methods for user",
		Target: developerID,
		Sequence: cli.Single(cli.GetStep("List payment methods",
			endpoint(subscriptionAPI, "developers", developerID, "payments", "methods"))),
		Render: cli.ShowLast(cli.MethodsView),
	}
}

// Subscriptions lists the subscriptions of a developer.
func Subscriptions(developerID string) cli.Command {
	return cli.Command{
		Action: "List subscriptions for user",
		Target: developerID,
		Sequence: cli.Single(cli.GetStep("List subscriptions",
			endpoint(subscriptionAPI, "developers", developerID, "subscriptions"))),
		Render: cli.ShowLast(cli.SubscriptionsView),
	}
}

// DeletePayment cancels the payment account of a developer.
func DeletePayment(developerID string) cli.Command {
	return cli.Command{
		Action:       "Delete payment",
		Target:       developerID,
		Destructive:  true,
		Confirmation: "Are you sure? It will remove it completely",
		Sequence: cli.Single(cli.PutStep("Cancel payment account",
			endpoint(subscriptionAPI, "developers", developerID, "accounts", "cancel"), nil)),
		Success: constant("Successfully executed"),
	}
}
