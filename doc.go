// Package payflow wires a minimal payment pipeline: validate the customer
// and payment, charge a gateway, confirm to the customer, and append the
// transaction to a flat log file. It is a library with no CLI or server;
// callers construct a PaymentService with the collaborators they want:
//
//	cfg := payflow.LoadConfig()
//	svc := payflow.NewPaymentService(
//		validation.NewCustomerValidator(logger),
//		validation.NewPaymentValidator(logger),
//		payments.NewStripeAdapter(cfg.GatewayAPIKey, cfg.GatewayBaseURL),
//		notifications.NewSMSNotifier(smsGateway, logger),
//		translog.NewTransactionLogger(cfg.LogPath),
//		logger,
//	)
//	charge, err := svc.ProcessTransaction(ctx, customer, payment)
package payflow
