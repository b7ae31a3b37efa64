// Package payment implements the payment gateway connectors. Paystack is
// verified over its transaction API; M-Pesa goes through the Daraja OAuth
// and query endpoints. Both satisfy the payments.Provider contract.
package payment
