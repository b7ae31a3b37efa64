package payments

import "context"

// TransactionRepository defines the interface for transaction persistence
// operations.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	GetByID(ctx context.Context, transactionID string) (*Transaction, error)
	GetByReference(ctx context.Context, reference string) (*Transaction, error)
	UpdateByID(ctx context.Context, transaction *Transaction) error
}

// Verification is a provider's answer about a payment reference.
type Verification struct {
	Reference string
	Amount    float64
	Succeeded bool
}

// Provider abstracts an external payment gateway. Implementations exist for
// Paystack and M-Pesa (Daraja).
type Provider interface {
	// Name returns the provider identifier (PAYSTACK or MPESA).
	Name() string

	// Verify asks the gateway whether the referenced payment succeeded and
	// for how much.
	Verify(ctx context.Context, reference string) (*Verification, error)

	// Refund returns amount for the referenced payment.
	Refund(ctx context.Context, reference string, amount float64) error
}
