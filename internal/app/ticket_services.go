package app

import (
	"context"
	"fmt"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
	"github.com/dannykhan02/Ticketing-system/internal/domain/media"
	"github.com/dannykhan02/Ticketing-system/internal/domain/payments"
	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
	"github.com/google/uuid"
)

type ticketService struct {
	ticketRepo      tickets.TicketRepository
	ticketTypeRepo  events.TicketTypeRepository
	eventRepo       events.EventRepository
	userRepo        users.UserRepository
	transactionRepo payments.TransactionRepository
	providers       []payments.Provider
	qrGenerator     tickets.QRCodeGenerator
	mediaStorage    media.Storage
	mailer          tickets.ConfirmationMailer
	logger          logger.Logger
}

// NewTicketService creates a new instance of TicketService
func NewTicketService(
	ticketRepo tickets.TicketRepository,
	ticketTypeRepo events.TicketTypeRepository,
	eventRepo events.EventRepository,
	userRepo users.UserRepository,
	transactionRepo payments.TransactionRepository,
	providers []payments.Provider,
	qrGenerator tickets.QRCodeGenerator,
	mediaStorage media.Storage,
	mailer tickets.ConfirmationMailer,
	logger logger.Logger,
) (tickets.TicketService, error) {
	if len(providers) == 0 {
		return nil, fmt.Errorf("at least one payment provider is required")
	}
	return &ticketService{
		ticketRepo:      ticketRepo,
		ticketTypeRepo:  ticketTypeRepo,
		eventRepo:       eventRepo,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		providers:       providers,
		qrGenerator:     qrGenerator,
		mediaStorage:    mediaStorage,
		mailer:          mailer,
		logger:          logger,
	}, nil
}

func (s *ticketService) Purchase(ctx context.Context, userID string, req tickets.PurchaseRequest) (*tickets.Ticket, error) {
	if req.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	ticketType, err := s.ticketTypeRepo.GetByID(ctx, req.TicketTypeID)
	if err != nil {
		return nil, err
	}
	if ticketType.EventID != event.ID {
		return nil, fmt.Errorf("ticket type %s does not belong to event %s", ticketType.ID, event.ID)
	}
	if ticketType.Quantity < req.Quantity {
		return nil, fmt.Errorf("only %d tickets of type %s remain", ticketType.Quantity, ticketType.Name)
	}

	total := ticketType.Price * float64(req.Quantity)
	transaction, err := s.settlePayment(ctx, req.PaymentReference, total)
	if err != nil {
		return nil, err
	}

	if err := s.ticketTypeRepo.AdjustQuantity(ctx, ticketType.ID, -req.Quantity); err != nil {
		s.voidTransaction(ctx, transaction)
		return nil, err
	}

	ticket := &tickets.Ticket{
		ID:            uuid.NewString(),
		EventID:       event.ID,
		TicketTypeID:  ticketType.ID,
		UserID:        user.ID,
		Email:         user.Email,
		PhoneNumber:   user.PhoneNumber,
		Quantity:      req.Quantity,
		AmountPaid:    total,
		TransactionID: transaction.ID,
		PurchasedAt:   time.Now(),
	}

	qrPNG, err := s.attachQRCode(ctx, ticket)
	if err != nil {
		s.releaseBooking(ctx, transaction, ticketType.ID, req.Quantity)
		return nil, err
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		s.releaseBooking(ctx, transaction, ticketType.ID, req.Quantity)
		return nil, err
	}

	s.sendConfirmation(ctx, ticket, event, ticketType, qrPNG, false)

	s.logger.Info("Booked ticket ", ticket.ID)
	return ticket, nil
}

func (s *ticketService) ListForUser(ctx context.Context, userID string) ([]*tickets.Ticket, error) {
	query := tickets.NewTicketQuery()
	query.UserID = userID
	return s.ticketRepo.List(ctx, query)
}

func (s *ticketService) GetByID(ctx context.Context, userID, ticketID string) (*tickets.Ticket, error) {
	return s.ownedTicket(ctx, userID, ticketID)
}

func (s *ticketService) Update(ctx context.Context, userID, ticketID string, req tickets.TicketUpdateRequest) (*tickets.Ticket, error) {
	if req.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	ticket, err := s.ownedTicket(ctx, userID, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Scanned {
		return nil, fmt.Errorf("ticket %s has already been used", ticket.ID)
	}

	event, err := s.eventRepo.GetByID(ctx, ticket.EventID)
	if err != nil {
		return nil, err
	}

	oldType, err := s.ticketTypeRepo.GetByID(ctx, ticket.TicketTypeID)
	if err != nil {
		return nil, err
	}

	newTypeID := ticket.TicketTypeID
	if req.TicketTypeID != "" {
		newTypeID = req.TicketTypeID
	}
	newType := oldType
	if newTypeID != oldType.ID {
		newType, err = s.ticketTypeRepo.GetByID(ctx, newTypeID)
		if err != nil {
			return nil, err
		}
		if newType.EventID != ticket.EventID {
			return nil, fmt.Errorf("ticket type %s does not belong to event %s", newType.ID, ticket.EventID)
		}
	}

	available := newType.Quantity
	if newType.ID == oldType.ID {
		available += ticket.Quantity
	}
	if available < req.Quantity {
		return nil, fmt.Errorf("only %d tickets of type %s remain", available, newType.Name)
	}

	newTotal := newType.Price * float64(req.Quantity)
	transaction, err := s.transactionRepo.GetByID(ctx, ticket.TransactionID)
	if err != nil {
		return nil, err
	}

	var topUp *payments.Transaction
	if newTotal > ticket.AmountPaid {
		// Rebooking upward requires a fresh verified payment for the
		// difference.
		if req.PaymentReference == "" {
			return nil, fmt.Errorf("additional payment of %.2f required", newTotal-ticket.AmountPaid)
		}
		topUp, err = s.settlePayment(ctx, req.PaymentReference, newTotal-ticket.AmountPaid)
		if err != nil {
			return nil, err
		}
	}

	// Swap the stock allocation: release the old reservation first so a
	// resize within the same type cannot trip over itself.
	if err := s.ticketTypeRepo.AdjustQuantity(ctx, oldType.ID, ticket.Quantity); err != nil {
		if topUp != nil {
			s.voidTransaction(ctx, topUp)
		}
		return nil, err
	}
	if err := s.ticketTypeRepo.AdjustQuantity(ctx, newType.ID, -req.Quantity); err != nil {
		if adjErr := s.ticketTypeRepo.AdjustQuantity(ctx, oldType.ID, -ticket.Quantity); adjErr != nil {
			s.logger.Error("Failed to re-reserve ", ticket.Quantity, " tickets of type ", oldType.ID)
		}
		if topUp != nil {
			s.voidTransaction(ctx, topUp)
		}
		return nil, err
	}

	previous := *ticket
	undoRebooking := func() {
		if adjErr := s.ticketTypeRepo.AdjustQuantity(ctx, newType.ID, req.Quantity); adjErr != nil {
			s.logger.Error("Failed to release ", req.Quantity, " tickets of type ", newType.ID)
		}
		if adjErr := s.ticketTypeRepo.AdjustQuantity(ctx, oldType.ID, -previous.Quantity); adjErr != nil {
			s.logger.Error("Failed to re-reserve ", previous.Quantity, " tickets of type ", oldType.ID)
		}
		if topUp != nil {
			s.voidTransaction(ctx, topUp)
		}
	}

	ticket.TicketTypeID = newType.ID
	ticket.Quantity = req.Quantity
	ticket.AmountPaid = newTotal
	if topUp != nil {
		ticket.TransactionID = topUp.ID
	}

	qrPNG, err := s.attachQRCode(ctx, ticket)
	if err != nil {
		undoRebooking()
		return nil, err
	}

	if err := s.ticketRepo.UpdateByID(ctx, ticket); err != nil {
		undoRebooking()
		return nil, err
	}

	if newTotal < previous.AmountPaid {
		// The provider reversal runs after the rebooking is persisted so a
		// failure cannot leave money refunded for a booking that still holds.
		if err := s.refund(ctx, transaction, previous.AmountPaid-newTotal); err != nil {
			restore := previous
			if updErr := s.ticketRepo.UpdateByID(ctx, &restore); updErr != nil {
				s.logger.Error("Failed to restore ticket ", previous.ID, " after refund failure")
			}
			undoRebooking()
			return nil, err
		}
		transaction.Amount -= previous.AmountPaid - newTotal
		if err := s.transactionRepo.UpdateByID(ctx, transaction); err != nil {
			s.logger.Error("Failed to record partial refund on transaction ", transaction.ID)
		}
	}

	s.sendConfirmation(ctx, ticket, event, newType, qrPNG, true)

	s.logger.Info("Rebooked ticket ", ticket.ID)
	return ticket, nil
}

func (s *ticketService) Cancel(ctx context.Context, userID, ticketID string) error {
	ticket, err := s.ownedTicket(ctx, userID, ticketID)
	if err != nil {
		return err
	}
	if ticket.Scanned {
		return fmt.Errorf("ticket %s has already been used", ticket.ID)
	}

	transaction, err := s.transactionRepo.GetByID(ctx, ticket.TransactionID)
	if err != nil {
		return err
	}

	if err := s.ticketTypeRepo.AdjustQuantity(ctx, ticket.TicketTypeID, ticket.Quantity); err != nil {
		return err
	}
	if err := s.ticketRepo.DeleteByID(ctx, ticket.ID); err != nil {
		if adjErr := s.ticketTypeRepo.AdjustQuantity(ctx, ticket.TicketTypeID, -ticket.Quantity); adjErr != nil {
			s.logger.Error("Failed to re-reserve ", ticket.Quantity, " tickets of type ", ticket.TicketTypeID)
		}
		return err
	}

	// Money moves last so a storage or database failure cannot strand a
	// refunded but still-booked ticket.
	if err := s.refund(ctx, transaction, ticket.AmountPaid); err != nil {
		if createErr := s.ticketRepo.Create(ctx, ticket); createErr != nil {
			s.logger.Error("Failed to restore ticket ", ticket.ID, " after refund failure")
		}
		if adjErr := s.ticketTypeRepo.AdjustQuantity(ctx, ticket.TicketTypeID, -ticket.Quantity); adjErr != nil {
			s.logger.Error("Failed to re-reserve ", ticket.Quantity, " tickets of type ", ticket.TicketTypeID)
		}
		return err
	}
	transaction.Status = payments.StatusRefunded
	if err := s.transactionRepo.UpdateByID(ctx, transaction); err != nil {
		s.logger.Error("Failed to mark transaction ", transaction.ID, " as refunded")
	}

	if ticket.QRCodeRef != "" {
		if err := s.mediaStorage.Delete(ctx, ticket.QRCodeRef); err != nil {
			s.logger.Warn("Failed to delete QR image for ticket ", ticket.ID)
		}
	}

	s.logger.Info("Cancelled ticket ", ticket.ID)
	return nil
}

// settlePayment verifies the reference against the configured providers and
// records the completed transaction. A reference can settle only once.
func (s *ticketService) settlePayment(ctx context.Context, reference string, expectedAmount float64) (*payments.Transaction, error) {
	if reference == "" {
		return nil, fmt.Errorf("payment reference is required")
	}
	if existing, _ := s.transactionRepo.GetByReference(ctx, reference); existing != nil {
		return nil, fmt.Errorf("payment reference %s has already been used", reference)
	}

	var verification *payments.Verification
	var method string
	for _, provider := range s.providers {
		v, err := provider.Verify(ctx, reference)
		if err != nil {
			s.logger.Warn("Provider ", provider.Name(), " could not verify reference ", reference)
			continue
		}
		if v.Succeeded {
			verification = v
			method = provider.Name()
			break
		}
	}
	if verification == nil {
		return nil, fmt.Errorf("payment %s could not be verified", reference)
	}
	if verification.Amount+0.01 < expectedAmount {
		return nil, fmt.Errorf("payment of %.2f does not cover the total %.2f", verification.Amount, expectedAmount)
	}

	transaction := &payments.Transaction{
		ID:              uuid.NewString(),
		Amount:          verification.Amount,
		Status:          payments.StatusCompleted,
		Method:          method,
		Reference:       reference,
		DateTimeCreated: time.Now(),
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

// releaseBooking unwinds a settled purchase that could not be completed: the
// reserved stock is returned and the payment is voided.
func (s *ticketService) releaseBooking(ctx context.Context, transaction *payments.Transaction, ticketTypeID string, quantity int) {
	if err := s.ticketTypeRepo.AdjustQuantity(ctx, ticketTypeID, quantity); err != nil {
		s.logger.Error("Failed to restore ", quantity, " tickets of type ", ticketTypeID)
	}
	s.voidTransaction(ctx, transaction)
}

// voidTransaction refunds a settled payment in full and marks the transaction
// refunded.
func (s *ticketService) voidTransaction(ctx context.Context, transaction *payments.Transaction) {
	if err := s.refund(ctx, transaction, transaction.Amount); err != nil {
		s.logger.Error("Failed to refund transaction ", transaction.ID)
	}
	transaction.Status = payments.StatusRefunded
	if err := s.transactionRepo.UpdateByID(ctx, transaction); err != nil {
		s.logger.Error("Failed to mark transaction ", transaction.ID, " as refunded")
	}
}

// refund pushes the amount back through the provider that settled the
// transaction.
func (s *ticketService) refund(ctx context.Context, transaction *payments.Transaction, amount float64) error {
	if amount <= 0 {
		return nil
	}
	for _, provider := range s.providers {
		if provider.Name() == transaction.Method {
			if err := provider.Refund(ctx, transaction.Reference, amount); err != nil {
				return fmt.Errorf("failed to refund %.2f: %w", amount, err)
			}
			return nil
		}
	}
	return fmt.Errorf("no provider configured for method %s", transaction.Method)
}

// attachQRCode generates and stores the QR image, recording its name on the
// ticket. The PNG bytes are returned for the confirmation email.
func (s *ticketService) attachQRCode(ctx context.Context, ticket *tickets.Ticket) ([]byte, error) {
	code, err := s.qrGenerator.Generate(ticket.ID, ticket.EventID)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("qr/%s.png", ticket.ID)
	if _, err := s.mediaStorage.Save(ctx, name, "image/png", code.PNG); err != nil {
		return nil, err
	}

	ticket.QRCodeRef = name
	return code.PNG, nil
}

// sendConfirmation is best effort; a booked ticket is not rolled back over a
// mail failure.
func (s *ticketService) sendConfirmation(ctx context.Context, ticket *tickets.Ticket, event *events.Event, ticketType *events.TicketType, qrPNG []byte, isUpdate bool) {
	err := s.mailer.SendTicketConfirmation(ctx, tickets.ConfirmationEmail{
		Recipient:      ticket.Email,
		EventName:      event.Name,
		EventLocation:  event.Location,
		EventStartsAt:  event.StartsAt,
		EventEndsAt:    event.EndsAt,
		TicketTypeName: ticketType.Name,
		Quantity:       ticket.Quantity,
		AmountPaid:     ticket.AmountPaid,
		IsUpdate:       isUpdate,
		QRCodePNG:      qrPNG,
	})
	if err != nil {
		s.logger.Warn("Failed to send confirmation for ticket ", ticket.ID)
	}
}

func (s *ticketService) ownedTicket(ctx context.Context, userID, ticketID string) (*tickets.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.UserID != userID {
		return nil, fmt.Errorf("ticket %s is not owned by the requesting user", ticketID)
	}
	return ticket, nil
}
