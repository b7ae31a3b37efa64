//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/stretchr/testify/assert"
)

func TestTicketModel_ToDomain(t *testing.T) {
	ticketModel := &TicketModel{
		ID:            "test-id",
		EventID:       "event-id",
		TicketTypeID:  "ticket-type-id",
		UserID:        "user-id",
		Email:         "attendee@example.com",
		PhoneNumber:   "+254712345678",
		Quantity:      2,
		AmountPaid:    3000,
		TransactionID: "transaction-id",
		QRCodeRef:     "qr/test-id.png",
		Scanned:       true,
		PurchasedAt:   time.Now(),
	}

	ticket := ticketModel.ToDomain()

	assert.Equal(t, ticketModel.ID, ticket.ID)
	assert.Equal(t, ticketModel.EventID, ticket.EventID)
	assert.Equal(t, ticketModel.TicketTypeID, ticket.TicketTypeID)
	assert.Equal(t, ticketModel.UserID, ticket.UserID)
	assert.Equal(t, ticketModel.Email, ticket.Email)
	assert.Equal(t, ticketModel.Quantity, ticket.Quantity)
	assert.Equal(t, ticketModel.AmountPaid, ticket.AmountPaid)
	assert.Equal(t, ticketModel.TransactionID, ticket.TransactionID)
	assert.Equal(t, ticketModel.QRCodeRef, ticket.QRCodeRef)
	assert.Equal(t, ticketModel.Scanned, ticket.Scanned)
	assert.Equal(t, ticketModel.PurchasedAt, ticket.PurchasedAt)
}

func TestTicketModel_FromDomain(t *testing.T) {
	ticket := &tickets.Ticket{
		ID:            "test-id",
		EventID:       "event-id",
		TicketTypeID:  "ticket-type-id",
		UserID:        "user-id",
		Email:         "attendee@example.com",
		PhoneNumber:   "+254712345678",
		Quantity:      2,
		AmountPaid:    3000,
		TransactionID: "transaction-id",
		QRCodeRef:     "qr/test-id.png",
		Scanned:       false,
		PurchasedAt:   time.Now(),
	}

	ticketModel := &TicketModel{}
	ticketModel.FromDomain(ticket)

	assert.Equal(t, ticket.ID, ticketModel.ID)
	assert.Equal(t, ticket.EventID, ticketModel.EventID)
	assert.Equal(t, ticket.TicketTypeID, ticketModel.TicketTypeID)
	assert.Equal(t, ticket.UserID, ticketModel.UserID)
	assert.Equal(t, ticket.Email, ticketModel.Email)
	assert.Equal(t, ticket.Quantity, ticketModel.Quantity)
	assert.Equal(t, ticket.AmountPaid, ticketModel.AmountPaid)
	assert.Equal(t, ticket.TransactionID, ticketModel.TransactionID)
	assert.Equal(t, ticket.QRCodeRef, ticketModel.QRCodeRef)
	assert.Equal(t, ticket.Scanned, ticketModel.Scanned)
	assert.Equal(t, ticket.PurchasedAt, ticketModel.PurchasedAt)
}
