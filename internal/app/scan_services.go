package app

import (
	"context"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
	"github.com/google/uuid"
)

type scanService struct {
	ticketRepo  tickets.TicketRepository
	scanRepo    tickets.ScanRepository
	qrGenerator tickets.QRCodeGenerator
	logger      logger.Logger
}

// NewScanService creates a new instance of ScanService
func NewScanService(
	ticketRepo tickets.TicketRepository,
	scanRepo tickets.ScanRepository,
	qrGenerator tickets.QRCodeGenerator,
	logger logger.Logger,
) (tickets.ScanService, error) {
	return &scanService{
		ticketRepo:  ticketRepo,
		scanRepo:    scanRepo,
		qrGenerator: qrGenerator,
		logger:      logger,
	}, nil
}

func (s *scanService) ValidateQRCode(ctx context.Context, scannerID, qrContent string) (*tickets.ScanResult, error) {
	ticketID, eventID, err := s.qrGenerator.Decode(qrContent)
	if err != nil {
		return nil, err
	}

	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, tickets.ErrTicketNotFound
	}
	if ticket.EventID != eventID {
		// Signed payload references a different event; treat as forged.
		return nil, tickets.ErrInvalidQRCode
	}
	if ticket.Scanned {
		return nil, tickets.ErrAlreadyScanned
	}

	ticket.Scanned = true
	if err := s.ticketRepo.UpdateByID(ctx, ticket); err != nil {
		return nil, err
	}

	scan := &tickets.Scan{
		ID:        uuid.NewString(),
		TicketID:  ticket.ID,
		ScannedAt: time.Now(),
		ScannedBy: scannerID,
	}
	if err := s.scanRepo.Create(ctx, scan); err != nil {
		return nil, err
	}

	s.logger.Info("Validated ticket ", ticket.ID, " at the gate")
	return &tickets.ScanResult{
		TicketID:  ticket.ID,
		EventID:   ticket.EventID,
		ScannedAt: scan.ScannedAt,
		ScannedBy: scannerID,
	}, nil
}
