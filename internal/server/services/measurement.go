package services

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/logging"
	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/attachments"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mdterp/internal/server/storage"
	"github.com/dmitrijs2005/mdterp/internal/timex"
)

// ProofAttachmentName is the displayed name of a measurement's proof file.
const ProofAttachmentName = "Comprovante"

// MeasurementResult is returned by MeasurementService.Add. The proof upload
// is optional and its failure does not undo the measurement.
type MeasurementResult struct {
	Measurement *models.Measurement
	Proof       StepOutcome
	Attachment  *models.Attachment
}

// MeasurementList is an item's measurements with the derived balance.
type MeasurementList struct {
	Item         *models.ServiceItem
	Measurements []*models.Measurement
	Balance      float64
}

type MeasurementService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	attacher    attacher
	logger      logging.Logger
}

func NewMeasurementService(db *sql.DB, m repomanager.RepositoryManager, store storage.Store, logger logging.Logger) *MeasurementService {
	return &MeasurementService{
		db:          db,
		repomanager: m,
		attacher:    attacher{store: store, now: time.Now},
		logger:      logger.With("module", "measurement_service"),
	}
}

// Add records executed quantity against an item. The unit price is copied
// from the item at insert time. A negative quantity records a correction of
// an earlier measurement.
func (s *MeasurementService) Add(ctx context.Context, actor auth.Actor, in *models.Measurement, proof *models.Upload) (*MeasurementResult, error) {
	if math.IsNaN(in.Quantity) || math.IsInf(in.Quantity, 0) {
		return nil, validationError("quantity must be a finite number")
	}

	item, err := s.repomanager.Items(s.db).Get(ctx, in.ItemID)
	if err != nil {
		return nil, fmt.Errorf("error loading item: %w", err)
	}

	m := &models.Measurement{
		ItemID:      item.ID,
		Date:        timex.NilIfZero(in.Date),
		Description: common.NullIfEmpty(strings.TrimSpace(common.Deref(in.Description))),
		Quantity:    in.Quantity,
		UnitPrice:   item.UnitPrice,
		TotalPrice:  in.Quantity * item.UnitPrice,
		UserCreated: actor.DisplayName(),
	}
	if m.Date == nil {
		today := s.attacher.now().Truncate(24 * time.Hour)
		m.Date = &today
	}

	m, err = s.repomanager.Measurements(s.db).Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("error creating measurement: %w", err)
	}

	res := &MeasurementResult{Measurement: m}
	if proof != nil {
		repo := s.repomanager.Attachments(s.db, attachments.MeasurementAttachments)
		res.Attachment, err = s.attacher.attach(ctx, repo, actor, m.ID, ProofAttachmentName, proof)
		res.Proof = attempted(err)
		if err != nil {
			s.logger.Error(ctx, "measurement proof failed", "measurement", m.ID, "error", err)
		}
	}
	return res, nil
}

func (s *MeasurementService) List(ctx context.Context, itemID string) (*MeasurementList, error) {
	item, err := s.repomanager.Items(s.db).Get(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("error loading item: %w", err)
	}
	ms, err := s.repomanager.Measurements(s.db).ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("error listing measurements: %w", err)
	}
	return &MeasurementList{Item: item, Measurements: ms, Balance: models.Balance(item.Quantity, ms)}, nil
}
