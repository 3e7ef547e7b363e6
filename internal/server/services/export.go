package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mdterp/internal/timex"
)

var itemExportHeader = []string{
	"id", "description", "unit", "quantity", "unit_price", "total_price",
	"measured", "balance", "status", "date", "client_deadline", "user_created",
}

type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewExportService(db *sql.DB, m repomanager.RepositoryManager) *ExportService {
	return &ExportService{db: db, repomanager: m}
}

// ItemsCSV renders the items of a contract as CSV and suggests a file name.
// Non-admins see zero prices.
func (s *ExportService) ItemsCSV(ctx context.Context, actor auth.Actor, contractID string) ([]byte, string, error) {
	items, err := s.repomanager.Items(s.db).ListByContract(ctx, contractID)
	if err != nil {
		return nil, "", fmt.Errorf("error listing items: %w", err)
	}

	var buf bytes.Buffer
	if err := writeItemsCSV(&buf, items, actor.IsAdmin()); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("itens-%s.csv", contractID), nil
}

func writeItemsCSV(buf *bytes.Buffer, items []*models.ServiceItem, withPrices bool) error {
	w := csv.NewWriter(buf)
	if err := w.Write(itemExportHeader); err != nil {
		return err
	}
	for _, it := range items {
		unitPrice, totalPrice := it.UnitPrice, it.TotalPrice
		if !withPrices {
			unitPrice, totalPrice = 0, 0
		}
		if err := w.Write([]string{
			it.ID,
			it.Description,
			it.Unit,
			formatNumber(it.Quantity),
			formatNumber(unitPrice),
			formatNumber(totalPrice),
			formatNumber(it.MeasuredTotal),
			formatNumber(it.Balance()),
			string(it.Status),
			timex.FormatDate(&it.Date),
			timex.FormatDate(it.ClientDeadline),
			it.UserCreated,
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
