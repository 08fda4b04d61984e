package services

import (
	"context"
	"fmt"

	"github.com/cstorehq/store-ops-be/internal/core/assistant"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/repositories"
)

// Assistant context sizes: recent shifts and open alerts pulled per chat turn.
const (
	assistantShiftContext = 10
	assistantAlertContext = 5
)

type AssistantService struct {
	client    *assistant.Client
	storeRepo repositories.StoreRepo
	shiftRepo repositories.ShiftReportRepo
	alertRepo repositories.AlertRepo
}

func NewAssistantService(
	client *assistant.Client,
	storeRepo repositories.StoreRepo,
	shiftRepo repositories.ShiftReportRepo,
	alertRepo repositories.AlertRepo,
) *AssistantService {
	return &AssistantService{
		client:    client,
		storeRepo: storeRepo,
		shiftRepo: shiftRepo,
		alertRepo: alertRepo,
	}
}

// Chat loads the store's recent shifts and open alerts as context and
// forwards the user message to the language model.
func (s *AssistantService) Chat(ctx context.Context, storeID, message string) (string, error) {
	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return "", fmt.Errorf("store not found: %w", err)
	}

	reports, err := s.shiftRepo.ListRecentByStore(storeID, assistantShiftContext)
	if err != nil {
		return "", fmt.Errorf("failed to load shift context: %w", err)
	}

	alerts, err := s.alertRepo.ListUnresolved(storeID, assistantAlertContext)
	if err != nil {
		return "", fmt.Errorf("failed to load alert context: %w", err)
	}

	shiftLines := make([]assistant.ShiftLine, len(reports))
	for i, r := range reports {
		shiftLines[i] = assistant.ShiftLine{
			Date:         r.ReportDate,
			ShiftName:    r.ShiftName,
			GrossSales:   r.GrossSales,
			Transactions: r.TotalTransactions,
			CashVariance: r.CashVariance,
		}
	}

	alertLines := make([]assistant.AlertLine, len(alerts))
	for i, a := range alerts {
		alertLines[i] = assistant.AlertLine{
			Title:     a.Title,
			Severity:  a.Severity,
			CreatedAt: a.CreatedAt,
		}
	}

	prompt := assistant.BuildSystemPrompt(store.Name, shiftLines, alertLines)
	return s.client.GenerateReply(ctx, prompt, message)
}
