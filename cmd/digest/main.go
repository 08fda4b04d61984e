package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/cstorehq/store-ops-be/internal/core/notify"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/models"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/repositories"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/services"
	"github.com/cstorehq/store-ops-be/internal/shared/config"
	"github.com/cstorehq/store-ops-be/internal/shared/database"
	"github.com/cstorehq/store-ops-be/internal/shared/utils"
)

// digest sends every active store's dashboard snapshot to its manager's
// phone on a cron schedule.
func main() {
	utils.InitLogger()

	cfg := config.LoadConfig()
	log.Printf("🚀 Starting store-ops-digest (schedule: %s)", cfg.DigestSchedule)

	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	storeRepo := repositories.NewStoreRepo(db.GORM)
	shiftRepo := repositories.NewShiftReportRepo(db.GORM)
	alertRepo := repositories.NewAlertRepo(db.GORM)
	dashboardService := services.NewDashboardService(shiftRepo, alertRepo)

	sender := notify.NewWhatsAppSender(cfg.WhatsAppStoreURL)
	if err := sender.Connect(); err != nil {
		log.Fatalf("❌ Failed to connect WhatsApp channel: %v", err)
	}
	notifier := notify.NewService(sender)
	defer notifier.Disconnect()

	c := cron.New()
	_, err := c.AddFunc(cfg.DigestSchedule, func() {
		runDigest(storeRepo, dashboardService, notifier)
	})
	if err != nil {
		log.Fatalf("❌ Invalid digest schedule %q: %v", cfg.DigestSchedule, err)
	}

	c.Start()
	log.Println("⏰ Digest scheduler started")

	// Block until interrupted
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("⏰ Stopping digest scheduler...")
	c.Stop()
}

func runDigest(storeRepo repositories.StoreRepo, dashboards *services.DashboardService, notifier *notify.Service) {
	stores, err := storeRepo.List(true)
	if err != nil {
		utils.LogError("digest: failed to list stores", err, nil)
		return
	}

	now := time.Now()
	for _, store := range stores {
		if store.ManagerPhone == "" {
			continue
		}

		snapshot, err := dashboards.BuildSnapshot(store.ID.String(), now)
		if err != nil {
			utils.LogError("digest: failed to build snapshot", err, map[string]interface{}{
				"store_id": store.ID.String(),
			})
			continue
		}
		if snapshot == nil {
			// Store has no reports yet; nothing to send.
			continue
		}

		if err := notifier.SendToManager(store.ManagerPhone, formatDigest(&store, snapshot)); err != nil {
			utils.LogError("digest: failed to send", err, map[string]interface{}{
				"store_id": store.ID.String(),
			})
		}
	}
}

func formatDigest(store *models.Store, s *models.DashboardStats) string {
	return fmt.Sprintf(
		"📊 %s — daily digest for %s\n"+
			"Shifts: %d\n"+
			"Total sales: $%s (fuel $%s, inside $%s)\n"+
			"Customers: %d\n"+
			"Cash variance: $%s\n"+
			"Month to date: $%s\n"+
			"Sales vs 7-day avg: %+.1f%%",
		store.Name, s.Date,
		s.ShiftCount,
		s.TotalSales.StringFixed(2), s.FuelSales.StringFixed(2), s.InsideSales.StringFixed(2),
		s.CustomerCount,
		s.CashVariance.StringFixed(2),
		s.MonthlySales.StringFixed(2),
		s.AverageChange.Sales,
	)
}
