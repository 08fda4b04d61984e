package notify

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	qrcode "github.com/skip2/go-qrcode"
	_ "github.com/lib/pq"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	waLog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"
	_ "modernc.org/sqlite"
)

// WhatsAppSender implements Sender over whatsmeow. The device session is
// persisted in postgres when storeURL is set, otherwise in a local sqlite
// file.
type WhatsAppSender struct {
	client   *whatsmeow.Client
	storeURL string
}

func NewWhatsAppSender(storeURL string) *WhatsAppSender {
	return &WhatsAppSender{storeURL: storeURL}
}

func (w *WhatsAppSender) Name() string {
	return "whatsapp"
}

func (w *WhatsAppSender) initStore() (*sqlstore.Container, error) {
	ctx := context.Background()
	dbLog := waLog.Stdout("WhatsApp-Store", "ERROR", true)

	if w.storeURL != "" {
		log.Println("🌐 Using PostgreSQL database for WhatsApp store")
		container, err := sqlstore.New(ctx, "postgres", w.storeURL, dbLog)
		if err != nil {
			return nil, fmt.Errorf("failed to init PostgreSQL store: %w", err)
		}
		if err := container.Upgrade(ctx); err != nil {
			return nil, fmt.Errorf("failed to upgrade PostgreSQL schema: %w", err)
		}
		return container, nil
	}

	log.Println("💾 Using local SQLite store (store.db)")
	rawDB, err := sql.Open("sqlite", "file:store.db?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	if _, err = rawDB.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		log.Printf("⚠️ Failed to enable foreign_keys pragma: %v", err)
	}

	container := sqlstore.NewWithDB(rawDB, "sqlite", dbLog)
	if err := container.Upgrade(ctx); err != nil {
		return nil, fmt.Errorf("failed to upgrade SQLite schema: %w", err)
	}
	return container, nil
}

// Connect initializes the device session. First run prints a pairing QR to
// the terminal and saves it as a PNG for scanning.
func (w *WhatsAppSender) Connect() error {
	container, err := w.initStore()
	if err != nil {
		return fmt.Errorf("failed to init store: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get device: %w", err)
	}

	clientLog := waLog.Stdout("WhatsApp", "INFO", true)
	w.client = whatsmeow.NewClient(deviceStore, clientLog)

	if w.client.Store.ID == nil {
		qrChan, _ := w.client.GetQRChannel(context.Background())
		if err := w.client.Connect(); err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}

		for evt := range qrChan {
			switch evt.Event {
			case "code":
				fmt.Println("🔗 Scan this QR in WhatsApp:", evt.Code)
				if err := qrcode.WriteFile(evt.Code, qrcode.Medium, 256, "whatsapp-qr.png"); err != nil {
					log.Printf("Failed to generate QR image: %v", err)
				} else {
					fmt.Println("🖼️ QR code saved to whatsapp-qr.png")
				}
			case "success":
				fmt.Println("✅ WhatsApp login successful!")
				return nil
			case "timeout":
				return fmt.Errorf("QR code timeout")
			}
		}
		return nil
	}

	if err := w.client.Connect(); err != nil {
		return fmt.Errorf("failed to reconnect: %w", err)
	}
	log.Println("✅ Reconnected to WhatsApp.")
	return nil
}

func (w *WhatsAppSender) Disconnect() {
	if w.client != nil {
		w.client.Disconnect()
		log.Println("🔌 WhatsApp client disconnected")
	}
}

func (w *WhatsAppSender) SendMessage(phoneNumber, message string) error {
	if w.client == nil {
		return fmt.Errorf("client not initialized")
	}

	jid := types.NewJID(phoneNumber, "s.whatsapp.net")
	msg := &waE2E.Message{
		Conversation: proto.String(message),
	}

	_, err := w.client.SendMessage(context.Background(), jid, msg)
	return err
}

func (w *WhatsAppSender) IsConnected() bool {
	return w.client != nil && w.client.IsConnected()
}
