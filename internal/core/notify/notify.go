package notify

import (
	"fmt"

	"github.com/cstorehq/store-ops-be/internal/shared/utils"
)

// Sender delivers a text message to a phone number.
type Sender interface {
	Connect() error
	Disconnect()
	SendMessage(phoneNumber, message string) error
	IsConnected() bool
	Name() string
}

// Service is the channel-agnostic notification layer used by the alert
// service and the daily digest.
type Service struct {
	sender Sender
}

func NewService(sender Sender) *Service {
	return &Service{sender: sender}
}

// SendToManager delivers a message to a store manager's phone.
func (s *Service) SendToManager(phone, message string) error {
	if phone == "" {
		return fmt.Errorf("manager phone is empty")
	}
	if err := s.sender.SendMessage(phone, message); err != nil {
		return fmt.Errorf("send via %s failed: %w", s.sender.Name(), err)
	}

	utils.LogInfo("notification sent", map[string]interface{}{
		"channel": s.sender.Name(),
		"to":      phone,
	})
	return nil
}

// Connect brings the underlying channel online.
func (s *Service) Connect() error {
	return s.sender.Connect()
}

// Disconnect shuts the channel down.
func (s *Service) Disconnect() {
	s.sender.Disconnect()
}
