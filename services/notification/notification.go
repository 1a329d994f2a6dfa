package notification

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

const (
	EventPaymentRequested = "payment.requested"
	EventPaymentApproved  = "payment.approved"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// Message is the payload pushed to websocket clients
type Message struct {
	Event        string `json:"event"`
	EmployeeID   uint   `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Month        string `json:"month"`
	Year         int    `json:"year"`
	Text         string `json:"text"`
}

type MessageBuilder struct {
	msg Message
}

func NewMessageBuilder(event string) *MessageBuilder {
	return &MessageBuilder{msg: Message{Event: event}}
}

func (b *MessageBuilder) Employee(id uint, name string) *MessageBuilder {
	b.msg.EmployeeID = id
	b.msg.EmployeeName = name
	return b
}

func (b *MessageBuilder) Period(month string, year int) *MessageBuilder {
	b.msg.Month = month
	b.msg.Year = year
	return b
}

func (b *MessageBuilder) Build() string {
	switch b.msg.Event {
	case EventPaymentApproved:
		b.msg.Text = fmt.Sprintf("Salary of %s for %s %d has been paid", b.msg.EmployeeName, b.msg.Month, b.msg.Year)
	default:
		b.msg.Text = fmt.Sprintf("Payment request for %s (%s %d) submitted", b.msg.EmployeeName, b.msg.Month, b.msg.Year)
	}
	data, err := json.Marshal(b.msg)
	if err != nil {
		return b.msg.Text
	}
	return string(data)
}
