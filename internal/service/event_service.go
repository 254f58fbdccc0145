package service

import (
	"context"
	"time"

	"healthcare-portal/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Routing keys
const (
	EventRecordCreated    = "record.created"
	EventRecordResponded  = "record.responded"
	EventContactSubmitted = "contact.submitted"
)

// EventPublisher delivers a payload under a routing key
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

type logEventPublisher struct {
	log *logrus.Logger
}

// NewLogEventPublisher writes events to the log instead of a broker
func NewLogEventPublisher(log *logrus.Logger) EventPublisher {
	return &logEventPublisher{log: log}
}

func (p *logEventPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	p.log.WithFields(logrus.Fields{
		"routing_key": routingKey,
		"payload":     payload,
	}).Info("Event published")
	return nil
}

type RecordEvent struct {
	RecordID      string              `json:"record_id"`
	PatientID     string              `json:"patient_id"`
	PatientName   string              `json:"patient_name"`
	Status        entity.RecordStatus `json:"status"`
	DateSubmitted string              `json:"date_submitted"`
	DoctorID      string              `json:"doctor_id,omitempty"`
	DoctorName    string              `json:"doctor_name,omitempty"`
	OccurredAt    time.Time           `json:"occurred_at"`
}

type ContactEvent struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventService turns domain changes into published events.
// Publishing failures are logged and never returned to the caller.
type EventService interface {
	RecordCreated(ctx context.Context, record *entity.HealthRecord)
	RecordResponded(ctx context.Context, record *entity.HealthRecord)
	ContactSubmitted(ctx context.Context, name, email, message string)
}

type eventService struct {
	log       *logrus.Logger
	publisher EventPublisher
}

func NewEventService(log *logrus.Logger, publisher EventPublisher) EventService {
	return &eventService{
		log:       log,
		publisher: publisher,
	}
}

func (s *eventService) RecordCreated(ctx context.Context, record *entity.HealthRecord) {
	s.publish(ctx, EventRecordCreated, newRecordEvent(record))
}

func (s *eventService) RecordResponded(ctx context.Context, record *entity.HealthRecord) {
	s.publish(ctx, EventRecordResponded, newRecordEvent(record))
}

func (s *eventService) ContactSubmitted(ctx context.Context, name, email, message string) {
	s.publish(ctx, EventContactSubmitted, ContactEvent{
		Name:       name,
		Email:      email,
		Message:    message,
		OccurredAt: time.Now().UTC(),
	})
}

func (s *eventService) publish(ctx context.Context, routingKey string, payload interface{}) {
	if err := s.publisher.Publish(ctx, routingKey, payload); err != nil {
		s.log.Warnf("Failed to publish %s event: %+v", routingKey, err)
	}
}

func newRecordEvent(record *entity.HealthRecord) RecordEvent {
	return RecordEvent{
		RecordID:      record.ID,
		PatientID:     record.PatientID,
		PatientName:   record.PatientName,
		Status:        record.Status,
		DateSubmitted: record.DateSubmitted.Format("2006-01-02"),
		DoctorID:      record.DoctorID,
		DoctorName:    record.DoctorName,
		OccurredAt:    time.Now().UTC(),
	}
}
