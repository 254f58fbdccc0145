package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"healthcare-portal/internal/delivery/dto"
	"healthcare-portal/internal/service"
	"healthcare-portal/pkg/latency"

	"github.com/sirupsen/logrus"
)

var ErrIncompleteMessage = errors.New("name, email and message are required")

type ContactUsecase interface {
	SendMessage(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error)
}

type contactUsecase struct {
	log          *logrus.Logger
	delay        latency.Strategy
	eventService service.EventService
}

func NewContactUsecase(log *logrus.Logger, delay latency.Strategy, eventService service.EventService) ContactUsecase {
	if delay == nil {
		delay = latency.None()
	}
	return &contactUsecase{
		log:          log,
		delay:        delay,
		eventService: eventService,
	}
}

func (u *contactUsecase) SendMessage(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || message == "" {
		return nil, ErrIncompleteMessage
	}

	u.delay.Wait()
	u.eventService.ContactSubmitted(ctx, name, email, message)

	u.log.WithField("email", email).Info("Contact message received")

	return &dto.ContactResponse{
		Name:       name,
		Email:      email,
		ReceivedAt: time.Now().UTC(),
	}, nil
}
