package usecase

import (
	"context"
	"sort"

	"healthcare-portal/internal/delivery/http/middleware"
	"healthcare-portal/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// sortByDateDesc orders records newest first; records sharing a date keep their store order
func sortByDateDesc(records []entity.HealthRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DateSubmitted.After(records[j].DateSubmitted)
	})
}

func countPending(records []entity.HealthRecord) int {
	n := 0
	for i := range records {
		if records[i].IsPending() {
			n++
		}
	}
	return n
}

// callerWithType returns the session user when it has the given user type
func callerWithType(ctx context.Context, userType entity.UserType) (*entity.User, error) {
	user, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	if user.UserType != userType {
		return nil, ErrForbidden
	}
	return user, nil
}

// withRequestID tags log lines with the id the request log middleware assigned
func withRequestID(ctx context.Context, log *logrus.Logger) *logrus.Entry {
	return log.WithField("request_id", middleware.GetRequestIDFromContext(ctx))
}
