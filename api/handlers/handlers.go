// Package handlers implements the REST API over the scheduling domain.
//
// Every handler resolves the acting user from the request context (set by
// the auth middleware), applies the role and tenant checks, performs the
// state transition through the shared database layer, and hands side
// effects to the notification service.
package handlers

import (
	"errors"

	"shiftline-backend/api/services"
	"shiftline-backend/shared/database"
	"shiftline-backend/shared/logger"
)

// errAlreadyReviewed is returned when a review lost the race against a
// concurrent reviewer and found the request no longer pending.
var errAlreadyReviewed = errors.New("request has already been reviewed")

// notifier returns the fan-out service bound to the current database.
// Constructed per call so tests swapping database.DB are picked up.
func notifier() *services.NotificationService {
	return services.NewNotificationService(database.DB, logger.GetLogger())
}
