package services

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"shiftline-backend/shared/database/models"
)

// NotificationService translates domain state transitions into per-recipient
// notification records. It is never invoked directly by a client.
//
// Fan-out is best effort and deliberately not atomic with the originating
// write: a failed insert is logged and skipped, and earlier inserts stay
// committed. Notifications are secondary effects and must never roll back or
// block the primary state transition.
type NotificationService struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewNotificationService creates a notification service bound to db.
func NewNotificationService(db *gorm.DB, log *zap.Logger) *NotificationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &NotificationService{db: db, log: log}
}

func (s *NotificationService) deliver(n *models.Notification) {
	if err := s.db.Create(n).Error; err != nil {
		s.log.Error("notification delivery failed",
			zap.String("type", string(n.Type)),
			zap.String("recipient", n.UserID.String()),
			zap.Error(err),
		)
	}
}

// TimeOffReviewed notifies the request owner of an approval or denial.
func (s *NotificationService) TimeOffReviewed(req *models.TimeOffRequest) {
	nType := models.NotificationTimeOffApproved
	title := "Time off approved"
	message := fmt.Sprintf("Your %s request from %s to %s was approved.",
		req.Type, req.StartDate.Format("Jan 2, 2006"), req.EndDate.Format("Jan 2, 2006"))
	if req.Status == models.RequestDenied {
		nType = models.NotificationTimeOffDenied
		title = "Time off denied"
		message = fmt.Sprintf("Your %s request from %s to %s was denied.",
			req.Type, req.StartDate.Format("Jan 2, 2006"), req.EndDate.Format("Jan 2, 2006"))
	}

	s.deliver(&models.Notification{
		OrganizationID: req.OrganizationID,
		UserID:         req.UserID,
		Type:           nType,
		Title:          title,
		Message:        message,
	})
}

// SwapRequested notifies the target user that a swap was proposed to them.
func (s *NotificationService) SwapRequested(swap *models.ShiftSwapRequest, requester *models.User) {
	s.deliver(&models.Notification{
		OrganizationID: swap.OrganizationID,
		UserID:         swap.TargetUserID,
		Type:           models.NotificationSwapRequested,
		Title:          "Shift swap requested",
		Message: fmt.Sprintf("%s %s asked to swap a shift with you.",
			requester.FirstName, requester.LastName),
	})
}

// SwapReviewed notifies the requester of the outcome, and the target user
// when the swap was approved and the shift is now theirs.
func (s *NotificationService) SwapReviewed(swap *models.ShiftSwapRequest, shift *models.Shift) {
	if swap.Status == models.RequestApproved {
		s.deliver(&models.Notification{
			OrganizationID: swap.OrganizationID,
			UserID:         swap.RequesterID,
			Type:           models.NotificationSwapApproved,
			Title:          "Shift swap approved",
			Message: fmt.Sprintf("Your swap request for the shift on %s was approved.",
				shift.StartTime.Format("Jan 2, 2006")),
		})
		s.deliver(&models.Notification{
			OrganizationID: swap.OrganizationID,
			UserID:         swap.TargetUserID,
			Type:           models.NotificationShiftAssigned,
			Title:          "Shift assigned",
			Message: fmt.Sprintf("A shift on %s was assigned to you through a swap.",
				shift.StartTime.Format("Jan 2, 2006")),
		})
		return
	}

	s.deliver(&models.Notification{
		OrganizationID: swap.OrganizationID,
		UserID:         swap.RequesterID,
		Type:           models.NotificationSwapDenied,
		Title:          "Shift swap denied",
		Message: fmt.Sprintf("Your swap request for the shift on %s was denied.",
			shift.StartTime.Format("Jan 2, 2006")),
	})
}

// ShiftAssigned notifies a user a shift was scheduled for them.
func (s *NotificationService) ShiftAssigned(shift *models.Shift) {
	if shift.UserID == nil {
		return
	}
	s.deliver(&models.Notification{
		OrganizationID: shift.OrganizationID,
		UserID:         *shift.UserID,
		Type:           models.NotificationShiftAssigned,
		Title:          "New shift assigned",
		Message: fmt.Sprintf("You have been scheduled for a shift on %s.",
			shift.StartTime.Format("Jan 2, 2006")),
	})
}

// MessageSent fans a message out to its recipients: the named recipient for
// a direct message, or every active user in the organization except the
// sender for a broadcast.
func (s *NotificationService) MessageSent(msg *models.Message, sender *models.User) {
	title := msg.Subject
	body := fmt.Sprintf("%s %s: %s", sender.FirstName, sender.LastName, msg.Subject)

	if !msg.IsBroadcast && msg.RecipientID != nil {
		s.deliver(&models.Notification{
			OrganizationID: msg.OrganizationID,
			UserID:         *msg.RecipientID,
			Type:           models.NotificationAnnouncement,
			Title:          title,
			Message:        body,
		})
		return
	}

	var recipients []models.User
	err := s.db.
		Where("organization_id = ? AND is_active = ? AND id <> ?",
			msg.OrganizationID, true, msg.SenderID).
		Find(&recipients).Error
	if err != nil {
		s.log.Error("broadcast recipient lookup failed", zap.Error(err))
		return
	}

	for i := range recipients {
		s.deliver(&models.Notification{
			OrganizationID: msg.OrganizationID,
			UserID:         recipients[i].ID,
			Type:           models.NotificationAnnouncement,
			Title:          title,
			Message:        body,
		})
	}
}
