package models

// Role is the three-tier organization role. Owner capabilities include
// manager capabilities, which include employee capabilities.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ValidRole reports whether r is a known role value.
func ValidRole(r Role) bool {
	switch r {
	case RoleOwner, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// ShiftStatus is the lifecycle status of a shift.
type ShiftStatus string

const (
	ShiftScheduled ShiftStatus = "scheduled"
	ShiftPublished ShiftStatus = "published"
	ShiftCompleted ShiftStatus = "completed"
	ShiftCancelled ShiftStatus = "cancelled"
)

// ValidShiftStatus reports whether s is a known shift status.
func ValidShiftStatus(s ShiftStatus) bool {
	switch s {
	case ShiftScheduled, ShiftPublished, ShiftCompleted, ShiftCancelled:
		return true
	}
	return false
}

// TimeOffType is the category of a time-off request.
type TimeOffType string

const (
	TimeOffVacation TimeOffType = "vacation"
	TimeOffSick     TimeOffType = "sick"
	TimeOffPersonal TimeOffType = "personal"
	TimeOffUnpaid   TimeOffType = "unpaid"
)

// ValidTimeOffType reports whether t is a known time-off type.
func ValidTimeOffType(t TimeOffType) bool {
	switch t {
	case TimeOffVacation, TimeOffSick, TimeOffPersonal, TimeOffUnpaid:
		return true
	}
	return false
}

// RequestStatus is the approval status of a time-off or swap request.
// Pending requests may move to approved or denied; both are terminal.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestDenied   RequestStatus = "denied"
)

// NotificationType identifies the domain event a notification was derived from.
type NotificationType string

const (
	NotificationSchedulePublished NotificationType = "schedule_published"
	NotificationShiftChanged      NotificationType = "shift_changed"
	NotificationShiftAssigned     NotificationType = "shift_assigned"
	NotificationTimeOffApproved   NotificationType = "time_off_approved"
	NotificationTimeOffDenied     NotificationType = "time_off_denied"
	NotificationSwapRequested     NotificationType = "shift_swap_requested"
	NotificationSwapApproved      NotificationType = "shift_swap_approved"
	NotificationSwapDenied        NotificationType = "shift_swap_denied"
	NotificationAnnouncement      NotificationType = "announcement"
)
