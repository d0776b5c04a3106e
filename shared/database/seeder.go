package database

import (
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"shiftline-backend/shared/config"
	"shiftline-backend/shared/database/models"
	utils "shiftline-backend/shared/utils/auth"
)

// SeedDatabase populates a demo organization with users, locations, shifts,
// time-off requests, notifications and messages. It is a no-op when any user
// already exists.
func SeedDatabase() error {
	log.Println("🌱 Checking database seed data...")

	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("✅ Database seed data is up to date")
		return nil
	}

	log.Println("🔄 Seeding database with sample data...")

	org := models.Organization{
		Name:     "Sunrise Cafe & Bistro",
		PlanTier: "professional",
	}
	if err := DB.Create(&org).Error; err != nil {
		return err
	}

	cfg := config.GetConfig()
	hashedPassword, err := utils.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	rate := func(v string) *string { return &v }

	owner := models.User{
		OrganizationID: org.ID,
		Email:          cfg.SeedAdminEmail,
		Password:       hashedPassword,
		FirstName:      "Sarah",
		LastName:       "Mitchell",
		Phone:          "555-0100",
		Role:           models.RoleOwner,
		Position:       "General Manager",
		HourlyRate:     rate("35.00"),
	}
	manager := models.User{
		OrganizationID: org.ID,
		Email:          "manager@sunrisecafe.com",
		Password:       hashedPassword,
		FirstName:      "David",
		LastName:       "Chen",
		Phone:          "555-0101",
		Role:           models.RoleManager,
		Position:       "Shift Lead",
		HourlyRate:     rate("25.00"),
	}
	emp1 := models.User{
		OrganizationID: org.ID,
		Email:          "maria@sunrisecafe.com",
		Password:       hashedPassword,
		FirstName:      "Maria",
		LastName:       "Garcia",
		Phone:          "555-0102",
		Role:           models.RoleEmployee,
		Position:       "Server",
		HourlyRate:     rate("18.00"),
	}
	emp2 := models.User{
		OrganizationID: org.ID,
		Email:          "james@sunrisecafe.com",
		Password:       hashedPassword,
		FirstName:      "James",
		LastName:       "Wilson",
		Phone:          "555-0103",
		Role:           models.RoleEmployee,
		Position:       "Barista",
		HourlyRate:     rate("17.50"),
	}
	emp3 := models.User{
		OrganizationID: org.ID,
		Email:          "emily@sunrisecafe.com",
		Password:       hashedPassword,
		FirstName:      "Emily",
		LastName:       "Johnson",
		Phone:          "555-0104",
		Role:           models.RoleEmployee,
		Position:       "Cook",
		HourlyRate:     rate("22.00"),
	}
	emp4 := models.User{
		OrganizationID: org.ID,
		Email:          "omar@sunrisecafe.com",
		Password:       hashedPassword,
		FirstName:      "Omar",
		LastName:       "Hassan",
		Phone:          "555-0105",
		Role:           models.RoleEmployee,
		Position:       "Server",
		HourlyRate:     rate("18.00"),
	}

	staff := []*models.User{&owner, &manager, &emp1, &emp2, &emp3, &emp4}
	for _, u := range staff {
		if err := DB.Create(u).Error; err != nil {
			return err
		}
	}

	loc1 := models.Location{
		OrganizationID: org.ID,
		Name:           "Downtown Branch",
		Address:        "123 Main Street, Suite 100",
		Timezone:       "America/New_York",
	}
	loc2 := models.Location{
		OrganizationID: org.ID,
		Name:           "Westside Location",
		Address:        "456 Oak Avenue",
		Timezone:       "America/New_York",
	}
	if err := DB.Create(&loc1).Error; err != nil {
		return err
	}
	if err := DB.Create(&loc2).Error; err != nil {
		return err
	}

	locations := []models.Location{loc1, loc2}
	today := time.Now()
	shiftsCreated := 0

	for dayOffset := -3; dayOffset <= 7; dayOffset++ {
		day := today.AddDate(0, 0, dayOffset)

		status := models.ShiftScheduled
		if dayOffset < 0 {
			status = models.ShiftCompleted
		} else if dayOffset <= 2 {
			status = models.ShiftPublished
		}

		for i := 0; i < 3+rand.Intn(3); i++ {
			emp := staff[rand.Intn(len(staff))]
			loc := locations[rand.Intn(len(locations))]
			startHour := 6 + rand.Intn(10)
			duration := 4 + rand.Intn(5)

			start := time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, day.Location())
			userID := emp.ID
			shift := models.Shift{
				OrganizationID: org.ID,
				LocationID:     loc.ID,
				UserID:         &userID,
				StartTime:      start,
				EndTime:        start.Add(time.Duration(duration) * time.Hour),
				Position:       emp.Position,
				Status:         status,
			}
			if err := DB.Create(&shift).Error; err != nil {
				return err
			}
			shiftsCreated++
		}
	}

	timeOffRequests := []models.TimeOffRequest{
		{
			OrganizationID: org.ID,
			UserID:         emp1.ID,
			StartDate:      today.AddDate(0, 0, 5),
			EndDate:        today.AddDate(0, 0, 8),
			Type:           models.TimeOffVacation,
			Status:         models.RequestPending,
			Reason:         "Family vacation planned for the holiday weekend",
		},
		{
			OrganizationID: org.ID,
			UserID:         emp2.ID,
			StartDate:      today.AddDate(0, 0, 2),
			EndDate:        today.AddDate(0, 0, 3),
			Type:           models.TimeOffSick,
			Status:         models.RequestApproved,
			Reason:         "Doctor's appointment and recovery",
		},
		{
			OrganizationID: org.ID,
			UserID:         emp4.ID,
			StartDate:      today.AddDate(0, 0, 10),
			EndDate:        today.AddDate(0, 0, 12),
			Type:           models.TimeOffPersonal,
			Status:         models.RequestPending,
			Reason:         "Moving to new apartment",
		},
	}
	for i := range timeOffRequests {
		if err := DB.Create(&timeOffRequests[i]).Error; err != nil {
			return err
		}
	}

	notifications := []models.Notification{
		{
			OrganizationID: org.ID,
			UserID:         owner.ID,
			Type:           models.NotificationTimeOffApproved,
			Title:          "Time Off Request",
			Message:        "Maria Garcia requested vacation from Feb 15 - Feb 18",
		},
		{
			OrganizationID: org.ID,
			UserID:         owner.ID,
			Type:           models.NotificationSchedulePublished,
			Title:          "Schedule Published",
			Message:        "The weekly schedule has been published for all staff",
			IsRead:         true,
		},
		{
			OrganizationID: org.ID,
			UserID:         emp1.ID,
			Type:           models.NotificationShiftAssigned,
			Title:          "New Shift Assigned",
			Message:        "You have been assigned a shift on Monday, 9:00 AM - 5:00 PM",
		},
	}
	for i := range notifications {
		if err := DB.Create(&notifications[i]).Error; err != nil {
			return err
		}
	}

	recipient := func(id uuid.UUID) *uuid.UUID { return &id }
	messages := []models.Message{
		{
			OrganizationID: org.ID,
			SenderID:       owner.ID,
			Subject:        "Welcome to ShiftLine!",
			Body:           "Hi everyone! We are now using ShiftLine for all scheduling and time-off management. Please check the schedule regularly and submit any time-off requests through the system. If you have any questions, feel free to reach out!",
			IsBroadcast:    true,
		},
		{
			OrganizationID: org.ID,
			SenderID:       emp1.ID,
			RecipientID:    recipient(manager.ID),
			Subject:        "Schedule question for next week",
			Body:           "Hi David, I noticed I'm scheduled for a closing shift on Tuesday and an opening shift on Wednesday. Would it be possible to swap one of those? I'd appreciate the extra rest time between shifts.",
		},
		{
			OrganizationID: org.ID,
			SenderID:       manager.ID,
			RecipientID:    recipient(emp1.ID),
			Subject:        "Re: Schedule question for next week",
			Body:           "Hi Maria, I'll look into that and see if we can adjust the schedule. Let me check with the rest of the team first.",
		},
	}
	for i := range messages {
		if err := DB.Create(&messages[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Database seeding completed (%d users, %d locations, %d shifts created)",
		len(staff), len(locations), shiftsCreated)
	log.Printf("✅ Login with: %s / %s", cfg.SeedAdminEmail, cfg.SeedAdminPassword)

	return nil
}
