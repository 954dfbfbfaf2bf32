// Package fixture builds sample participant snapshots.
//
// The builder stands in for the upstream data-access collaborator in
// tests and in the CLI's demo path. All dates are derived from the caller
// supplied reference time, so a snapshot built against a pinned clock
// exercises every alert rule deterministically.
package fixture

import (
	"time"

	"github.com/opencare-au/profileview/internal/profile"
)

const dateLayout = "2006-01-02"

func day(now time.Time, offsetDays int) string {
	return now.AddDate(0, 0, offsetDays).Format(dateLayout)
}

// Sample builds a representative snapshot relative to now.
//
// The shape is chosen to light up every derivation path: a plan expiring
// inside the 90-day window with one over-committed budget category, a
// document inside the expiry window and one beyond it plus one already
// expired, open follow-ups on both a note and a communication, and a mix
// of active and completed agreements.
func Sample(now time.Time, gen IDGenerator) *profile.Data {
	participantID := gen.NewID()
	activePlanID := gen.NewID()
	oldPlanID := gen.NewID()
	providerID := gen.NewID()

	activePlan := profile.NDISPlan{
		ID:             activePlanID,
		ParticipantID:  participantID,
		PlanNumber:     "PLN-2024-0042",
		PlanStartDate:  day(now, -320),
		PlanEndDate:    day(now, 45),
		PlanStatus:     "active",
		ManagementType: "plan_managed",
		TotalPlanValue: 87400,
		NDISOffice:     "Parramatta",
		PlanReviewDate: day(now, 20),
		BudgetCategories: []profile.PlanBudgetCategory{
			{
				ID:                gen.NewID(),
				PlanID:            activePlanID,
				SupportCategoryID: gen.NewID(),
				SupportCategory: &profile.SupportCategory{
					CategoryNumber: 1,
					Name:           "Assistance with Daily Life",
					SupportPurpose: "daily_activities",
				},
				AllocatedAmount: 52000,
				SpentAmount:     39500,
				CommittedAmount: 8700,
			},
			{
				ID:                gen.NewID(),
				PlanID:            activePlanID,
				SupportCategoryID: gen.NewID(),
				SupportCategory: &profile.SupportCategory{
					CategoryNumber: 4,
					Name:           "Social & Community Participation",
					SupportPurpose: "social_participation",
				},
				AllocatedAmount: 18000,
				SpentAmount:     16400,
				CommittedAmount: 3200,
			},
		},
		Goals: []profile.PlanGoal{
			{
				ID:        gen.NewID(),
				PlanID:    activePlanID,
				GoalTitle: "Travel independently on public transport",
				Domain:    "Community access",
				Status:    "in_progress",
			},
			{
				ID:        gen.NewID(),
				PlanID:    activePlanID,
				GoalTitle: "Complete Certificate II in Hospitality",
				Domain:    "Education",
				Status:    "not_started",
			},
		},
	}

	oldPlan := profile.NDISPlan{
		ID:             oldPlanID,
		ParticipantID:  participantID,
		PlanNumber:     "PLN-2023-0017",
		PlanStartDate:  day(now, -685),
		PlanEndDate:    day(now, -320),
		PlanStatus:     "superseded",
		ManagementType: "agency_managed",
		TotalPlanValue: 71200,
	}

	return &profile.Data{
		Participant: profile.Participant{
			ID:             participantID,
			NDISNumber:     "430123456",
			FirstName:      "Samuel",
			LastName:       "Okafor",
			PreferredName:  "Sam",
			Pronouns:       "he/him",
			DateOfBirth:    "1996-03-14",
			Email:          "sam.okafor@example.com",
			Mobile:         "0412 345 678",
			Suburb:         "Blacktown",
			State:          "NSW",
			Postcode:       "2148",
			Country:        "Australia",
			LanguageSpoken: "English",
			IsActive:       true,
			OnboardingDate: day(now, -700),
			CreatedAt:      day(now, -700),
			UpdatedAt:      day(now, -2),
		},
		ActivePlan: &activePlan,
		Plans:      []profile.NDISPlan{activePlan, oldPlan},
		Contacts: []profile.Contact{
			{
				ID:                 gen.NewID(),
				ParticipantID:      participantID,
				ContactType:        "family",
				FirstName:          "Adaeze",
				LastName:           "Okafor",
				Relationship:       "Mother",
				Phone:              "0401 222 333",
				IsPrimaryContact:   true,
				IsEmergencyContact: true,
			},
		},
		ServiceAgreements: []profile.ServiceAgreement{
			{
				ID:            gen.NewID(),
				ParticipantID: participantID,
				PlanID:        activePlanID,
				ProviderID:    providerID,
				Provider: &profile.Provider{
					ID:                   providerID,
					BusinessName:         "Westside Support Services",
					IsRegisteredProvider: true,
				},
				ServiceType: "Community access",
				StartDate:   day(now, -300),
				Status:      "active",
				TotalValue:  21500,
				Frequency:   "Weekly",
			},
			{
				ID:            gen.NewID(),
				ParticipantID: participantID,
				ProviderID:    providerID,
				Provider: &profile.Provider{
					ID:           providerID,
					BusinessName: "Metro Allied Health",
				},
				ServiceType: "Occupational therapy",
				StartDate:   day(now, -600),
				EndDate:     day(now, -350),
				Status:      "completed",
				TotalValue:  9800,
			},
		},
		Documents: []profile.ParticipantDocument{
			{
				ID:               gen.NewID(),
				ParticipantID:    participantID,
				DocumentName:     "NDIS Plan 2024.pdf",
				DocumentCategory: "Plans",
				DocumentDate:     day(now, -320),
				AccessLevel:      profile.AccessAllStaff,
				FileExtension:    "pdf",
			},
			{
				ID:               gen.NewID(),
				ParticipantID:    participantID,
				DocumentName:     "Medication Authority.pdf",
				DocumentCategory: "Medical",
				DocumentDate:     day(now, -200),
				ExpiryDate:       day(now, 21),
				IsConfidential:   true,
				AccessLevel:      profile.AccessCoordinatorOnly,
				FileExtension:    "pdf",
			},
			{
				ID:               gen.NewID(),
				ParticipantID:    participantID,
				DocumentName:     "Service Agreement - Westside.docx",
				DocumentCategory: "Agreements",
				DocumentDate:     day(now, -300),
				ExpiryDate:       day(now, 180),
				AccessLevel:      profile.AccessAllStaff,
				FileExtension:    "docx",
			},
			{
				ID:               gen.NewID(),
				ParticipantID:    participantID,
				DocumentName:     "Guardianship Order.pdf",
				DocumentCategory: "Legal",
				DocumentDate:     day(now, -680),
				ExpiryDate:       day(now, -14),
				IsConfidential:   true,
				AccessLevel:      profile.AccessAdminOnly,
				FileExtension:    "pdf",
			},
		},
		CaseNotes: []profile.CaseNote{
			{
				ID:               gen.NewID(),
				ParticipantID:    participantID,
				PlanID:           activePlanID,
				NoteType:         "progress",
				Title:            "Transport training session 4",
				Content:          "Completed a supervised return trip to Parramatta. Confident on the T1 line; still prompts needed at interchanges.",
				FollowUpRequired: true,
				FollowUpDate:     day(now, 7),
				CreatedByName:    "J. Whitfield",
				CreatedAt:        day(now, -3) + "T10:30:00Z",
			},
			{
				ID:                gen.NewID(),
				ParticipantID:     participantID,
				NoteType:          "review",
				Title:             "Quarterly review",
				Content:           "Goals on track. Budget utilisation discussed with family.",
				FollowUpRequired:  true,
				FollowUpCompleted: true,
				CreatedByName:     "J. Whitfield",
				CreatedAt:         day(now, -40) + "T14:00:00Z",
			},
		},
		Communications: []profile.Communication{
			{
				ID:                gen.NewID(),
				ParticipantID:     participantID,
				CommunicationType: "phone_call",
				Direction:         "outbound",
				Subject:           "Plan review booking",
				CommunicationDate: day(now, -1) + "T09:15:00Z",
				DurationMinutes:   12,
				Outcome:           "left_message",
				FollowUpRequired:  true,
				FollowUpDate:      day(now, 3),
				HandledByName:     "J. Whitfield",
			},
			{
				ID:                gen.NewID(),
				ParticipantID:     participantID,
				CommunicationType: "email",
				Direction:         "inbound",
				Subject:           "Updated OT report",
				CommunicationDate: day(now, -9) + "T16:42:00Z",
				Outcome:           "successful",
			},
		},
		Tasks: []profile.Task{
			{
				ID:            gen.NewID(),
				ParticipantID: participantID,
				TaskType:      "plan_review",
				Title:         "Prepare plan review evidence pack",
				Priority:      "high",
				Status:        "in_progress",
				DueDate:       day(now, 14),
			},
		},
	}
}
