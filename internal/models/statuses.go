package models

type NotificationType string
type MeetingStatus string

const (
	NotificationTypeRegistrationApproved NotificationType = "REGISTRATION_APPROVED"
	NotificationTypeRegistrationRejected NotificationType = "REGISTRATION_REJECTED"
	NotificationTypeVoteReminder         NotificationType = "VOTE_REMINDER"
	NotificationTypeMeetingReminder      NotificationType = "MEETING_REMINDER"
	NotificationTypeMeetingUpdated       NotificationType = "MEETING_UPDATED"
	NotificationTypeVotingResult         NotificationType = "VOTING_RESULT"
	NotificationTypeQuestionAnswered     NotificationType = "QUESTION_ANSWERED"
	NotificationTypeSystemAnnouncement   NotificationType = "SYSTEM_ANNOUNCEMENT"

	MeetingStatusScheduled MeetingStatus = "SCHEDULED"
	MeetingStatusOngoing   MeetingStatus = "ONGOING"
	MeetingStatusCompleted MeetingStatus = "COMPLETED"
	MeetingStatusCancelled MeetingStatus = "CANCELLED"
)

var notificationTypes = []NotificationType{
	NotificationTypeRegistrationApproved,
	NotificationTypeRegistrationRejected,
	NotificationTypeVoteReminder,
	NotificationTypeMeetingReminder,
	NotificationTypeMeetingUpdated,
	NotificationTypeVotingResult,
	NotificationTypeQuestionAnswered,
	NotificationTypeSystemAnnouncement,
}

// NotificationTypes returns every known type in declaration order.
func NotificationTypes() []NotificationType {
	out := make([]NotificationType, len(notificationTypes))
	copy(out, notificationTypes)
	return out
}

func (t NotificationType) IsValid() bool {
	for _, known := range notificationTypes {
		if t == known {
			return true
		}
	}
	return false
}
