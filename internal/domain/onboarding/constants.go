package onboarding

type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "Pending"
	DocumentUploaded DocumentStatus = "Uploaded"
	DocumentVerified DocumentStatus = "Verified"
	DocumentRejected DocumentStatus = "Rejected"
)

func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentPending, DocumentUploaded, DocumentVerified, DocumentRejected:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskLocked     TaskStatus = "Locked"
	TaskNotStarted TaskStatus = "Not Started"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskLocked, TaskNotStarted, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// TaskStatuses lists task states in display order.
var TaskStatuses = []TaskStatus{TaskNotStarted, TaskInProgress, TaskCompleted, TaskLocked}

type EquipmentStatus string

const (
	EquipmentPending  EquipmentStatus = "Pending"
	EquipmentAssigned EquipmentStatus = "Assigned"
)

func (s EquipmentStatus) Valid() bool {
	return s == EquipmentPending || s == EquipmentAssigned
}

type ComplianceStatus string

const (
	ComplianceNotStarted ComplianceStatus = "Not Started"
	ComplianceInProgress ComplianceStatus = "In Progress"
	ComplianceCompleted  ComplianceStatus = "Completed"
)

func (s ComplianceStatus) Valid() bool {
	switch s {
	case ComplianceNotStarted, ComplianceInProgress, ComplianceCompleted:
		return true
	}
	return false
}

type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type MeetingStatus string

const (
	MeetingScheduled MeetingStatus = "Scheduled"
	MeetingCompleted MeetingStatus = "Completed"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// Sentiments lists sentiment labels in display order.
var Sentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

type Urgency string

const (
	UrgencyUrgent        Urgency = "Urgent"
	UrgencyWarning       Urgency = "Warning"
	UrgencyInformational Urgency = "Informational"
)

const (
	ReminderWindowDays  = 7
	ReminderWarningDays = 3
	DueSoonDays         = 3

	MinRating = 1
	MaxRating = 10

	PositiveThreshold = 7.0
	NeutralThreshold  = 4.0
)
