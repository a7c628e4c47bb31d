package notifications

const (
	TypeComplianceReminder = "compliance_reminder"
	TypeTaskUnlocked       = "task_unlocked"
	TypeDocumentRejected   = "document_rejected"
)
