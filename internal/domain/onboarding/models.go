package onboarding

import "time"

type Employee struct {
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Department string           `json:"department"`
	Role       string           `json:"role"`
	Manager    string           `json:"manager,omitempty"`
	StartDate  time.Time        `json:"startDate"`
	CreatedAt  time.Time        `json:"createdAt"`
	Version    int64            `json:"version"`
	Documents  []DocumentItem   `json:"documents"`
	Tasks      []TaskItem       `json:"tasks"`
	Equipment  []EquipmentItem  `json:"equipment"`
	Compliance []ComplianceItem `json:"compliance"`
	Meetings   []Meeting        `json:"meetings"`
	Surveys    []Survey         `json:"surveys"`
}

type EmployeeSummary struct {
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Department        string    `json:"department"`
	Role              string    `json:"role"`
	Manager           string    `json:"manager,omitempty"`
	StartDate         time.Time `json:"startDate"`
	CreatedAt         time.Time `json:"createdAt"`
	CompletionPercent int       `json:"completionPercent"`
}

type DocumentItem struct {
	Name       string         `json:"name"`
	Status     DocumentStatus `json:"status"`
	Priority   Priority       `json:"priority"`
	UploadedAt *time.Time     `json:"uploadedAt,omitempty"`
	VerifiedBy string         `json:"verifiedBy,omitempty"`
}

type TaskItem struct {
	Name       string     `json:"name"`
	Status     TaskStatus `json:"status"`
	Dependency string     `json:"dependency,omitempty"`
	DueDate    time.Time  `json:"dueDate"`
	Category   string     `json:"category"`
	Progress   int        `json:"progress"`
}

type EquipmentItem struct {
	Name         string          `json:"name"`
	Status       EquipmentStatus `json:"status"`
	AssignedAt   *time.Time      `json:"assignedAt,omitempty"`
	SerialNumber string          `json:"serialNumber,omitempty"`
	AssignedBy   string          `json:"assignedBy,omitempty"`
}

type ComplianceItem struct {
	Name        string           `json:"name"`
	Status      ComplianceStatus `json:"status"`
	DueDate     time.Time        `json:"dueDate"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
	Duration    string           `json:"duration"`
	Priority    Priority         `json:"priority"`
}

type Meeting struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"`
	ScheduledAt time.Time     `json:"scheduledAt"`
	Duration    string        `json:"duration"`
	Location    string        `json:"location,omitempty"`
	Attendees   string        `json:"attendees,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	Status      MeetingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type MeetingInput struct {
	Type        string
	ScheduledAt time.Time
	Duration    string
	Location    string
	Attendees   string
	Notes       string
}

type SurveyRatings struct {
	Satisfaction int `json:"satisfaction"`
	Clarity      int `json:"clarity"`
	Support      int `json:"support"`
	Resources    int `json:"resources"`
	Workload     int `json:"workload"`
	CultureFit   int `json:"cultureFit"`
}

type SurveyFeedback struct {
	Challenges  string `json:"challenges,omitempty"`
	Wins        string `json:"wins,omitempty"`
	Suggestions string `json:"suggestions,omitempty"`
	Needs       string `json:"needs,omitempty"`
}

type Survey struct {
	ID           string         `json:"id"`
	SubmittedAt  time.Time      `json:"submittedAt"`
	Ratings      SurveyRatings  `json:"ratings"`
	AverageScore float64        `json:"averageScore"`
	Sentiment    Sentiment      `json:"sentiment"`
	Feedback     SurveyFeedback `json:"feedback"`
}

type RegisterInput struct {
	Name       string
	Email      string
	Department string
	Role       string
	Manager    string
	StartDate  time.Time
}

// TaskTransition reports a task after a transition and the tasks it unlocked.
type TaskTransition struct {
	Task     TaskItem `json:"task"`
	Unlocked []string `json:"unlocked"`
}

type Reminder struct {
	Employee     string    `json:"employee"`
	Module       string    `json:"module"`
	Urgency      Urgency   `json:"urgency"`
	DaysUntilDue int       `json:"daysUntilDue"`
	DueDate      time.Time `json:"dueDate"`
	Priority     Priority  `json:"priority"`
}

type CategoryCount struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

type ProgressReport struct {
	Employee          string        `json:"employee"`
	CompletionPercent int           `json:"completionPercent"`
	Documents         CategoryCount `json:"documents"`
	Tasks             CategoryCount `json:"tasks"`
	Equipment         CategoryCount `json:"equipment"`
	Compliance        CategoryCount `json:"compliance"`
	PendingDocuments  int           `json:"pendingDocuments"`
	PendingEquipment  int           `json:"pendingEquipment"`
	OverdueCompliance int           `json:"overdueCompliance"`
	TasksInProgress   int           `json:"tasksInProgress"`
	TasksLocked       int           `json:"tasksLocked"`
	DaysSinceStart    int           `json:"daysSinceStart"`
	ScheduledMeetings int           `json:"scheduledMeetings"`
	CompletedMeetings int           `json:"completedMeetings"`
	SurveysSubmitted  int           `json:"surveysSubmitted"`
}

// clone copies every owned slice. Timestamp pointers are shared; transitions
// assign fresh pointers and never write through them.
func (e Employee) clone() Employee {
	out := e
	out.Documents = append([]DocumentItem(nil), e.Documents...)
	out.Tasks = append([]TaskItem(nil), e.Tasks...)
	out.Equipment = append([]EquipmentItem(nil), e.Equipment...)
	out.Compliance = append([]ComplianceItem(nil), e.Compliance...)
	out.Meetings = append([]Meeting(nil), e.Meetings...)
	out.Surveys = append([]Survey(nil), e.Surveys...)
	return out
}

func (e Employee) Summary() EmployeeSummary {
	return EmployeeSummary{
		Name:              e.Name,
		Email:             e.Email,
		Department:        e.Department,
		Role:              e.Role,
		Manager:           e.Manager,
		StartDate:         e.StartDate,
		CreatedAt:         e.CreatedAt,
		CompletionPercent: CompletionPercentage(e),
	}
}
