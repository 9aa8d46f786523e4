package queue

type TaskType string

const (
	TaskTypeVerificationEmail TaskType = "verification_email"
)

// Task is what the API server hands to the mail worker.
type Task struct {
	TaskType       TaskType
	VerificationID int64
	TraceID        *string
	Attempt        int
}

func VerificationEmailTask(verificationID int64) Task {
	return Task{
		TaskType:       TaskTypeVerificationEmail,
		VerificationID: verificationID,
	}
}
