package model

type SubmissionStatus string

const (
	StatusAccepted    SubmissionStatus = "Accepted"
	StatusPartial     SubmissionStatus = "Partial"
	StatusWrongAnswer SubmissionStatus = "Wrong Answer"
)

// SubmitRequest is the body posted to the backend for one judged attempt.
type SubmitRequest struct {
	TeamID     string `json:"team_id"`
	QuestionID int    `json:"question_id"`
	LanguageID int    `json:"language_id"`
	SourceCode string `json:"source_code"`
}

// SubmissionResult is one judged outcome. It is ephemeral: it exists
// between a submit call and the dismissal of the results view, and a
// new submission always produces a new instance.
type SubmissionResult struct {
	Status               SubmissionStatus `json:"status"`
	Score                int              `json:"score"`
	PassedTestcases      int              `json:"passed_testcases"`
	TotalTestcases       int              `json:"total_testcases"`
	SubmissionNumber     int              `json:"submission_number"`
	SubmissionsRemaining int              `json:"submissions_remaining"`
	Details              []TestCaseDetail `json:"details"`
	Message              string           `json:"message,omitempty"`
}

type TestCaseDetail struct {
	TestCaseID     string  `json:"test_case_id"`
	Passed         bool    `json:"passed"`
	Hidden         bool    `json:"hidden"`
	StatusID       int     `json:"status_id"`
	Stdout         *string `json:"stdout"`
	ExpectedOutput *string `json:"expected_output"`
	Stderr         *string `json:"stderr"`
	CompileOutput  *string `json:"compile_output"`
	Time           string  `json:"time"`
	MemoryKb       int     `json:"memory"`
}
