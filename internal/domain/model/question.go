package model

import "time"

type QuestionDifficulty string

const (
	DifficultyEasy   QuestionDifficulty = "easy"
	DifficultyMedium QuestionDifficulty = "medium"
)

// Question is an immutable problem statement. It is never mutated on
// the client side; the backend owns it.
type Question struct {
	ID                 int                `json:"id"`
	Difficulty         QuestionDifficulty `json:"difficulty"`
	Title              string             `json:"title"`
	ProblemDescription string             `json:"problem_description"`
	SampleInput        string             `json:"sample_input"`
	SampleOutput       string             `json:"sample_output"`
	InputFormat        string             `json:"input_format"`
	OutputFormat       string             `json:"output_format"`
	CreatedAt          time.Time          `json:"created_at"`
}

// ContestSnapshot is the backend's current view of a team's round:
// assigned questions, scores, submission counts and timer state.
// CPTimeTaken is set iff the contest is complete, and once set it is
// the authoritative final duration for the whole session.
type ContestSnapshot struct {
	EasyQuestion          *Question  `json:"easy_question"`
	MediumQuestion        *Question  `json:"medium_question"`
	EasyScore             int        `json:"easy_score"`
	MediumScore           int        `json:"medium_score"`
	EasySubmissionCount   int        `json:"easy_submission_count"`
	MediumSubmissionCount int        `json:"medium_submission_count"`
	CompletionTime        *time.Time `json:"completion_time"`
	CPStartTime           *time.Time `json:"cp_start_time"`
	CPTimeTaken           *int       `json:"cp_time_taken"`
}

// RoundStartResponse is returned when a round is assigned to a team.
type RoundStartResponse struct {
	EasyQuestion          *Question `json:"easy_question"`
	MediumQuestion        *Question `json:"medium_question"`
	EasyScore             int       `json:"easy_score"`
	MediumScore           int       `json:"medium_score"`
	EasySubmissionCount   int       `json:"easy_submission_count"`
	MediumSubmissionCount int       `json:"medium_submission_count"`
}

// StartTimerResponse carries the server-issued contest start instant.
// The call is idempotent on the backend: a second start does not reset
// an already-running timer.
type StartTimerResponse struct {
	CPStartTime time.Time `json:"cp_start_time"`
}
