package model

import "time"

type LeaderboardEntry struct {
	TeamName            string     `json:"team_name"`
	EasyScore           int        `json:"easy_score"`
	TotalScore          int        `json:"total_score"`
	EasySubmissionCount int        `json:"easy_submission_count"`
	CompletionTime      *time.Time `json:"completion_time"`
	CPTimeTaken         *int       `json:"cp_time_taken"`
	DriveLink           string     `json:"drive_link,omitempty"`
}

type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}
