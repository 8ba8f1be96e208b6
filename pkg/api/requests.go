package api

// TriggerRequest is the body of POST /v1/trigger.
type TriggerRequest struct {
	UserID       string `json:"user_id"`
	TeacherID    string `json:"teacher_id"`
	ClassID      string `json:"class_id"`
	Date         string `json:"date"`       // YYYY-MM-DD
	StartTime    string `json:"start_time"` // HH:MM
	EndTime      string `json:"end_time,omitempty"`
	TeacherEmail string `json:"teacher_email,omitempty"`

	// The external workflow may deliver the transcript inline.
	Transcript       string `json:"transcript,omitempty"`
	TranscriptSource string `json:"transcript_source,omitempty"`
}

// ProcessRequest is the body of POST /v1/process, the synchronous
// transcript-to-exercises endpoint.
type ProcessRequest struct {
	Transcript string `json:"transcript"`
	UserID     string `json:"user_id,omitempty"`
	TeacherID  string `json:"teacher_id,omitempty"`
	ClassID    string `json:"class_id,omitempty"`
}
