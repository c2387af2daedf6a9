package leads

import "time"

// Record is one qualified lead captured from a conversation. Phone always
// comes from the transport-level sender identity, never from model output.
type Record struct {
	Name        string
	Phone       string
	ProjectType string
	Budget      string
	Notes       string
	CapturedAt  time.Time
}

// Row returns the record as the ordered string row the tabular stores expect:
// date, name, phone, project type, budget, notes.
func (r Record) Row() []string {
	return []string{
		r.CapturedAt.Format("2006-01-02 15:04"),
		r.Name,
		r.Phone,
		r.ProjectType,
		r.Budget,
		r.Notes,
	}
}
