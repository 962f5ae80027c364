package domain

import "time"

const (
	// Lessons can start on the hour between these bounds, inclusive.
	LessonFirstHour = 8
	LessonLastHour  = 18
)

type Instructor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Lesson is an exclusive hold on one instructor hour. No two lessons may
// share (Instructor, Time); once created a lesson never changes.
type Lesson struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Instructor string    `json:"instructor"`
	Time       time.Time `json:"time"`
}
