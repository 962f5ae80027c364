package lesson

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skiresort/internal/domain"
	"skiresort/internal/repository"
	"skiresort/internal/rules"
)

type Service struct {
	lessons     LessonRepository
	instructors InstructorRepository
	journal     JournalAppender
	now         func() time.Time
}

func NewService(lessons LessonRepository, instructors InstructorRepository, journal JournalAppender) *Service {
	return &Service{
		lessons:     lessons,
		instructors: instructors,
		journal:     journal,
		now:         time.Now,
	}
}

// Book reserves an instructor hour for a student. There is no separate
// conflict pre-check: the insert itself carries the exclusivity
// decision, so two concurrent callers targeting the same instructor and
// hour cannot both win. The lesson is immutable once created.
func (s *Service) Book(ctx context.Context, instructor, username string, when time.Time) (*domain.Lesson, error) {
	if r := rules.CheckLessonRequest(instructor, username, when, s.now()); !r.Valid {
		return nil, fmt.Errorf("%w: %s", ErrValidation, r.Message)
	}

	exists, err := s.instructors.ExistsByName(ctx, instructor)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrInstructorNotFound
	}

	l := &domain.Lesson{
		Username:   username,
		Instructor: instructor,
		Time:       when,
	}
	if err := s.lessons.Create(ctx, l); err != nil {
		if errors.Is(err, repository.ErrInstructorTaken) {
			return nil, ErrInstructorBusy
		}
		return nil, err
	}

	if _, err := s.journal.Append(ctx, username, domain.KindLesson, when); err != nil {
		return l, fmt.Errorf("%w: %v", ErrJournalAppend, err)
	}
	return l, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Lesson, error) {
	return s.lessons.ListAll(ctx)
}

func (s *Service) ListFor(ctx context.Context, username string) ([]domain.Lesson, error) {
	return s.lessons.ListFor(ctx, username)
}

func (s *Service) ListInstructors(ctx context.Context) ([]string, error) {
	return s.instructors.ListNames(ctx)
}
