package lesson

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"skiresort/internal/domain"
	"skiresort/internal/repository"
)

type MockLessonRepository struct {
	mock.Mock
}

func (m *MockLessonRepository) Create(ctx context.Context, l *domain.Lesson) error {
	args := m.Called(ctx, l)
	if l != nil {
		l.ID = 555 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockLessonRepository) ListAll(ctx context.Context) ([]domain.Lesson, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lesson), args.Error(1)
}

func (m *MockLessonRepository) ListFor(ctx context.Context, username string) ([]domain.Lesson, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lesson), args.Error(1)
}

type MockInstructorRepository struct {
	mock.Mock
}

func (m *MockInstructorRepository) ListNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockInstructorRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

type MockJournalAppender struct {
	mock.Mock
}

func (m *MockJournalAppender) Append(ctx context.Context, username string, kind domain.TransactionKind, when time.Time) (*domain.Transaction, error) {
	args := m.Called(ctx, username, kind, when)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var frozenNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestService(lessons LessonRepository, instructors InstructorRepository, journal JournalAppender) *Service {
	svc := NewService(lessons, instructors, journal)
	svc.now = func() time.Time { return frozenNow }
	return svc
}

func TestService_Book_Success(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockInstructors := new(MockInstructorRepository)
	mockJournal := new(MockJournalAppender)

	when := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)
	mockInstructors.On("ExistsByName", mock.Anything, "Ivan").Return(true, nil)
	mockLessons.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockJournal.On("Append", mock.Anything, "alice", domain.KindLesson, when).
		Return(&domain.Transaction{ID: 1, Kind: domain.KindLesson, Amount: 30}, nil)

	service := newTestService(mockLessons, mockInstructors, mockJournal)

	l, err := service.Book(context.Background(), "Ivan", "alice", when)

	assert.NoError(t, err)
	assert.Equal(t, int64(555), l.ID)
	assert.Equal(t, "Ivan", l.Instructor)
	mockJournal.AssertExpectations(t)
}

func TestService_Book_UnknownInstructor(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockInstructors := new(MockInstructorRepository)
	mockJournal := new(MockJournalAppender)

	when := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)
	mockInstructors.On("ExistsByName", mock.Anything, "Ghost").Return(false, nil)

	service := newTestService(mockLessons, mockInstructors, mockJournal)

	_, err := service.Book(context.Background(), "Ghost", "alice", when)
	assert.ErrorIs(t, err, ErrInstructorNotFound)
	mockLessons.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Book_InstructorBusy(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockInstructors := new(MockInstructorRepository)
	mockJournal := new(MockJournalAppender)

	when := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)
	mockInstructors.On("ExistsByName", mock.Anything, "Ivan").Return(true, nil)
	mockLessons.On("Create", mock.Anything, mock.Anything).Return(repository.ErrInstructorTaken)

	service := newTestService(mockLessons, mockInstructors, mockJournal)

	_, err := service.Book(context.Background(), "Ivan", "alice", when)
	assert.ErrorIs(t, err, ErrInstructorBusy)
	mockJournal.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Book_OutsideHours(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockInstructors := new(MockInstructorRepository)
	mockJournal := new(MockJournalAppender)

	service := newTestService(mockLessons, mockInstructors, mockJournal)

	tooEarly := time.Date(2026, 1, 20, 7, 0, 0, 0, time.UTC)
	_, err := service.Book(context.Background(), "Ivan", "alice", tooEarly)
	assert.ErrorIs(t, err, ErrValidation)

	tooLate := time.Date(2026, 1, 20, 19, 0, 0, 0, time.UTC)
	_, err = service.Book(context.Background(), "Ivan", "alice", tooLate)
	assert.ErrorIs(t, err, ErrValidation)

	mockInstructors.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything)
}

func TestService_Book_JournalFailureStillReturnsLesson(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockInstructors := new(MockInstructorRepository)
	mockJournal := new(MockJournalAppender)

	when := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)
	mockInstructors.On("ExistsByName", mock.Anything, "Ivan").Return(true, nil)
	mockLessons.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockJournal.On("Append", mock.Anything, "alice", domain.KindLesson, when).
		Return(nil, errors.New("journal down"))

	service := newTestService(mockLessons, mockInstructors, mockJournal)

	l, err := service.Book(context.Background(), "Ivan", "alice", when)

	assert.ErrorIs(t, err, ErrJournalAppend)
	assert.NotNil(t, l)
	assert.Equal(t, int64(555), l.ID)
}

func TestService_ListInstructors(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockInstructors := new(MockInstructorRepository)
	mockJournal := new(MockJournalAppender)

	mockInstructors.On("ListNames", mock.Anything).Return([]string{"Ivan", "Olena"}, nil)

	service := newTestService(mockLessons, mockInstructors, mockJournal)

	names, err := service.ListInstructors(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Ivan", "Olena"}, names)
}
