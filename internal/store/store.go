package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/noah-isme/uni-portal-api/internal/models"
)

// Sentinel errors surfaced by store operations. Services translate them into
// typed API errors.
var (
	ErrNotFound      = errors.New("store: not found")
	ErrConflict      = errors.New("store: conflict")
	ErrNoEnrollments = errors.New("store: course has no enrolled students")
	ErrInvalidScore  = errors.New("store: score out of range")
)

// AttendanceKey addresses a single recorded class day. A missing key means
// "no record", never "Absent".
type AttendanceKey struct {
	CourseID  string
	StudentID string
	Date      string
}

// Data is the full dataset a Store is initialised with.
type Data struct {
	Students    []models.Student
	Faculty     []models.Faculty
	Users       []models.User
	Courses     []models.Course
	Enrollments map[string][]string
	Assessments map[string][]models.Assessment
	Attendance  map[AttendanceKey]models.AttendanceStatus
}

// Store is the in-memory repository backing the portal. All shared
// collections sit behind a single RWMutex and every read returns copies, so
// each query observes one consistent snapshot even though the store is served
// by a concurrent HTTP server. Commands validate before mutating; a rejected
// command leaves no partial state.
type Store struct {
	mu sync.RWMutex

	students    []models.Student
	faculty     []models.Faculty
	users       []models.User
	courses     []models.Course
	enrollments map[string][]string
	assessments map[string][]models.Assessment
	attendance  map[AttendanceKey]models.AttendanceStatus

	nextFacultyID    int
	nextAssessmentID int
}

// New builds a Store from seeded data. The input is cloned so the caller
// cannot alias internal state.
func New(data Data) *Store {
	s := &Store{
		students:    cloneStudents(data.Students),
		faculty:     cloneFaculty(data.Faculty),
		users:       cloneUsers(data.Users),
		courses:     cloneCourses(data.Courses),
		enrollments: cloneEnrollments(data.Enrollments),
		assessments: cloneAssessmentMap(data.Assessments),
		attendance:  cloneAttendance(data.Attendance),
	}
	s.nextFacultyID = 1
	s.nextAssessmentID = 1
	for _, f := range s.faculty {
		if f.ID >= s.nextFacultyID {
			s.nextFacultyID = f.ID + 1
		}
	}
	for _, list := range s.assessments {
		for _, a := range list {
			if a.ID >= s.nextAssessmentID {
				s.nextAssessmentID = a.ID + 1
			}
		}
	}
	return s
}

// Students returns every student record, roll-number ordered.
func (s *Store) Students(ctx context.Context) []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := cloneStudents(s.students)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// StudentByID looks a student up by roll number.
func (s *Store) StudentByID(ctx context.Context, id string) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.students {
		if st.ID == id {
			c := st
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Faculty returns the teaching roster.
func (s *Store) Faculty(ctx context.Context) []models.Faculty {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneFaculty(s.faculty)
}

// FacultyByID looks a faculty member up by ID.
func (s *Store) FacultyByID(ctx context.Context, id int) (*models.Faculty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.faculty {
		if f.ID == id {
			c := f
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// FacultyByName resolves an instructor display name to a faculty record.
func (s *Store) FacultyByName(ctx context.Context, name string) (*models.Faculty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.faculty {
		if f.Name == name {
			c := f
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Users returns every portal account.
func (s *Store) Users(ctx context.Context) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUsers(s.users)
}

// UserByEmail resolves an account by email, case-insensitively.
func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			c := u
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// UserByID resolves an account by ID.
func (s *Store) UserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			c := u
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Courses returns the catalogue.
func (s *Store) Courses(ctx context.Context) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCourses(s.courses)
}

// CourseByID looks a course up by its code.
func (s *Store) CourseByID(ctx context.Context, id string) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// EnrolledStudentIDs returns the roll numbers enrolled in a course. Unknown
// courses yield an empty slice, not an error.
func (s *Store) EnrolledStudentIDs(ctx context.Context, courseID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.enrollments[courseID]...)
}

// IsEnrolled reports whether the student is enrolled in the course.
func (s *Store) IsEnrolled(ctx context.Context, courseID, studentID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.enrollments[courseID] {
		if id == studentID {
			return true
		}
	}
	return false
}

// AssessmentsByCourse returns the course's assessments. Unknown courses yield
// an empty slice.
func (s *Store) AssessmentsByCourse(ctx context.Context, courseID string) []models.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAssessments(s.assessments[courseID])
}

// ListAssessments flattens every assessment across all courses.
func (s *Store) ListAssessments(ctx context.Context) []models.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Assessment
	for _, list := range s.assessments {
		out = append(out, cloneAssessments(list)...)
	}
	return out
}

// AttendanceByCourse returns every recorded entry for a course, date ordered.
func (s *Store) AttendanceByCourse(ctx context.Context, courseID string) []models.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectAttendance(func(k AttendanceKey) bool { return k.CourseID == courseID })
}

// AttendanceByCourseMonth scopes a course's records to one calendar month.
func (s *Store) AttendanceByCourseMonth(ctx context.Context, courseID string, year, month int) []models.AttendanceRecord {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectAttendance(func(k AttendanceKey) bool {
		return k.CourseID == courseID && strings.HasPrefix(k.Date, prefix)
	})
}

// AttendanceByCourseStudent returns one student's history in a course.
func (s *Store) AttendanceByCourseStudent(ctx context.Context, courseID, studentID string) []models.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectAttendance(func(k AttendanceKey) bool {
		return k.CourseID == courseID && k.StudentID == studentID
	})
}

// ListAttendance returns every recorded entry in the store.
func (s *Store) ListAttendance(ctx context.Context) []models.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectAttendance(func(AttendanceKey) bool { return true })
}

// AddCourse inserts a new catalogue entry. The ID must be unique.
func (s *Store) AddCourse(ctx context.Context, course models.Course) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.courses {
		if c.ID == course.ID {
			return models.Course{}, ErrConflict
		}
	}
	s.courses = append(s.courses, course)
	if _, ok := s.enrollments[course.ID]; !ok {
		s.enrollments[course.ID] = nil
	}
	return course, nil
}

// RemoveCourse deletes a course and cascades to its enrollments, assessments
// and attendance. Later queries for the ID return empty results.
func (s *Store) RemoveCourse(ctx context.Context, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, c := range s.courses {
		if c.ID == courseID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	s.courses = append(s.courses[:idx], s.courses[idx+1:]...)
	delete(s.enrollments, courseID)
	delete(s.assessments, courseID)
	for key := range s.attendance {
		if key.CourseID == courseID {
			delete(s.attendance, key)
		}
	}
	return nil
}

// AddFaculty inserts a faculty member together with their linked portal
// account in one step. The store assigns the faculty ID and stamps it on the
// user record.
func (s *Store) AddFaculty(ctx context.Context, f models.Faculty, account models.User) (models.Faculty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.faculty {
		if strings.EqualFold(existing.Email, f.Email) {
			return models.Faculty{}, ErrConflict
		}
	}
	f.ID = s.nextFacultyID
	s.nextFacultyID++
	account.FacultyID = f.ID
	if f.Avatar == "" {
		f.Avatar = fmt.Sprintf("https://i.pravatar.cc/150?u=F%d", f.ID)
	}
	s.faculty = append(s.faculty, f)
	s.users = append(s.users, account)
	return f, nil
}

// RemoveFaculty deletes a faculty member and their linked account.
func (s *Store) RemoveFaculty(ctx context.Context, facultyID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, f := range s.faculty {
		if f.ID == facultyID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	s.faculty = append(s.faculty[:idx], s.faculty[idx+1:]...)
	users := s.users[:0]
	for _, u := range s.users {
		if u.Role == models.RoleFaculty && u.FacultyID == facultyID {
			continue
		}
		users = append(users, u)
	}
	s.users = users
	return nil
}

// AddAssessment appends an assessment to a course, seeding one null score row
// per enrolled student. Courses without enrolled students are rejected before
// any mutation.
func (s *Store) AddAssessment(ctx context.Context, courseID string, a models.Assessment) (models.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.courseExists(courseID) {
		return models.Assessment{}, ErrNotFound
	}
	enrolled := s.enrollments[courseID]
	if len(enrolled) == 0 {
		return models.Assessment{}, ErrNoEnrollments
	}
	a.ID = s.nextAssessmentID
	s.nextAssessmentID++
	a.Scores = make([]models.AssessmentScore, 0, len(enrolled))
	for _, studentID := range enrolled {
		a.Scores = append(a.Scores, models.AssessmentScore{
			StudentID:   studentID,
			StudentName: s.studentName(studentID),
			Score:       nil,
		})
	}
	s.assessments[courseID] = append(s.assessments[courseID], a)
	return cloneAssessment(a), nil
}

// UpdateAssessmentScore sets or clears a single score row. The row must exist
// and a non-nil score must satisfy 0 <= score <= maxScore.
func (s *Store) UpdateAssessmentScore(ctx context.Context, courseID string, assessmentID int, studentID string, score *float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.assessments[courseID]
	if !ok {
		return ErrNotFound
	}
	for i := range list {
		if list[i].ID != assessmentID {
			continue
		}
		if score != nil && (*score < 0 || *score > list[i].MaxScore) {
			return ErrInvalidScore
		}
		for j := range list[i].Scores {
			if list[i].Scores[j].StudentID == studentID {
				list[i].Scores[j].Score = cloneScore(score)
				return nil
			}
		}
		return ErrNotFound
	}
	return ErrNotFound
}

// UpdateAttendance sets the status for one (course, student, date). The
// student must already have attendance history in the course.
func (s *Store) UpdateAttendance(ctx context.Context, courseID, studentID, date string, status models.AttendanceStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for key := range s.attendance {
		if key.CourseID == courseID && key.StudentID == studentID {
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}
	s.attendance[AttendanceKey{CourseID: courseID, StudentID: studentID, Date: date}] = status
	return nil
}

// TouchUserLogin stamps an account's last login time.
func (s *Store) TouchUserLogin(ctx context.Context, userID string, ts time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == userID {
			s.users[i].LastLogin = ts
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) courseExists(courseID string) bool {
	for _, c := range s.courses {
		if c.ID == courseID {
			return true
		}
	}
	return false
}

func (s *Store) studentName(studentID string) string {
	for _, st := range s.students {
		if st.ID == studentID {
			return st.Name
		}
	}
	return "Unknown"
}

// collectAttendance must be called with at least a read lock held. ISO dates
// sort correctly as strings, so the result is chronological.
func (s *Store) collectAttendance(match func(AttendanceKey) bool) []models.AttendanceRecord {
	var out []models.AttendanceRecord
	for key, status := range s.attendance {
		if !match(key) {
			continue
		}
		out = append(out, models.AttendanceRecord{
			CourseID:    key.CourseID,
			StudentID:   key.StudentID,
			StudentName: s.studentName(key.StudentID),
			Date:        key.Date,
			Status:      status,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].CourseID != out[j].CourseID {
			return out[i].CourseID < out[j].CourseID
		}
		return out[i].StudentID < out[j].StudentID
	})
	return out
}
