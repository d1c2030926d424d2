package seed

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/uni-portal-api/internal/models"
	"github.com/noah-isme/uni-portal-api/internal/store"
)

// Options drives the synthetic dataset generator. The same Seed, StudentCount
// and Now always produce the same population, except for the bcrypt password
// hashes, which are freshly salted on every run.
type Options struct {
	Seed            int64
	StudentCount    int
	DefaultPassword string
	Now             time.Time
}

const (
	attendanceMonths = 4
	coursesPerStud   = 5
)

var semesters = []string{"Fall 2023", "Spring 2024"}

var assessmentTemplates = []struct {
	Title    string
	Type     string
	MaxScore float64
}{
	{Title: "Midterm", Type: "Exam", MaxScore: 100},
	{Title: "Final", Type: "Exam", MaxScore: 150},
	{Title: "Project", Type: "Project", MaxScore: 50},
}

// Generate produces a full portal dataset: base faculty and courses, randomly
// generated students with enrollments, assessments with partially null
// scores, weekday attendance for the trailing months, and one portal account
// per person. The returned error can only come from password hashing.
func Generate(opts Options) (store.Data, error) {
	if opts.StudentCount <= 0 {
		opts.StudentCount = 50
	}
	if opts.DefaultPassword == "" {
		opts.DefaultPassword = "password"
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now().UTC()
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	// Synthetic accounts share one low-cost hash; these are throwaway
	// fixture credentials, not real users.
	hash, err := bcrypt.GenerateFromPassword([]byte(opts.DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return store.Data{}, fmt.Errorf("hash seed password: %w", err)
	}
	passwordHash := string(hash)

	data := store.Data{
		Faculty:     baseFaculty(),
		Courses:     baseCourses(),
		Enrollments: map[string][]string{},
		Assessments: map[string][]models.Assessment{},
		Attendance:  map[store.AttendanceKey]models.AttendanceStatus{},
	}

	data.Students = generateStudents(rng, opts.StudentCount)
	for _, c := range data.Courses {
		data.Enrollments[c.ID] = nil
	}
	enrollStudents(rng, data.Students, data.Courses, data.Enrollments)
	generateAssessments(rng, data.Students, data.Courses, data.Enrollments, data.Assessments)
	generateAttendance(rng, opts.Now, data.Enrollments, data.Attendance)
	data.Users = generateUsers(rng, opts.Now, passwordHash, data.Students, data.Faculty)

	return data, nil
}

func generateStudents(rng *rand.Rand, count int) []models.Student {
	counters := map[string]int{}
	students := make([]models.Student, 0, count)
	for i := 0; i < count; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		department := departments[rng.Intn(len(departments))]

		counters[department]++
		prefix := strings.ToUpper(strings.ReplaceAll(department, " ", ""))[:2]
		rollNo := fmt.Sprintf("%s-%03d", prefix, counters[department])

		enrollmentYear := 2020 + rng.Intn(4)
		students = append(students, models.Student{
			ID:             rollNo,
			Name:           first + " " + last,
			Email:          fmt.Sprintf("%s.%s%d@university.edu", strings.ToLower(first), strings.ToLower(last), i),
			Department:     department,
			EnrollmentDate: fmt.Sprintf("%d-08-20", enrollmentYear),
			Avatar:         "https://i.pravatar.cc/150?u=" + rollNo,
		})
	}
	return students
}

func enrollStudents(rng *rand.Rand, students []models.Student, courses []models.Course, enrollments map[string][]string) {
	for _, student := range students {
		picked := map[string]bool{}
		for len(picked) < coursesPerStud {
			course := courses[rng.Intn(len(courses))]
			if picked[course.ID] {
				continue
			}
			picked[course.ID] = true
			enrollments[course.ID] = append(enrollments[course.ID], student.ID)
		}
	}
}

func generateAssessments(rng *rand.Rand, students []models.Student, courses []models.Course, enrollments map[string][]string, assessments map[string][]models.Assessment) {
	names := map[string]string{}
	for _, s := range students {
		names[s.ID] = s.Name
	}
	nextID := 1
	for _, course := range courses {
		for _, tpl := range assessmentTemplates {
			semester := semesters[rng.Intn(len(semesters))]
			a := models.Assessment{
				ID:       nextID,
				Title:    tpl.Title,
				Type:     tpl.Type,
				MaxScore: tpl.MaxScore,
				Semester: semester,
			}
			nextID++
			for _, studentID := range enrollments[course.ID] {
				var score *float64
				// 10% of rows stay ungraded (nil), never zero.
				if rng.Float64() > 0.1 {
					low := int(tpl.MaxScore * 0.6)
					v := float64(low + rng.Intn(int(tpl.MaxScore)-low+1))
					score = &v
				}
				a.Scores = append(a.Scores, models.AssessmentScore{
					StudentID:   studentID,
					StudentName: names[studentID],
					Score:       score,
				})
			}
			assessments[course.ID] = append(assessments[course.ID], a)
		}
	}
}

func generateAttendance(rng *rand.Rand, now time.Time, enrollments map[string][]string, attendance map[store.AttendanceKey]models.AttendanceStatus) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(attendanceMonths - 1), 0)
	courseIDs := make([]string, 0, len(enrollments))
	for courseID := range enrollments {
		courseIDs = append(courseIDs, courseID)
	}
	// Map iteration order is random; keep generation deterministic.
	sort.Strings(courseIDs)

	for day := start; !day.After(now); day = day.AddDate(0, 0, 1) {
		weekday := day.Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			continue
		}
		date := day.Format("2006-01-02")
		for _, courseID := range courseIDs {
			for _, studentID := range enrollments[courseID] {
				status := models.AttendancePresent
				switch roll := rng.Float64(); {
				case roll > 0.95:
					status = models.AttendanceAbsent
				case roll > 0.9:
					status = models.AttendanceLate
				}
				attendance[store.AttendanceKey{CourseID: courseID, StudentID: studentID, Date: date}] = status
			}
		}
	}
}

func generateUsers(rng *rand.Rand, now time.Time, passwordHash string, students []models.Student, faculty []models.Faculty) []models.User {
	users := make([]models.User, 0, len(students)+len(faculty)+1)
	users = append(users, models.User{
		ID:           userID(rng),
		Name:         "Admin User",
		Email:        "admin@university.edu",
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		Status:       models.UserActive,
		LastLogin:    now.Add(-2 * time.Hour),
	})
	for i, f := range faculty {
		email := f.Email
		if i == 0 {
			// Convenience alias for login testing.
			email = "faculty@university.edu"
		}
		users = append(users, models.User{
			ID:           userID(rng),
			Name:         f.Name,
			Email:        email,
			PasswordHash: passwordHash,
			Role:         models.RoleFaculty,
			Status:       models.UserActive,
			LastLogin:    now.Add(-time.Duration(rng.Intn(10*24)) * time.Hour),
			FacultyID:    f.ID,
		})
	}
	for i, s := range students {
		email := s.Email
		if i == 0 {
			email = "student@university.edu"
		}
		users = append(users, models.User{
			ID:           userID(rng),
			Name:         s.Name,
			Email:        email,
			PasswordHash: passwordHash,
			Role:         models.RoleStudent,
			Status:       models.UserActive,
			LastLogin:    now.Add(-time.Duration(rng.Intn(30*24)) * time.Hour),
			StudentID:    s.ID,
		})
	}
	return users
}

// userID draws a UUID from the seeded source so account IDs are reproducible
// for a given seed.
func userID(rng *rand.Rand) string {
	return uuid.Must(uuid.NewRandomFromReader(rng)).String()
}
