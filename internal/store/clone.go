package store

import "github.com/noah-isme/uni-portal-api/internal/models"

// Deep-copy helpers. Reads hand out clones so callers can never mutate the
// store's collections through a returned value.

func cloneStudents(in []models.Student) []models.Student {
	return append([]models.Student(nil), in...)
}

func cloneFaculty(in []models.Faculty) []models.Faculty {
	return append([]models.Faculty(nil), in...)
}

func cloneUsers(in []models.User) []models.User {
	return append([]models.User(nil), in...)
}

func cloneCourses(in []models.Course) []models.Course {
	return append([]models.Course(nil), in...)
}

func cloneEnrollments(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for courseID, ids := range in {
		out[courseID] = append([]string(nil), ids...)
	}
	return out
}

func cloneScore(score *float64) *float64 {
	if score == nil {
		return nil
	}
	v := *score
	return &v
}

func cloneAssessment(a models.Assessment) models.Assessment {
	out := a
	out.Scores = make([]models.AssessmentScore, len(a.Scores))
	for i, s := range a.Scores {
		out.Scores[i] = models.AssessmentScore{
			StudentID:   s.StudentID,
			StudentName: s.StudentName,
			Score:       cloneScore(s.Score),
		}
	}
	return out
}

func cloneAssessments(in []models.Assessment) []models.Assessment {
	if in == nil {
		return nil
	}
	out := make([]models.Assessment, len(in))
	for i, a := range in {
		out[i] = cloneAssessment(a)
	}
	return out
}

func cloneAssessmentMap(in map[string][]models.Assessment) map[string][]models.Assessment {
	out := make(map[string][]models.Assessment, len(in))
	for courseID, list := range in {
		out[courseID] = cloneAssessments(list)
	}
	return out
}

func cloneAttendance(in map[AttendanceKey]models.AttendanceStatus) map[AttendanceKey]models.AttendanceStatus {
	out := make(map[AttendanceKey]models.AttendanceStatus, len(in))
	for key, status := range in {
		out[key] = status
	}
	return out
}
