package seed

import "github.com/noah-isme/uni-portal-api/internal/models"

// Fixed base data. Students, enrollments, assessments and attendance are
// generated around these.

var departments = []string{"Computer Science", "Physics", "Mathematics", "Electrical Engineering"}

var firstNames = []string{
	"Liam", "Olivia", "Noah", "Emma", "Oliver", "Ava", "Elijah", "Charlotte",
	"William", "Sophia", "James", "Amelia", "Benjamin", "Isabella", "Lucas",
	"Mia", "Henry", "Evelyn", "Alexander", "Harper", "Michael", "Camila",
	"Ethan", "Gianna", "Daniel", "Abigail", "Matthew", "Luna", "Aiden", "Ella",
	"Jackson", "Elizabeth", "Sebastian", "Sofia", "David", "Emily", "Joseph",
	"Avery", "Carter", "Mila", "Owen", "Scarlett", "Wyatt", "Eleanor", "John",
	"Madison", "Jack", "Layla", "Luke", "Penelope",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green", "Adams",
	"Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell", "Carter",
	"Roberts",
}

func baseFaculty() []models.Faculty {
	return []models.Faculty{
		{ID: 2, Name: "Dr. Evelyn Reed", Email: "evelyn.r@university.edu", Department: "Computer Science", Title: "Professor", Office: "CS-101", Avatar: "https://i.pravatar.cc/150?u=F001"},
		{ID: 10, Name: "Dr. Robert Chen", Email: "robert.c@university.edu", Department: "Physics", Title: "Associate Professor", Office: "PHY-205", Avatar: "https://i.pravatar.cc/150?u=F002"},
		{ID: 11, Name: "Dr. Susan Bones", Email: "susan.b@university.edu", Department: "Mathematics", Title: "Professor", Office: "MATH-314", Avatar: "https://i.pravatar.cc/150?u=F003"},
		{ID: 12, Name: "Dr. Alan Grant", Email: "alan.g@university.edu", Department: "Electrical Engineering", Title: "Professor", Office: "EE-A21", Avatar: "https://i.pravatar.cc/150?u=F004"},
		{ID: 13, Name: "Dr. Laura Dern", Email: "laura.d@university.edu", Department: "Computer Science", Title: "Assistant Professor", Office: "CS-112", Avatar: "https://i.pravatar.cc/150?u=F005"},
		{ID: 14, Name: "Dr. Indiana Jones", Email: "indy.j@university.edu", Department: "Physics", Title: "Professor", Office: "PHY-111", Avatar: "https://i.pravatar.cc/150?u=F006"},
		{ID: 15, Name: "Dr. Ellie Sattler", Email: "ellie.s@university.edu", Department: "Computer Science", Title: "Associate Professor", Office: "CS-222", Avatar: "https://i.pravatar.cc/150?u=F007"},
	}
}

func baseCourses() []models.Course {
	return []models.Course{
		{ID: "CS101", Code: "CS101", Title: "Introduction to Programming", Department: "Computer Science", Credits: 3, Instructor: "Dr. Evelyn Reed"},
		{ID: "CS202", Code: "CS202", Title: "Data Structures", Department: "Computer Science", Credits: 4, Instructor: "Dr. Laura Dern"},
		{ID: "PHY201", Code: "PHY201", Title: "Classical Mechanics", Department: "Physics", Credits: 4, Instructor: "Dr. Robert Chen"},
		{ID: "MATH301", Code: "MATH301", Title: "Abstract Algebra", Department: "Mathematics", Credits: 3, Instructor: "Dr. Susan Bones"},
		{ID: "EE101", Code: "EE101", Title: "Circuit Theory", Department: "Electrical Engineering", Credits: 3, Instructor: "Dr. Alan Grant"},
		{ID: "EE205", Code: "EE205", Title: "Digital Logic Design", Department: "Electrical Engineering", Credits: 4, Instructor: "Dr. Alan Grant"},
		{ID: "CS303", Code: "CS303", Title: "Analysis of Algorithms", Department: "Computer Science", Credits: 3, Instructor: "Dr. Ellie Sattler"},
		{ID: "CS450", Code: "CS450", Title: "Machine Learning", Department: "Computer Science", Credits: 4, Instructor: "Dr. Evelyn Reed"},
		{ID: "PHY310", Code: "PHY310", Title: "Quantum Mechanics", Department: "Physics", Credits: 4, Instructor: "Dr. Indiana Jones"},
		{ID: "MATH205", Code: "MATH205", Title: "Linear Algebra", Department: "Mathematics", Credits: 4, Instructor: "Dr. Susan Bones"},
		{ID: "EE320", Code: "EE320", Title: "Signals and Systems", Department: "Electrical Engineering", Credits: 3, Instructor: "Dr. Alan Grant"},
	}
}
