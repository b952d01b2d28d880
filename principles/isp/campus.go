package isp

import "fmt"

// Student is the academic capability.
type Student interface {
	Study(subject string) string
}

// Athlete is the athletic capability.
type Athlete interface {
	Train(sport string) string
}

// StudentAthlete composes both capabilities. Each consumer still sees only
// the half it asked for.
type StudentAthlete struct {
	Name string
}

// Study attends a class.
func (s StudentAthlete) Study(subject string) string {
	return fmt.Sprintf("%s studies %s", s.Name, subject)
}

// Train hits the practice field.
func (s StudentAthlete) Train(sport string) string {
	return fmt.Sprintf("%s trains for %s", s.Name, sport)
}

// FullTimeAthlete has no academic life and implements only Athlete. Under
// narrow interfaces that is all it ever needs.
type FullTimeAthlete struct {
	Name string
}

// Train hits the practice field.
func (a FullTimeAthlete) Train(sport string) string {
	return fmt.Sprintf("%s trains for %s", a.Name, sport)
}

var (
	_ Student = StudentAthlete{}
	_ Athlete = StudentAthlete{}
	_ Athlete = FullTimeAthlete{}
)

// Enroll signs a student up for a course. It asks for the Student capability
// only; athletic methods are invisible here.
func Enroll(s Student, subject string) string {
	return fmt.Sprintf("enrolled: %s", s.Study(subject))
}

// Register signs an athlete up for a season. It asks for the Athlete
// capability only.
func Register(a Athlete, sport string) string {
	return fmt.Sprintf("registered: %s", a.Train(sport))
}
