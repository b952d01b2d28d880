package isp

import "fmt"

// CampusAthlete is the smell: one interface for the whole campus. Every
// implementer carries every method, needed or not.
type CampusAthlete interface {
	Study(subject string) string
	SitExam(subject string) string
	Train(sport string) string
	Compete(event string) string
}

// ProctoredAthlete is a pure athlete forced through the fat interface. The
// academic methods are stubs that can only apologize.
type ProctoredAthlete struct {
	Name string
}

// Train hits the practice field.
func (a ProctoredAthlete) Train(sport string) string {
	return fmt.Sprintf("%s trains for %s", a.Name, sport)
}

// Compete enters an event.
func (a ProctoredAthlete) Compete(event string) string {
	return fmt.Sprintf("%s competes in %s", a.Name, event)
}

// Study exists only to satisfy the fat interface.
func (a ProctoredAthlete) Study(string) string {
	return fmt.Sprintf("%s does not take classes", a.Name)
}

// SitExam exists only to satisfy the fat interface.
func (a ProctoredAthlete) SitExam(string) string {
	return fmt.Sprintf("%s has no exams to sit", a.Name)
}

var _ CampusAthlete = ProctoredAthlete{}
