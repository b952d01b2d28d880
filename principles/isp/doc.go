// Package isp demonstrates the Interface Segregation Principle: prefer many
// narrow, capability-specific interfaces over one broad interface.
//
// The fixture is a student athlete. The smell, CampusAthlete, is one fat
// interface carrying the whole campus: study, sit exams, train, compete.
// A pure athlete must stub the academic methods to satisfy it, and every
// consumer of the interface depends on methods it never calls.
//
// The refactored form splits the capabilities into Student and Athlete.
// StudentAthlete composes both; Enroll asks only for Student, Register asks
// only for Athlete, and nobody implements a method they do not have.
package isp
