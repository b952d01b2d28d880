// Package srp demonstrates the Single Responsibility Principle: a module
// should have one reason to change.
//
// The fixture is a Book. The smell, OmnibusBook, is a book that also formats
// its own pages, prints itself to the console, and persists itself to an
// archive. That single type now changes when the content model changes, when
// the presentation changes, and when the storage medium changes.
//
// The refactored form splits those responsibilities: Book holds content and
// nothing else, PageRenderer owns presentation, Printer owns output, and
// Archive owns persistence. Each collaborator has exactly one reason to
// change, and Book can evolve without dragging rendering or storage along.
package srp
