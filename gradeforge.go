// Package gradeforge turns documents from a university course-registration
// portal (catalog listings, section listings, final-exam schedules,
// bookstore listings, grade reports) into normalized relational records
// ready for bulk load into SQLite.
//
// This package contains domain types, value normalizers, the per-batch
// deduplication state and the interfaces implemented in subdirectories
// named after their primary dependency (e.g., goquery/, sqlite/, csv/).
package gradeforge
