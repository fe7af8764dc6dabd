// Package models defines the core domain models for the form service.
//
// # Models
//
//   - Submission: one accepted form submission (first name, last name,
//     rendered greeting, creation time)
//   - User: an admin account used only by the authenticated listing API
//
// # Design Principles
//
// 1. **Anonymous by default**: form visitors are not identified; a
// submission carries only what was typed into the form
// 2. **Flat records**: no pointers between models, relationships (none so
// far) would use ID strings
// 3. **Store assigns identity**: IDs and timestamps are filled in by the
// storage layer on create, so callers build bare values
package models
