// Package models defines the core domain models for Taskboard.
//
// Ownership forms a two-level chain: a User owns Projects, and a Project
// contains Tasks. A Task carries no user reference of its own; its effective
// owner is always the owner of its parent Project. Every authorization
// decision in the service layer reduces to walking this chain and comparing
// the terminal owner id against the requester id.
//
// Relationships are expressed as ID strings rather than pointers to avoid
// circular references between models.
package models
