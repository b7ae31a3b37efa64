// Package models contains the GORM database models and their mapping to
// and from domain entities. Keeping the ORM annotations here keeps the
// domain packages free of persistence concerns.
package models
