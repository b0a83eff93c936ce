// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free from ORM
// concerns: domain types carry no GORM tags, persistence models own the table mappings,
// and each model provides mappers in both directions. Repositories work exclusively
// with persistence models.
package models
