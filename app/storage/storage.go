// Package storage keeps history of spam checks in sql databases.
// The storage engine is a wrapper around sqlx.DB with additional functionality to work with
// sqlite and postgres, see the engine package. Each table is represented by a struct with
// methods implementing the business logic for this data type.
package storage
