// Package database establishes the GORM/MySQL connection used by both
// the ingestion pipeline and the catalog server.
//
// The connection enables GORM error translation so unique constraint
// violations surface as gorm.ErrDuplicatedKey, which the insert-or-find
// primitive in core/store relies on as its race backstop.
package database
