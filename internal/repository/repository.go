// Package repository handles all interactions with the database.
//
// It holds the SQL statements and the methods that run them, keeping SQL
// out of the service layer. Every value reaches Postgres as a positional
// parameter; nothing from a request is ever spliced into statement text.
package repository
