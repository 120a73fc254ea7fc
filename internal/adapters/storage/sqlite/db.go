// Package sqlite é a persistência embutida (arquivo local ou :memory:),
// para dev e para rodar sem Postgres. Mesmo schema lógico do backend
// postgres, dialeto SQLite.
package sqlite

import (
	"database/sql"
	_ "embed"
	"errors"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

var (
	ErrNotFound = errors.New("not found")
)

//go:embed schema.sql
var schema string

// Open abre (ou cria) o banco no caminho dado e aplica o schema.
// Use ":memory:" para um banco volátil.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}

	// Uma conexão só: evita que o pool de database/sql abra vários
	// handles (com :memory: cada conexão seria um banco diferente).
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
