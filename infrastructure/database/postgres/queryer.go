package postgres

import (
	"database/sql"
)

// Queryer é o subconjunto de operações comum a *sql.DB e *sql.Tx.
// Os repositórios trabalham sobre essa interface para que as mesmas queries
// rodem tanto na conexão quanto dentro de uma transação aberta.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
