package dbconnect

import "database/sql"

type DbConnector interface {
	Connect() (*sql.DB, error)
}

type Database interface {
	Connect() (*sql.DB, error)
	Ping() error
}
