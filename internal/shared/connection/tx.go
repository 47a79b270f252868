package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// BindTx returns a gorm handle whose statements run on tx. Services own the
// transaction; repositories only borrow it.
func BindTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	bound := db.Session(&gorm.Session{
		Context:                context.Background(),
		NewDB:                  true,
		SkipDefaultTransaction: true,
	})
	bound.Statement.ConnPool = tx
	return bound
}
