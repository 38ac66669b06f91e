// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package postgres

// Generic database/sql support code: withTx() to do work in a
// transaction that can be retried, and scanRows() to loop over the
// results of a multi-row SELECT.

import (
	"database/sql"

	"github.com/lib/pq"
)

// withTx calls some function with a transaction object.  If f panics
// or returns a non-nil error, rolls the transaction back; otherwise
// commits it before returning.  Serialization failures are retried
// with a fresh transaction.
func withTx(db *sql.DB, f func(*sql.Tx) error) (err error) {
	var (
		tx   *sql.Tx
		done bool
	)

	defer func() {
		if tx != nil && !done {
			err2 := tx.Rollback()
			if err == nil && err2 != sql.ErrTxDone {
				err = err2
			}
		}
	}()

	for {
		tx, err = db.Begin()
		if err != nil {
			return
		}

		err = f(tx)
		if err == nil {
			err = tx.Commit()
			done = true
		}

		// On a serialization error, roll back and retry.
		if pqerr, ok := err.(*pq.Error); ok && pqerr.Code == "40001" {
			err = tx.Rollback()
			if err == sql.ErrTxDone {
				err = nil
			} else if err != nil {
				return
			}
			tx = nil
			continue
		}

		break
	}
	return
}

// scanRows calls a function for each row in a query result.  The
// callback should only call the Scan() method on the provided Rows
// object; scanRows takes care of advancing through the rows and
// closing the iterator.
func scanRows(rows *sql.Rows, f func() error) (err error) {
	var done bool
	defer func() {
		if !done {
			err2 := rows.Close()
			if err == nil {
				err = err2
			}
		}
	}()

	for rows.Next() {
		if err = f(); err != nil {
			return
		}
	}
	done = true
	return rows.Err()
}
