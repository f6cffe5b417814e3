package tx

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type key string

const KeyTx = key("tx")

// Inject returns ctx carrying the open transaction t.
func Inject(ctx context.Context, t *sqlx.Tx) context.Context {
	return context.WithValue(ctx, KeyTx, t)
}

// Extract returns the transaction carried by ctx, if any.
func Extract(ctx context.Context) (*sqlx.Tx, bool) {
	t, ok := ctx.Value(KeyTx).(*sqlx.Tx)
	return t, ok && t != nil
}
