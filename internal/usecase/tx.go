package usecase

import "context"

// TxRunner executes fn as one atomic unit of work: every repository
// call made with the derived context either commits together or not at
// all. Implementations must also serialize units touching the same
// season, since the auction assumes a single writer per season.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
