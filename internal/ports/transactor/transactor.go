package transactor

import "context"

// Transactor spans a single atomic unit of work over one or more
// repository calls made within the callback
type Transactor interface {
	WithTransaction(context.Context, func(ctx context.Context) error) error
}
