package registration

import (
	"context"

	"fitclub/internal/groupclass"
)

type Repository interface {
	// Atomically runs fn with every key held, reads and writes included.
	Atomically(ctx context.Context, keys []string, fn func(Ledger) error) error
	// ListByMember returns the member's enrollments ordered by class date and start.
	ListByMember(ctx context.Context, memberID int) ([]Enrollment, error)
}

// Ledger is the view of the store available inside one atomic unit.
type Ledger interface {
	// GetClass reports found=false when the class does not exist.
	GetClass(ctx context.Context, classID int) (class *groupclass.Class, found bool, err error)
	IsRegistered(ctx context.Context, classID, memberID int) (bool, error)
	CountForClass(ctx context.Context, classID int) (int, error)
	CreateRegistration(ctx context.Context, classID, memberID int) (*Registration, error)
}
