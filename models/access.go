package models

import (
	"context"

	"github.com/mmdatafocus/grange_backend/utils"
)

// CheckListAccess enforces the user's access scope on a filtered list:
// filter=true needs access to active entities, false to inactive ones.
func (s *Store) CheckListAccess(ctx context.Context, filter bool, plural string) error {
	user, err := s.Users.Current(ctx)
	if err != nil {
		return err
	}
	if filter && !user.AccessActive {
		return utils.ErrForbidden("Cant access active " + plural)
	}
	if !filter && !user.AccessInactive {
		return utils.ErrForbidden("Cant access inactive " + plural)
	}
	return nil
}

// CheckEntityAccess enforces the access scope against one fetched entity.
func (s *Store) CheckEntityAccess(ctx context.Context, active bool, singular string) error {
	user, err := s.Users.Current(ctx)
	if err != nil {
		return err
	}
	if (active && !user.AccessActive) || (!active && !user.AccessInactive) {
		return utils.ErrForbidden("Cant access " + singular + " not allowed")
	}
	return nil
}

// CheckReportAccess requires both partitions; reports mix active and inactive rows.
func (s *Store) CheckReportAccess(ctx context.Context) error {
	user, err := s.Users.Current(ctx)
	if err != nil {
		return err
	}
	if !user.AccessActive || !user.AccessInactive {
		return utils.ErrForbidden("Cant access reports, active and inactive access required")
	}
	return nil
}
