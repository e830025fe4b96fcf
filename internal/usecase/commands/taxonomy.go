package commands

import (
	"context"

	"place-booking/internal/domain/taxonomy"
	"place-booking/internal/infra"
	"place-booking/internal/pkg/errs"
	"place-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=taxonomy.go -destination=../../../tests/mock/commands/taxonomy.go -package=commandsmock

var (
	ErrTagNotFound          = errs.Mark(errs.New("tag not found"), errs.ErrNotFound)
	ErrParentNotFound       = errs.Mark(errs.New("location or resource type not found"), errs.ErrNotFound)
	ErrResourceTypeNotFound = errs.Mark(errs.New("resource type not found"), errs.ErrNotFound)
)

type TaxonomyCommands interface {
	CreateLocation(ctx context.Context, name, address string) (*taxonomy.Location, error)
	CreateResourceType(ctx context.Context, name string) (*taxonomy.ResourceType, error)
	CreateResource(ctx context.Context, name string, locationID, typeID uuid.UUID) (*taxonomy.Resource, error)
	CreateTag(ctx context.Context, name string, resourceTypeID uuid.UUID) (*taxonomy.Tag, error)
	AttachTag(ctx context.Context, resourceID, tagID uuid.UUID) error
}

type taxonomyUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewTaxonomyUseCase(uow shared.UnitOfWork) TaxonomyCommands {
	return &taxonomyUseCaseImpl{uow: uow}
}

func (uc *taxonomyUseCaseImpl) CreateLocation(ctx context.Context, name, address string) (*taxonomy.Location, error) {
	loc, err := taxonomy.NewLocation(name, address)
	if err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Taxonomy().CreateLocation(ctx, loc)
	})
	if err != nil {
		return nil, surface(err, errs.ErrDuplicateName)
	}
	return loc, nil
}

func (uc *taxonomyUseCaseImpl) CreateResourceType(ctx context.Context, name string) (*taxonomy.ResourceType, error) {
	rt, err := taxonomy.NewResourceType(name)
	if err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Taxonomy().CreateResourceType(ctx, rt)
	})
	if err != nil {
		return nil, surface(err, errs.ErrDuplicateName)
	}
	return rt, nil
}

func (uc *taxonomyUseCaseImpl) CreateResource(ctx context.Context, name string, locationID, typeID uuid.UUID) (*taxonomy.Resource, error) {
	res, err := taxonomy.NewResource(name, locationID, typeID)
	if err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Taxonomy().CreateResource(ctx, res); derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.WithSecondary(ErrParentNotFound, derr)
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return nil, surface(err, errs.ErrDuplicateName)
	}
	return res, nil
}

func (uc *taxonomyUseCaseImpl) CreateTag(ctx context.Context, name string, resourceTypeID uuid.UUID) (*taxonomy.Tag, error) {
	tag, err := taxonomy.NewTag(name, resourceTypeID)
	if err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Taxonomy().CreateTag(ctx, tag); derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.WithSecondary(ErrResourceTypeNotFound, derr)
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return nil, surface(err, errs.ErrDuplicateName)
	}
	return tag, nil
}

// AttachTag is idempotent: linking an already linked pair succeeds.
func (uc *taxonomyUseCaseImpl) AttachTag(ctx context.Context, resourceID, tagID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Taxonomy()
		res, derr := repo.GetResource(ctx, resourceID)
		if derr != nil {
			return notFoundAs(derr, ErrResourceNotFound)
		}
		tag, derr := repo.GetTag(ctx, tagID)
		if derr != nil {
			return notFoundAs(derr, ErrTagNotFound)
		}
		if derr = res.CanCarry(tag); derr != nil {
			return derr
		}
		_, derr = repo.AttachTag(ctx, resourceID, tagID)
		return derr
	})
	return surface(err, errs.ErrDuplicateName)
}
