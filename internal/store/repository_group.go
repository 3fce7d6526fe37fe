package store

import (
	"context"

	"github.com/MKhiriev/go-access-keeper/internal/logger"
	"github.com/MKhiriev/go-access-keeper/models"
)

// groupRepository is the in-memory implementation of [GroupRepository].
type groupRepository struct {
	groups map[string]models.Group

	logger *logger.Logger
}

// NewGroupRepository constructs an empty [GroupRepository].
func NewGroupRepository(logger *logger.Logger) GroupRepository {
	logger.Debug().Msg("creating group repository")
	return &groupRepository{
		groups: make(map[string]models.Group),
		logger: logger,
	}
}

func (r *groupRepository) CreateGroup(_ context.Context, group models.Group) error {
	if _, ok := r.groups[group.Name]; ok {
		return ErrGroupAlreadyExists
	}

	r.groups[group.Name] = group.Clone()
	return nil
}

func (r *groupRepository) FindGroup(_ context.Context, name string) (models.Group, error) {
	group, ok := r.groups[name]
	if !ok {
		return models.Group{}, ErrGroupNotFound
	}

	return group.Clone(), nil
}

func (r *groupRepository) UpdateGroup(_ context.Context, group models.Group) error {
	if _, ok := r.groups[group.Name]; !ok {
		return ErrGroupNotFound
	}

	r.groups[group.Name] = group.Clone()
	return nil
}
