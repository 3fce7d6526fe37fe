package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-access-keeper/internal/logger"
	"github.com/MKhiriev/go-access-keeper/internal/store"
	"github.com/MKhiriev/go-access-keeper/models"
)

// CreateGroup creates an empty group.
func (s *accessService) CreateGroup(ctx context.Context, name string) error {
	log := logger.FromContext(ctx).With().Str("group", name).Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.groupRepository.CreateGroup(ctx, models.Group{Name: name, Members: []string{}}); err != nil {
		if errors.Is(err, store.ErrGroupAlreadyExists) {
			return ErrGroupAlreadyExists
		}
		log.Err(err).Msg("group creation ended with error")
		return fmt.Errorf("group creation ended with error: %w", err)
	}

	log.Info().Msg("group created")
	return nil
}

// AddUserToGroup records the membership on both sides. Nothing changes when
// the user is already a member.
func (s *accessService) AddUserToGroup(ctx context.Context, username, groupName string) error {
	log := logger.FromContext(ctx).With().Str("username", username).Str("group", groupName).Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Debug().Err(err).Msg("unknown user")
		return mapUserStoreError(err)
	}

	group, err := s.groupRepository.FindGroup(ctx, groupName)
	if err != nil {
		log.Debug().Err(err).Msg("unknown group")
		if errors.Is(err, store.ErrGroupNotFound) {
			return ErrGroupNotFound
		}
		return err
	}

	if group.HasMember(username) {
		return ErrAlreadyMember
	}

	group.Members = append(group.Members, username)
	if !user.IsMemberOf(groupName) {
		user.Groups = append(user.Groups, groupName)
	}

	if err = s.groupRepository.UpdateGroup(ctx, group); err != nil {
		log.Err(err).Msg("failed to update group")
		return fmt.Errorf("failed to update group: %w", err)
	}
	if err = s.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Msg("failed to update user groups")
		return fmt.Errorf("failed to update user groups: %w", err)
	}

	log.Info().Msg("user added to group")
	return nil
}

// CheckAccess reports membership. It never fails: unknown users and groups
// simply have no access.
func (s *accessService) CheckAccess(ctx context.Context, username, groupName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userRepository.FindUserByUsername(ctx, username); err != nil {
		return false
	}

	group, err := s.groupRepository.FindGroup(ctx, groupName)
	if err != nil {
		return false
	}

	return group.HasMember(username)
}
