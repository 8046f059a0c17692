package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

type GroupServiceInterface interface {
	CreateGroup(ctx context.Context, actorID uuid.UUID, request request_models.CreateGroupRequest) (*response_models.GroupResponse, error)
	ListGroups(ctx context.Context, actorID uuid.UUID) ([]response_models.GroupResponse, error)
	ListMembers(ctx context.Context, actorID, groupID uuid.UUID) ([]response_models.GroupMemberResponse, error)
	AddMember(ctx context.Context, actorID, groupID uuid.UUID, request request_models.AddGroupMemberRequest) (*response_models.GroupMemberResponse, error)
	RemoveMember(ctx context.Context, actorID, groupID, memberID uuid.UUID) error
}

type GroupService struct {
	groupRepo   repositories.GroupRepository
	accountRepo repositories.AccountRepository
	log         *zap.Logger
}

func NewGroupService(groupRepo repositories.GroupRepository, accountRepo repositories.AccountRepository, log *zap.Logger) GroupServiceInterface {
	return &GroupService{
		groupRepo:   groupRepo,
		accountRepo: accountRepo,
		log:         log.Named("group"),
	}
}

func (s *GroupService) CreateGroup(ctx context.Context, actorID uuid.UUID, request request_models.CreateGroupRequest) (*response_models.GroupResponse, error) {
	group := &dbm.Group{Name: request.Name, OwnerID: actorID}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, storeError(s.log, "create group", err)
	}
	out := dbm.BuildGroupResponse(group)
	return &out, nil
}

func (s *GroupService) ListGroups(ctx context.Context, actorID uuid.UUID) ([]response_models.GroupResponse, error) {
	groups, err := s.groupRepo.ListForUser(ctx, actorID)
	if err != nil {
		return nil, storeError(s.log, "list groups", err)
	}
	out := make([]response_models.GroupResponse, 0, len(groups))
	for i := range groups {
		out = append(out, dbm.BuildGroupResponse(&groups[i]))
	}
	return out, nil
}

// visibleGroup returns the group when the actor is a member. Non-members get not found.
func (s *GroupService) visibleGroup(ctx context.Context, actorID, groupID uuid.UUID) (*dbm.Group, error) {
	group, err := s.groupRepo.FindById(ctx, groupID)
	if err != nil {
		return nil, storeError(s.log, "find group", err)
	}
	if group == nil {
		return nil, utils.ErrGroupNotFound
	}
	if group.OwnerID == actorID {
		return group, nil
	}
	member, err := s.groupRepo.IsMember(ctx, groupID, actorID)
	if err != nil {
		return nil, storeError(s.log, "check group membership", err)
	}
	if !member {
		return nil, utils.ErrGroupNotFound
	}
	return group, nil
}

func (s *GroupService) ownedGroup(ctx context.Context, actorID, groupID uuid.UUID) (*dbm.Group, error) {
	group, err := s.visibleGroup(ctx, actorID, groupID)
	if err != nil {
		return nil, err
	}
	if group.OwnerID != actorID {
		return nil, utils.ErrForbidden
	}
	return group, nil
}

func (s *GroupService) ListMembers(ctx context.Context, actorID, groupID uuid.UUID) ([]response_models.GroupMemberResponse, error) {
	if _, err := s.visibleGroup(ctx, actorID, groupID); err != nil {
		return nil, err
	}
	members, err := s.groupRepo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, storeError(s.log, "list members", err)
	}
	out := make([]response_models.GroupMemberResponse, 0, len(members))
	for i := range members {
		out = append(out, dbm.BuildGroupMemberResponse(&members[i]))
	}
	return out, nil
}

func (s *GroupService) AddMember(ctx context.Context, actorID, groupID uuid.UUID, request request_models.AddGroupMemberRequest) (*response_models.GroupMemberResponse, error) {
	role := dbm.GroupRoleMember
	if request.Role != nil {
		if *request.Role == dbm.GroupRoleOwner {
			return nil, utils.ErrOwnerRole
		}
		role = *request.Role
	}

	if _, err := s.ownedGroup(ctx, actorID, groupID); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return nil, storeError(s.log, "find account by email", err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	already, err := s.groupRepo.IsMember(ctx, groupID, account.ID)
	if err != nil {
		return nil, storeError(s.log, "check group membership", err)
	}
	if already {
		return nil, utils.ErrAlreadyMember
	}

	member := &dbm.GroupMember{GroupID: groupID, UserID: account.ID, Role: role}
	if err := s.groupRepo.AddMember(ctx, member); err != nil {
		return nil, storeError(s.log, "add member", conflictOr(err, utils.ErrAlreadyMember))
	}
	member.User = account

	s.log.Info("group member added",
		zap.String("group_id", groupID.String()),
		zap.String("user_id", account.ID.String()))
	out := dbm.BuildGroupMemberResponse(member)
	return &out, nil
}

func (s *GroupService) RemoveMember(ctx context.Context, actorID, groupID, memberID uuid.UUID) error {
	group, err := s.ownedGroup(ctx, actorID, groupID)
	if err != nil {
		return err
	}

	member, err := s.groupRepo.FindMember(ctx, groupID, memberID)
	if err != nil {
		return storeError(s.log, "find member", err)
	}
	if member == nil {
		return utils.ErrMemberNotFound
	}
	if member.UserID == group.OwnerID {
		return utils.ErrOwnerMembership
	}

	return storeError(s.log, "remove member", s.groupRepo.RemoveMember(ctx, memberID))
}
