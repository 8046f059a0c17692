package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "tripplanner/internal/models/db_models"
)

type GroupRepository interface {
	// Create inserts the group together with the owner membership.
	Create(ctx context.Context, group *dbm.Group) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]dbm.Group, error)
	FindById(ctx context.Context, id uuid.UUID) (*dbm.Group, error)
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]dbm.GroupMember, error)
	AddMember(ctx context.Context, member *dbm.GroupMember) error
	FindMember(ctx context.Context, groupID, memberID uuid.UUID) (*dbm.GroupMember, error)
	RemoveMember(ctx context.Context, memberID uuid.UUID) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *dbm.Group) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(group).Error; err != nil {
			return err
		}
		owner := dbm.GroupMember{GroupID: group.ID, UserID: group.OwnerID, Role: dbm.GroupRoleOwner}
		return tx.Omit(clause.Associations).Create(&owner).Error
	})
}

func (r *groupRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]dbm.Group, error) {
	db := r.db.WithContext(ctx)
	memberships := db.Model(&dbm.GroupMember{}).Select("group_id").Where("user_id = ?", userID)

	groups := []dbm.Group{}
	err := db.Where("owner_id = ? OR id IN (?)", userID, memberships).
		Order("name ASC").
		Find(&groups).Error
	return groups, err
}

func (r *groupRepository) FindById(ctx context.Context, id uuid.UUID) (*dbm.Group, error) {
	var group dbm.Group
	if err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error; err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *groupRepository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]dbm.GroupMember, error) {
	members := []dbm.GroupMember{}
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

func (r *groupRepository) AddMember(ctx context.Context, member *dbm.GroupMember) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(member).Error
}

func (r *groupRepository) FindMember(ctx context.Context, groupID, memberID uuid.UUID) (*dbm.GroupMember, error) {
	var member dbm.GroupMember
	err := r.db.WithContext(ctx).
		Where("id = ? AND group_id = ?", memberID, groupID).
		First(&member).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *groupRepository) RemoveMember(ctx context.Context, memberID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", memberID).Delete(&dbm.GroupMember{}).Error
}
