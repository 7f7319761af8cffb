package service

import (
	"context"
	"strings"

	"github.com/oliverisaac/pinboard/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxBoardName = 100

func (s *Service) ListBoards(ctx context.Context, owner uint) ([]types.Board, error) {
	ret := []types.Board{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("updated_at DESC").
		Order("id DESC").
		Find(&ret).Error
	if err != nil {
		return nil, errors.Wrapf(err, "listing boards of user %d", owner)
	}
	return ret, nil
}

// GetOrBootstrapDefault picks the board to show on the dashboard. An owner
// without boards gets a fresh "My Board"; otherwise requestedID is loaded when
// given, else the most recently updated board. created reports whether the
// default board was made by this call.
func (s *Service) GetOrBootstrapDefault(ctx context.Context, owner uint, requestedID *uint) (board types.Board, created bool, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serialize concurrent first visits on the owner's row. SQLite gets
		// the same effect from its immediate transactions.
		if tx.Dialector.Name() == types.DriverPostgres {
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&types.User{}, owner).Error
			if err != nil {
				return errors.Wrapf(err, "locking user %d", owner)
			}
		}

		var count int64
		if err := tx.Model(&types.Board{}).Where("user_id = ?", owner).Count(&count).Error; err != nil {
			return errors.Wrapf(err, "counting boards of user %d", owner)
		}
		if count > 0 {
			return nil
		}
		board = s.newBoard(owner, types.DefaultBoardName)
		if err := tx.Create(&board).Error; err != nil {
			return errors.Wrap(err, "creating default board")
		}
		created = true
		return nil
	})
	if err != nil || created {
		return board, created, err
	}

	if requestedID != nil {
		board, err = s.guardBoard(ctx, owner, *requestedID)
		return board, false, err
	}

	err = s.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("updated_at DESC").
		Order("id DESC").
		First(&board).Error
	if err != nil {
		return board, false, errors.Wrapf(err, "loading latest board of user %d", owner)
	}
	return board, false, nil
}

func (s *Service) newBoard(owner uint, name string) types.Board {
	now := s.now()
	return types.Board{
		UserID:    owner,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Service) CreateBoard(ctx context.Context, owner uint, name string) (types.Board, error) {
	name = truncate(strings.TrimSpace(name), maxBoardName)
	if name == "" {
		name = types.NewBoardName
	}

	board := s.newBoard(owner, name)
	if err := s.db.WithContext(ctx).Create(&board).Error; err != nil {
		return board, errors.Wrap(err, "creating board")
	}
	return board, nil
}

// RenameBoard sets the board name. A blank name leaves the current one in
// place but still counts as a write.
func (s *Service) RenameBoard(ctx context.Context, owner uint, id uint, name string) (types.Board, error) {
	board, err := s.guardBoard(ctx, owner, id)
	if err != nil {
		return board, err
	}

	name = truncate(strings.TrimSpace(name), maxBoardName)
	if name == "" {
		name = board.Name
	}

	now := s.now()
	err = s.db.WithContext(ctx).Model(&board).Updates(map[string]any{
		"name":       name,
		"updated_at": now,
	}).Error
	if err != nil {
		return board, errors.Wrapf(err, "renaming board %d", id)
	}
	board.Name = name
	board.UpdatedAt = now
	return board, nil
}

// DeleteBoard removes the board and all of its notes in one transaction.
func (s *Service) DeleteBoard(ctx context.Context, owner uint, id uint) (types.Board, error) {
	board, err := s.guardBoard(ctx, owner, id)
	if err != nil {
		return board, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ?", board.ID).Delete(&types.Note{}).Error; err != nil {
			return errors.Wrapf(err, "deleting notes of board %d", board.ID)
		}
		if err := tx.Delete(&board).Error; err != nil {
			return errors.Wrapf(err, "deleting board %d", board.ID)
		}
		return nil
	})
	return board, err
}
