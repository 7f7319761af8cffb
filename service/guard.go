package service

import (
	"context"

	"github.com/oliverisaac/pinboard/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// guardBoard loads a board by id and owner. A board owned by someone else is
// reported exactly like a missing one.
func (s *Service) guardBoard(ctx context.Context, owner uint, id uint) (types.Board, error) {
	var board types.Board
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, owner).First(&board).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return board, errors.Wrapf(types.ErrNotFound, "board %d", id)
	}
	if err != nil {
		return board, errors.Wrapf(err, "loading board %d", id)
	}
	return board, nil
}

func (s *Service) guardNote(ctx context.Context, owner uint, id uint) (types.Note, error) {
	var note types.Note
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, owner).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return note, errors.Wrapf(types.ErrNotFound, "note %d", id)
	}
	if err != nil {
		return note, errors.Wrapf(err, "loading note %d", id)
	}
	return note, nil
}

// GetBoard returns the owner's board with the given id.
func (s *Service) GetBoard(ctx context.Context, owner uint, id uint) (types.Board, error) {
	return s.guardBoard(ctx, owner, id)
}

// GetNote returns the owner's note with the given id.
func (s *Service) GetNote(ctx context.Context, owner uint, id uint) (types.Note, error) {
	return s.guardNote(ctx, owner, id)
}
