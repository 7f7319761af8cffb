package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/oliverisaac/pinboard/types"
	"github.com/pkg/errors"
)

const (
	maxNoteTitle = 255

	minSpawnX, maxSpawnX = types.DefaultX, 400
	minSpawnY, maxSpawnY = types.DefaultY, 300
)

type NoteInput struct {
	BoardID uint
	Title   string
	Color   string
	Tag     string
	Content string
}

// NoteUpdate carries the fields of a full note update. Nil fields keep their
// stored value.
type NoteUpdate struct {
	Title   *string
	Content *string
	Color   *string
	Tag     *string
}

// ListNotes returns the notes of a board oldest first, so later notes stack
// on top when rendered in order.
func (s *Service) ListNotes(ctx context.Context, owner uint, boardID uint) ([]types.Note, error) {
	ret := []types.Note{}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND board_id = ?", owner, boardID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&ret).Error
	if err != nil {
		return nil, errors.Wrapf(err, "listing notes of board %d", boardID)
	}
	return ret, nil
}

func (s *Service) CreateNote(ctx context.Context, owner uint, in NoteInput) (types.Note, error) {
	board, err := s.guardBoard(ctx, owner, in.BoardID)
	if err != nil {
		return types.Note{}, err
	}

	title := truncate(strings.TrimSpace(in.Title), maxNoteTitle)
	if title == "" {
		title = types.DefaultNoteTitle
	}

	color := types.DefaultColor
	if in.Color != "" {
		color = types.NormalizeColor(in.Color, types.DefaultColor)
	}

	now := s.now()
	note := types.Note{
		UserID:     owner,
		BoardID:    board.ID,
		Title:      title,
		Content:    strings.TrimSpace(in.Content),
		X:          minSpawnX + s.intn(maxSpawnX-minSpawnX+1),
		Y:          minSpawnY + s.intn(maxSpawnY-minSpawnY+1),
		Width:      types.DefaultWidth,
		Height:     types.DefaultHeight,
		Color:      color,
		Tag:        types.NormalizeTag(in.Tag, s.freeTags),
		CreatedAt:  now,
		LastEdited: now,
	}

	if err := s.db.WithContext(ctx).Create(&note).Error; err != nil {
		return note, errors.Wrap(err, "creating note")
	}
	return note, nil
}

func (s *Service) UpdateNote(ctx context.Context, owner uint, id uint, upd NoteUpdate) (types.Note, error) {
	note, err := s.guardNote(ctx, owner, id)
	if err != nil {
		return note, err
	}

	if upd.Title != nil {
		note.Title = truncate(strings.TrimSpace(*upd.Title), maxNoteTitle)
		if note.Title == "" {
			note.Title = types.DefaultNoteTitle
		}
	}
	if upd.Content != nil {
		note.Content = *upd.Content
	}
	if upd.Color != nil {
		note.Color = types.NormalizeColor(*upd.Color, note.Color)
	}
	if upd.Tag != nil {
		note.Tag = types.NormalizeTag(*upd.Tag, s.freeTags)
	}
	note.LastEdited = s.now()

	err = s.db.WithContext(ctx).Model(&note).Updates(map[string]any{
		"title":       note.Title,
		"content":     note.Content,
		"color":       note.Color,
		"tag":         note.Tag,
		"last_edited": note.LastEdited,
	}).Error
	if err != nil {
		return note, errors.Wrapf(err, "updating note %d", id)
	}
	return note, nil
}

func (s *Service) DeleteNote(ctx context.Context, owner uint, id uint) (types.Note, error) {
	note, err := s.guardNote(ctx, owner, id)
	if err != nil {
		return note, err
	}
	if err := s.db.WithContext(ctx).Delete(&note).Error; err != nil {
		return note, errors.Wrapf(err, "deleting note %d", id)
	}
	return note, nil
}

// UpdatePosition writes x and y only. Both must be integers.
func (s *Service) UpdatePosition(ctx context.Context, owner uint, id uint, rawX string, rawY string) error {
	note, err := s.guardNote(ctx, owner, id)
	if err != nil {
		return err
	}

	x, xErr := parseInt(rawX)
	y, yErr := parseInt(rawY)
	if xErr != nil || yErr != nil {
		return errors.Wrapf(types.ErrInvalidInput, "coordinates (%q, %q)", rawX, rawY)
	}

	return s.patchNote(ctx, note, map[string]any{"x": x, "y": y})
}

// UpdateSize writes width and height only, raising each to at least
// types.MinNoteSize.
func (s *Service) UpdateSize(ctx context.Context, owner uint, id uint, rawWidth string, rawHeight string) error {
	note, err := s.guardNote(ctx, owner, id)
	if err != nil {
		return err
	}

	width, wErr := parseInt(rawWidth)
	height, hErr := parseInt(rawHeight)
	if wErr != nil || hErr != nil {
		return errors.Wrapf(types.ErrInvalidInput, "size (%q, %q)", rawWidth, rawHeight)
	}

	return s.patchNote(ctx, note, map[string]any{
		"width":  max(types.MinNoteSize, width),
		"height": max(types.MinNoteSize, height),
	})
}

// UpdateContent writes content only. An empty string clears it.
func (s *Service) UpdateContent(ctx context.Context, owner uint, id uint, content string) error {
	note, err := s.guardNote(ctx, owner, id)
	if err != nil {
		return err
	}
	return s.patchNote(ctx, note, map[string]any{"content": content})
}

// patchNote updates the given columns plus last_edited, leaving every other
// column as stored.
func (s *Service) patchNote(ctx context.Context, note types.Note, fields map[string]any) error {
	fields["last_edited"] = s.now()
	err := s.db.WithContext(ctx).
		Model(&types.Note{}).
		Where("id = ? AND user_id = ?", note.ID, note.UserID).
		Updates(fields).Error
	if err != nil {
		return errors.Wrapf(err, "updating note %d", note.ID)
	}
	return nil
}

func parseInt(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}
