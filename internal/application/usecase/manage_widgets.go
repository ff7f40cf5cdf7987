package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

// ManageNotesUseCase loads and saves the notes widget text.
type ManageNotesUseCase struct {
	repo repository.NotesRepository
}

// NewManageNotesUseCase creates a new notes use case.
func NewManageNotesUseCase(repo repository.NotesRepository) *ManageNotesUseCase {
	return &ManageNotesUseCase{repo: repo}
}

// Load returns the saved notes text.
func (uc *ManageNotesUseCase) Load(ctx context.Context) (string, error) {
	text, err := uc.repo.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load notes: %w", err)
	}
	return text, nil
}

// Save stores the notes text.
func (uc *ManageNotesUseCase) Save(ctx context.Context, text string) error {
	if err := uc.repo.Save(ctx, text); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	logging.FromContext(ctx).Debug().Int("bytes", len(text)).Msg("notes saved")
	return nil
}

// ManageClipboardUseCase backs the clipboard widget: it captures system
// clipboard text into a bounded history and copies entries back.
type ManageClipboardUseCase struct {
	repo      repository.ClipboardRepository
	clipboard port.Clipboard
	now       func() time.Time
}

// NewManageClipboardUseCase creates a new clipboard use case.
func NewManageClipboardUseCase(repo repository.ClipboardRepository, clipboard port.Clipboard) *ManageClipboardUseCase {
	return &ManageClipboardUseCase{repo: repo, clipboard: clipboard, now: time.Now}
}

// List returns the history, newest first.
func (uc *ManageClipboardUseCase) List(ctx context.Context) ([]entity.ClipboardEntry, error) {
	entries, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clipboard: %w", err)
	}
	return entries, nil
}

// Capture reads the system clipboard and records its text. Empty or
// whitespace-only clipboards leave the history unchanged.
func (uc *ManageClipboardUseCase) Capture(ctx context.Context) ([]entity.ClipboardEntry, error) {
	text, err := uc.clipboard.ReadText(ctx)
	if err != nil {
		return nil, fmt.Errorf("read clipboard: %w", err)
	}
	entries, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return entries, nil
	}
	if len(entries) > 0 && entries[0].Text == text {
		return entries, nil
	}

	entries = entity.PushClipboardEntry(entries, text, uc.now())
	if err := uc.repo.Save(ctx, entries); err != nil {
		return nil, fmt.Errorf("save clipboard: %w", err)
	}
	return entries, nil
}

// Copy writes the entry at index back to the system clipboard and moves it
// to the top.
func (uc *ManageClipboardUseCase) Copy(ctx context.Context, index int) ([]entity.ClipboardEntry, error) {
	entries, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(entries) {
		return entries, fmt.Errorf("clipboard entry %d out of range", index)
	}
	text := entries[index].Text
	if err := uc.clipboard.WriteText(ctx, text); err != nil {
		return entries, fmt.Errorf("write clipboard: %w", err)
	}

	entries = entity.PushClipboardEntry(entries, text, uc.now())
	if err := uc.repo.Save(ctx, entries); err != nil {
		return nil, fmt.Errorf("save clipboard: %w", err)
	}
	return entries, nil
}

// Delete removes the entry at index.
func (uc *ManageClipboardUseCase) Delete(ctx context.Context, index int) ([]entity.ClipboardEntry, error) {
	entries, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(entries) {
		return entries, nil
	}
	entries = append(entries[:index:index], entries[index+1:]...)
	if err := uc.repo.Save(ctx, entries); err != nil {
		return nil, fmt.Errorf("save clipboard: %w", err)
	}
	return entries, nil
}

// Clear empties the history.
func (uc *ManageClipboardUseCase) Clear(ctx context.Context) error {
	if err := uc.repo.Save(ctx, []entity.ClipboardEntry{}); err != nil {
		return fmt.Errorf("clear clipboard: %w", err)
	}
	return nil
}
