package log

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/asotobase/backend/internal/domain"
	"github.com/asotobase/backend/pkg/ctxutil"
)

// ListLogs returns logs readable by the authenticated user newest-first:
// their own logs plus everyone's public logs, narrowed by the filters.
func (s *Service) ListLogs(ctx context.Context, input ListLogsInput) ([]domain.Log, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	logs, err := s.logs.List(ctx, domain.LogFilter{
		ViewerID:   userID,
		Visibility: input.Visibility,
		Tag:        input.Tag,
	})
	if err != nil {
		return nil, fmt.Errorf("log.ListLogs: %w", err)
	}
	return logs, nil
}

// GetLog returns a single log. Private logs of other users are reported
// as not found, never as forbidden.
func (s *Service) GetLog(ctx context.Context, logID uuid.UUID) (*domain.Log, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	if l.UserID != userID && l.Visibility != domain.LogVisibilityPublic {
		return nil, fmt.Errorf("log %s: %w", logID, domain.ErrNotFound)
	}
	return l, nil
}

// UpdateLog applies a partial update to one of the authenticated user's
// logs. Only the owner may update a log, public or not.
func (s *Service) UpdateLog(ctx context.Context, input UpdateLogInput) (*domain.Log, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	l, err := s.getOwnedLog(ctx, userID, input.LogID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		l.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		l.Content = *input.Content
	}
	if input.Tags != nil {
		l.Tags = *input.Tags
	}
	if input.Visibility != nil {
		l.Visibility = *input.Visibility
	}
	if input.RelatedEventID != nil {
		l.RelatedEventID = input.RelatedEventID
	}
	if input.RelatedGoalID != nil {
		l.RelatedGoalID = input.RelatedGoalID
	}

	updated, err := s.logs.Update(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("log.UpdateLog: %w", err)
	}
	return updated, nil
}

// DeleteLog removes one of the authenticated user's logs. The ledger
// rows it earned are kept.
func (s *Service) DeleteLog(ctx context.Context, logID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.getOwnedLog(ctx, userID, logID); err != nil {
		return err
	}

	if err := s.logs.Delete(ctx, logID); err != nil {
		return fmt.Errorf("log.DeleteLog: %w", err)
	}

	s.log.InfoContext(ctx, "log deleted",
		slog.String("user_id", userID.String()),
		slog.String("log_id", logID.String()),
	)

	return nil
}
