package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/guard"
)

var ErrMarkNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkNotificationsReadCommand must be created via NewMarkNotificationsReadCommand constructor",
)

// MarkNotificationsReadCommand clears the unread flag of a user's whole inbox.
type MarkNotificationsReadCommand struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNotificationsReadCommand builds the command for userID.
func NewMarkNotificationsReadCommand(userID kernel.UUID) (MarkNotificationsReadCommand, error) {
	if err := userID.Validate(); err != nil {
		return MarkNotificationsReadCommand{}, err
	}
	return MarkNotificationsReadCommand{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the command was built by its constructor.
func (c MarkNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationsReadCommandIsNotConstructed)
}

func (c MarkNotificationsReadCommand) UserID() kernel.UUID { return c.userID }

// MarkNotificationsReadCommandHandler marks every unread notification of a user as read.
// It is a single statement, so it runs without a unit of work.
type MarkNotificationsReadCommandHandler struct {
	notifications ports.NotificationRepository
}

func NewMarkNotificationsReadCommandHandler(
	notifications ports.NotificationRepository,
) MarkNotificationsReadCommandHandler {
	return MarkNotificationsReadCommandHandler{notifications: notifications}
}

// Handle returns how many notifications changed.
func (h MarkNotificationsReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationsReadCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.notifications.MarkAllAsRead(ctx, cmd.UserID())
}
