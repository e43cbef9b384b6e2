package reconcile

import (
	"context"

	"oidcsync/internal/models"
)

//go:generate mockgen -source=events.go -destination=../mocks/observer.go -package=mocks

// EventData is the immutable claim snapshot carried by both notifications.
// Values are copied so observers never alias the engine's working state.
type EventData struct {
	IDToken  models.IDTokenClaims
	UserInfo models.UserInfo
}

// NewEventData builds a snapshot from the claims of the current cycle.
func NewEventData(idToken *models.IDTokenClaims, info *models.UserInfo) EventData {
	data := EventData{
		IDToken:  *idToken,
		UserInfo: *info,
	}

	if info.Address != nil {
		address := *info.Address
		data.UserInfo.Address = &address
	}

	return data
}

// Observer receives the engine's extension-point notifications.
//
// UserUpdating fires before the diff/persist decision with the staged working
// copy; observers may mutate the record synchronously. UserUpdated fires
// after a successful save with the final record. Neither event carries a
// cancellation signal back to the engine.
type Observer interface {
	UserUpdating(ctx context.Context, record *models.UserRecord, data EventData)
	UserUpdated(ctx context.Context, record *models.UserRecord, data EventData)
}
