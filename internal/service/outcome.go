package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-access-keeper/internal/app"
	"github.com/MKhiriev/go-access-keeper/models"
)

var outcomeMessages = []struct {
	err error
	msg string
}{
	// ErrAccountLockedNow wraps ErrAccountLocked and must be matched first.
	{ErrAccountLockedNow, app.MsgAccountLockedNow},
	{ErrAccountLocked, app.MsgAccountLocked},
	{ErrInvalidCredentials, app.MsgInvalidCredentials},
	{ErrInvalidToken, app.MsgInvalidToken},
	{ErrTokenExpired, app.MsgTokenExpired},
	{ErrPasswordMismatch, app.MsgPasswordMismatch},
	{ErrGroupAlreadyExists, app.MsgGroupAlreadyExists},
	{ErrGroupNotFound, app.MsgGroupNotFound},
	{ErrAlreadyMember, app.MsgUserAlreadyInGroup},
	{ErrUserNotFound, app.MsgUserNotFound},
	{ErrEmailAlreadyExists, app.MsgEmailAlreadyExists},
	{ErrUsernameAlreadyExists, app.MsgUsernameAlreadyExists},
	{ErrInvalidDataProvided, app.MsgInvalidDataProvided},
}

// Describe returns the human readable text for an operation outcome.
// Unknown errors fall back to their own message.
func Describe(err error) string {
	if err == nil {
		return "OK"
	}

	for _, o := range outcomeMessages {
		if errors.Is(err, o.err) {
			return o.msg
		}
	}

	return err.Error()
}

// LoginMessage is the text shown for a successful login.
func LoginMessage(token models.Token) string {
	return fmt.Sprintf(app.MsgLoginSuccessful, token.Token)
}
