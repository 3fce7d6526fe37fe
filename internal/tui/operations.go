package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-access-keeper/internal/app"
	"github.com/MKhiriev/go-access-keeper/internal/service"
	"github.com/MKhiriev/go-access-keeper/models"
)

type field struct {
	label  string
	secret bool
}

// operation binds one menu entry to a form and the access manager call it
// makes on submit.
type operation struct {
	choice string
	title  string
	page   string
	fields []field
	run    func(ctx context.Context, svc service.AccessService, values []string) operationDoneMsg
}

var (
	usernameField = field{label: "Username"}
	passwordField = field{label: "Password", secret: true}
	groupField    = field{label: "Group name"}
)

func operations() []operation {
	return []operation{
		{
			choice: "1", title: "Register", page: "register",
			fields: []field{usernameField, passwordField, {label: "Email"}},
			run: func(ctx context.Context, svc service.AccessService, v []string) operationDoneMsg {
				return outcome(svc.Register(ctx, v[0], v[1], v[2]), app.MsgRegistered)
			},
		},
		{
			choice: "2", title: "Login", page: "login",
			fields: []field{usernameField, passwordField},
			run: func(ctx context.Context, svc service.AccessService, v []string) operationDoneMsg {
				token, err := svc.Login(ctx, v[0], v[1])
				if err != nil {
					return outcome(err, "")
				}
				return operationDoneMsg{
					text:    service.LoginMessage(token),
					token:   token.Token,
					details: []string{"Expires at: " + token.ExpiresAt.Format("2006-01-02 15:04:05")},
				}
			},
		},
		{
			choice: "3", title: "Logout", page: "logout",
			fields: []field{{label: "Token"}},
			run: func(ctx context.Context, svc service.AccessService, v []string) operationDoneMsg {
				return outcome(svc.Logout(ctx, v[0]), app.MsgLoggedOut)
			},
		},
		{
			choice: "4", title: "Reset Password", page: "reset-password",
			fields: []field{usernameField, {label: "Old Password", secret: true}, {label: "New Password", secret: true}},
			run: func(ctx context.Context, svc service.AccessService, v []string) operationDoneMsg {
				return outcome(svc.ResetPassword(ctx, v[0], v[1], v[2]), app.MsgPasswordUpdated)
			},
		},
		{
			choice: "5", title: "Create Group", page: "create-group",
			fields: []field{groupField},
			run: func(ctx context.Context, svc service.AccessService, v []string) operationDoneMsg {
				return outcome(svc.CreateGroup(ctx, v[0]), app.MsgGroupCreated)
			},
		},
		{
			choice: "6", title: "Add User to Group", page: "add-user-to-group",
			fields: []field{usernameField, groupField},
			run: func(ctx context.Context, svc service.AccessService, v []string) operationDoneMsg {
				return outcome(svc.AddUserToGroup(ctx, v[0], v[1]), app.MsgUserAddedToGroup)
			},
		},
		{
			choice: "7", title: "Check Access", page: "check-access",
			fields: []field{usernameField, groupField},
			run: func(ctx context.Context, svc service.AccessService, v []string) operationDoneMsg {
				if svc.CheckAccess(ctx, v[0], v[1]) {
					return operationDoneMsg{text: "True"}
				}
				return operationDoneMsg{text: "False"}
			},
		},
		{
			choice: "8", title: "Verify Email", page: "verify-email",
			fields: []field{usernameField},
			run: func(ctx context.Context, svc service.AccessService, v []string) operationDoneMsg {
				return outcome(svc.VerifyEmail(ctx, v[0]), app.MsgEmailVerified)
			},
		},
		{
			choice: "9", title: "Get Profile", page: "get-profile",
			fields: []field{usernameField},
			run: func(ctx context.Context, svc service.AccessService, v []string) operationDoneMsg {
				profile, err := svc.GetProfile(ctx, v[0])
				if err != nil {
					return outcome(err, "")
				}
				return operationDoneMsg{text: "Profile", details: profileLines(profile)}
			},
		},
	}
}

func outcome(err error, success string) operationDoneMsg {
	if err != nil {
		return operationDoneMsg{text: service.Describe(err), failed: true}
	}
	return operationDoneMsg{text: success}
}

func profileLines(p models.Profile) []string {
	lastLogin := ""
	if p.LastLogin != nil {
		lastLogin = p.LastLogin.Format("2006-01-02 15:04:05")
	}
	verified := "False"
	if p.EmailVerified {
		verified = "True"
	}

	return []string{
		"Username:       " + p.Username,
		"Email:          " + p.Email,
		"Groups:         " + valueOrDash(strings.Join(p.Groups, ", ")),
		"Email verified: " + verified,
		"Created at:     " + p.CreatedAt.Format("2006-01-02 15:04:05"),
		"Last login:     " + valueOrDash(lastLogin),
	}
}
