package cli

import (
	"github.com/vburojevic/loglens/internal/api"
)

// LoginCmd checks credentials against the backend
type LoginCmd struct {
	Username string `arg:"" help:"Account name"`
	Password string `env:"LOGLENS_PASSWORD" help:"Account password (prefer the LOGLENS_PASSWORD environment variable)"`
}

// Run executes the login command
func (c *LoginCmd) Run(globals *Globals) error {
	if c.Password == "" {
		return outputErrorCommon(globals, CodeInvalidFlags, "a password is required",
			"Set LOGLENS_PASSWORD or pass --password")
	}

	ctx, stop := commandContext()
	defer stop()

	resp, err := globals.Client().Login(ctx, c.Username, c.Password)
	if err != nil {
		return outputAPIError(globals, err.Error(), err)
	}
	if !resp.Succeeded() {
		msg := resp.Error
		if msg == "" {
			msg = api.UnknownErrorMessage
		}
		return outputErrorCommon(globals, CodeLoginFailed, msg)
	}
	return globals.Emitter().Login(resp)
}
