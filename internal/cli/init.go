package cli

import (
	"errors"

	"github.com/julianstephens/sanctum/internal/storage"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		if errors.Is(err, storage.ErrAlreadyInitialized) {
			ctx.printf("sanctum storage already initialized at: %s\n", ctx.Store.GetConfigPath())
			return nil
		}
		return err
	}
	ctx.printf("Initialized sanctum storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
