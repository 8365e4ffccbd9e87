package app

import (
	"context"
	"fmt"

	"github.com/vk/kitchenconv/internal/convert"
	"github.com/vk/kitchenconv/internal/ctxlog"
	"github.com/vk/kitchenconv/internal/request"
)

// Run executes one invocation: either the catalog listing or a single
// conversion. Errors come back typed so the entrypoint can attach the
// suggestion list for unknown names.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if appConfig.List {
		a.logger.Debug("Listing catalog contents.")
		return a.catalog.WriteListing(a.outW)
	}

	req, err := request.Parse(appConfig.Args)
	if err != nil {
		return err
	}
	a.logger.Debug("Request parsed.",
		"quantity", req.Quantity, "from", req.FromUnit, "to", req.ToUnit,
		"substance", req.Substance())

	result, err := convert.Convert(ctx, a.catalog, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.outW, result)
	a.logger.Debug("App.Run method finished.")
	return nil
}
