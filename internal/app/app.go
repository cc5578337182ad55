// Package app wires the application services into a dependency injector.
// The entrypoint invokes the server out of the injector; tests can override
// individual providers.
package app

import (
	"github.com/oakmere/gatehouse/internal/authclient"
	"github.com/oakmere/gatehouse/internal/config"
	"github.com/oakmere/gatehouse/internal/controllers"
	"github.com/oakmere/gatehouse/internal/pubsub"
	"github.com/oakmere/gatehouse/internal/server"
	"github.com/samber/do/v2"
)

// New builds the injector with every service provider registered. Nothing
// is constructed until first invocation.
func New() *do.RootScope {
	injector := do.New()

	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		return config.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*authclient.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return authclient.New(cfg.AuthAPIURL), nil
	})

	do.Provide(injector, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})

	do.Provide(injector, func(i do.Injector) (controllers.AuthAPI, error) {
		return do.MustInvoke[*authclient.Client](i), nil
	})

	do.Provide(injector, func(i do.Injector) (*server.Server, error) {
		return server.New(
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[controllers.AuthAPI](i),
			do.MustInvoke[*pubsub.WatermillBridge](i),
		), nil
	})

	return injector
}
