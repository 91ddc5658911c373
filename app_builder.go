package demo2d

import (
	"fmt"
)

type AppBuilder struct {
	app     *App
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{app: newApp()}
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

// Build installs the modules in order. On failure, whatever the already installed
// modules registered with OnClose is released before returning.
func (b *AppBuilder) Build() (*App, error) {
	app := b.app
	commands := &Commands{app: app}

	for _, module := range b.modules {
		if err := module.Install(app, commands); err != nil {
			app.Close()
			return nil, fmt.Errorf("install %T: %w", module, err)
		}
	}

	return app, nil
}
