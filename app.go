package demo2d

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// Module installs resources and systems into an App.
type Module interface {
	Install(app *App, cmd *Commands) error
}

type App struct {
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any

	resizeHandlers []func(width, height int)
	closers        []func()

	exiting bool
	frame   uint64
}

func newApp() *App {
	app := &App{
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
	}
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.systems[stage.Name] = make([]systemFn, 0)
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// Step runs every stage once.
func (app *App) Step() {
	app.frame++
	app.callSystems(func(Stage) bool { return true })
}

// Run steps until a system asks to exit, then releases everything registered with OnClose.
func (app *App) Run() {
	defer app.Close()

	for !app.exiting {
		app.Step()
	}
}

// Redraw runs only the render stages. Used from resize callbacks, which fire from
// inside event polling while the frame loop is blocked.
func (app *App) Redraw() {
	app.callSystems(func(s Stage) bool { return s.UpdateType == RenderUpdate })
}

func (app *App) OnResize(handler func(width, height int)) {
	app.resizeHandlers = append(app.resizeHandlers, handler)
}

func (app *App) NotifyResize(width, height int) {
	app.Logger().Infof("framebuffer resized to %dx%d", width, height)
	for _, handler := range app.resizeHandlers {
		handler(width, height)
	}
}

func (app *App) OnClose(closer func()) {
	app.closers = append(app.closers, closer)
}

// Close runs the close hooks in reverse registration order. Safe to call twice.
func (app *App) Close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		app.closers[i]()
	}
	app.closers = nil
}

func (app *App) Exiting() bool {
	return app.exiting
}

func (app *App) Frame() uint64 {
	return app.frame
}

func (app *App) callSystems(include func(Stage) bool) {
	for _, stage := range app.stages {
		if !include(stage) {
			continue
		}
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
	}
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource looks up a resource by its type.
func Resource[T any](app *App) (*T, bool) {
	res, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	typed, ok := res.(*T)
	return typed, ok
}

func (app *App) callSystem(system systemFn) {
	app.callSystemInternal(system)
}

var (
	typeOfCommands = reflect.TypeOf(Commands{})
	typeOfLogger   = reflect.TypeOf((*Logger)(nil)).Elem()
)

// callSystemInternal resolves every parameter of a system from the resources. Pointer
// parameters match a resource by its element type; interface parameters match the first
// resource implementing them. A missing Logger resolves to a no-op logger.
func (app *App) callSystemInternal(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)

		if argType.Kind() == reflect.Interface {
			if resource, ok := app.resourceImplementing(argType); ok {
				args[i] = reflect.ValueOf(resource)
				continue
			}
			if argType == typeOfLogger {
				args[i] = reflect.ValueOf(NewNopLogger())
				continue
			}
			app.unresolved(systemType, systemValue, argType)
		}

		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			app.unresolved(systemType, systemValue, argType)
		}
	}
	systemValue.Call(args)
}

func (app *App) resourceImplementing(iface reflect.Type) (any, bool) {
	for _, resource := range app.resources {
		if reflect.TypeOf(resource).Implements(iface) {
			return resource, true
		}
	}
	return nil, false
}

func (app *App) unresolved(systemType reflect.Type, systemValue reflect.Value, argType reflect.Type) {
	msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
		runtime.FuncForPC(systemValue.Pointer()).Name(),
		fmt.Sprint(systemType),
		fmt.Sprint(argType),
	)
	panic(msg)
}
