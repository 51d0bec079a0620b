// Package firebaseapp owns the Firebase app shared by the identity, document and object store adapters.
package firebaseapp

import (
	"context"
	"log/slog"
	"sync"

	"recipebox/config"
	"recipebox/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/storage"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// App lazily initializes the Firebase app and its clients, so deployments that use
// none of the Firebase adapters never need credentials.
type App struct {
	ctx    context.Context
	cfg    *config.FirebaseConfig
	logger *slog.Logger

	appOnce sync.Once
	app     *firebase.App
	appErr  error

	authOnce sync.Once
	auth     *auth.Client
	authErr  error

	firestoreOnce sync.Once
	firestore     *firestore.Client
	firestoreErr  error

	storageOnce sync.Once
	storage     *storage.Client
	storageErr  error
}

// Params holds dependencies for App, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the lazily initialized Firebase app.
func New(params Params) *App {
	cfg := params.Config.Firebase
	if cfg == nil {
		cfg = &config.FirebaseConfig{}
	}

	a := &App{
		ctx:    params.Ctx,
		cfg:    cfg,
		logger: params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return a.close()
		},
	})

	return a
}

// ClientOptions returns the Google API options derived from the Firebase configuration.
func (a *App) ClientOptions() []option.ClientOption {
	if a.cfg.CredentialsPath == "" {
		return nil
	}

	return []option.ClientOption{option.WithCredentialsFile(a.cfg.CredentialsPath)}
}

// StorageBucket is the default bucket configured for the project.
func (a *App) StorageBucket() string {
	return a.cfg.StorageBucket
}

func (a *App) get() (*firebase.App, error) {
	a.appOnce.Do(func() {
		appConfig := &firebase.Config{
			ProjectID:     a.cfg.ProjectID,
			StorageBucket: a.cfg.StorageBucket,
		}

		a.app, a.appErr = firebase.NewApp(a.ctx, appConfig, a.ClientOptions()...)
		if a.appErr != nil {
			a.appErr = errors.Wrap(a.appErr, "failed to initialize Firebase app")

			return
		}

		a.logger.Info("Firebase app initialized", slog.String("project_id", a.cfg.ProjectID))
	})

	return a.app, a.appErr
}

// Auth returns the Firebase Auth admin client.
func (a *App) Auth() (*auth.Client, error) {
	a.authOnce.Do(func() {
		app, err := a.get()
		if err != nil {
			a.authErr = err

			return
		}

		a.auth, a.authErr = app.Auth(a.ctx)
		a.authErr = errors.Wrap(a.authErr, "failed to get Firebase auth client")
	})

	return a.auth, a.authErr
}

// Firestore returns the Firestore client of the project.
func (a *App) Firestore() (*firestore.Client, error) {
	a.firestoreOnce.Do(func() {
		app, err := a.get()
		if err != nil {
			a.firestoreErr = err

			return
		}

		a.firestore, a.firestoreErr = app.Firestore(a.ctx)
		a.firestoreErr = errors.Wrap(a.firestoreErr, "failed to get Firestore client")
	})

	return a.firestore, a.firestoreErr
}

// Storage returns the Firebase Storage client of the project.
func (a *App) Storage() (*storage.Client, error) {
	a.storageOnce.Do(func() {
		app, err := a.get()
		if err != nil {
			a.storageErr = err

			return
		}

		a.storage, a.storageErr = app.Storage(a.ctx)
		a.storageErr = errors.Wrap(a.storageErr, "failed to get Firebase storage client")
	})

	return a.storage, a.storageErr
}

func (a *App) close() error {
	if a.firestore != nil {
		return errors.WithStack(a.firestore.Close())
	}

	return nil
}
