package app

import (
	"fmt"

	settingsHTTP "github.com/artfolio/gallery/internal/settings/http"
	settingsRepository "github.com/artfolio/gallery/internal/settings/repository"
	settingsUsecase "github.com/artfolio/gallery/internal/settings/usecase"
)

// SettingsRepository returns the settings repository based on database driver.
func (c *Container) SettingsRepository() (settingsUsecase.SettingsRepository, error) {
	c.settingsRepoInit.Do(func() {
		settingsRepo, err := c.initSettingsRepository()
		if err != nil {
			c.initErrors["settingsRepo"] = err
			return
		}
		c.settingsRepo = settingsRepo
	})
	if storedErr, exists := c.initErrors["settingsRepo"]; exists {
		return nil, storedErr
	}
	return c.settingsRepo, nil
}

// SettingsUseCase returns the settings use case instance.
func (c *Container) SettingsUseCase() (settingsUsecase.SettingsUseCase, error) {
	c.settingsUseCaseInit.Do(func() {
		settingsUseCase, err := c.initSettingsUseCase()
		if err != nil {
			c.initErrors["settingsUseCase"] = err
			return
		}
		c.settingsUseCase = settingsUseCase
	})
	if storedErr, exists := c.initErrors["settingsUseCase"]; exists {
		return nil, storedErr
	}
	return c.settingsUseCase, nil
}

// SettingsHandler returns the HTTP handler for app settings.
func (c *Container) SettingsHandler() (*settingsHTTP.SettingsHandler, error) {
	c.settingsHandlerInit.Do(func() {
		settingsHandler, err := c.initSettingsHandler()
		if err != nil {
			c.initErrors["settingsHandler"] = err
			return
		}
		c.settingsHandler = settingsHandler
	})
	if storedErr, exists := c.initErrors["settingsHandler"]; exists {
		return nil, storedErr
	}
	return c.settingsHandler, nil
}

// initSettingsRepository creates the settings repository based on the database driver.
func (c *Container) initSettingsRepository() (settingsUsecase.SettingsRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for settings repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return settingsRepository.NewPostgreSQLSettingsRepository(db), nil
	case "mysql":
		return settingsRepository.NewMySQLSettingsRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initSettingsUseCase creates the settings use case with all its dependencies.
func (c *Container) initSettingsUseCase() (settingsUsecase.SettingsUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for settings use case: %w", err)
	}

	settingsRepo, err := c.SettingsRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings repository for settings use case: %w", err)
	}

	return settingsUsecase.NewSettingsUseCase(txManager, settingsRepo), nil
}

// initSettingsHandler creates the settings HTTP handler with all its dependencies.
func (c *Container) initSettingsHandler() (*settingsHTTP.SettingsHandler, error) {
	settingsUseCase, err := c.SettingsUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings use case for settings handler: %w", err)
	}

	return settingsHTTP.NewSettingsHandler(settingsUseCase, c.Logger()), nil
}
