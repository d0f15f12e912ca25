package app

import (
	"fmt"

	adminHTTP "github.com/artfolio/gallery/internal/admin/http"
	adminRepository "github.com/artfolio/gallery/internal/admin/repository"
	adminUsecase "github.com/artfolio/gallery/internal/admin/usecase"
)

// Bounds for the dashboard lists.
const (
	analyticsTopCategories = 5
	analyticsRecentDesigns = 10
)

// AnalyticsRepository returns the analytics repository based on database driver.
func (c *Container) AnalyticsRepository() (adminUsecase.AnalyticsRepository, error) {
	c.analyticsRepoInit.Do(func() {
		analyticsRepo, err := c.initAnalyticsRepository()
		if err != nil {
			c.initErrors["analyticsRepo"] = err
			return
		}
		c.analyticsRepo = analyticsRepo
	})
	if storedErr, exists := c.initErrors["analyticsRepo"]; exists {
		return nil, storedErr
	}
	return c.analyticsRepo, nil
}

// AnalyticsUseCase returns the analytics use case instance.
func (c *Container) AnalyticsUseCase() (adminUsecase.AnalyticsUseCase, error) {
	c.analyticsUseCaseInit.Do(func() {
		analyticsUseCase, err := c.initAnalyticsUseCase()
		if err != nil {
			c.initErrors["analyticsUseCase"] = err
			return
		}
		c.analyticsUseCase = analyticsUseCase
	})
	if storedErr, exists := c.initErrors["analyticsUseCase"]; exists {
		return nil, storedErr
	}
	return c.analyticsUseCase, nil
}

// AnalyticsHandler returns the HTTP handler for the admin dashboard.
func (c *Container) AnalyticsHandler() (*adminHTTP.AnalyticsHandler, error) {
	c.analyticsHandlerInit.Do(func() {
		analyticsHandler, err := c.initAnalyticsHandler()
		if err != nil {
			c.initErrors["analyticsHandler"] = err
			return
		}
		c.analyticsHandler = analyticsHandler
	})
	if storedErr, exists := c.initErrors["analyticsHandler"]; exists {
		return nil, storedErr
	}
	return c.analyticsHandler, nil
}

// initAnalyticsRepository creates the analytics repository based on the database driver.
func (c *Container) initAnalyticsRepository() (adminUsecase.AnalyticsRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for analytics repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return adminRepository.NewPostgreSQLAnalyticsRepository(db), nil
	case "mysql":
		return adminRepository.NewMySQLAnalyticsRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAnalyticsUseCase creates the analytics use case with all its dependencies.
func (c *Container) initAnalyticsUseCase() (adminUsecase.AnalyticsUseCase, error) {
	analyticsRepo, err := c.AnalyticsRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics repository for analytics use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for analytics use case: %w", err)
	}

	designRepo, err := c.DesignRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get design repository for analytics use case: %w", err)
	}

	return adminUsecase.NewAnalyticsUseCase(
		analyticsRepo,
		userRepo,
		designRepo,
		analyticsTopCategories,
		analyticsRecentDesigns,
	), nil
}

// initAnalyticsHandler creates the analytics HTTP handler with all its dependencies.
func (c *Container) initAnalyticsHandler() (*adminHTTP.AnalyticsHandler, error) {
	analyticsUseCase, err := c.AnalyticsUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics use case for analytics handler: %w", err)
	}

	return adminHTTP.NewAnalyticsHandler(analyticsUseCase, c.Logger()), nil
}
