package app

import (
	"fmt"

	catalogHTTP "github.com/artfolio/gallery/internal/catalog/http"
	catalogRepository "github.com/artfolio/gallery/internal/catalog/repository"
	catalogUsecase "github.com/artfolio/gallery/internal/catalog/usecase"
)

// defaultFeaturedCount caps the featured designs endpoint when no limit is given.
const defaultFeaturedCount = 6

// DesignRepository returns the design repository based on database driver.
func (c *Container) DesignRepository() (catalogUsecase.DesignRepository, error) {
	c.designRepoInit.Do(func() {
		designRepo, err := c.initDesignRepository()
		if err != nil {
			c.initErrors["designRepo"] = err
			return
		}
		c.designRepo = designRepo
	})
	if storedErr, exists := c.initErrors["designRepo"]; exists {
		return nil, storedErr
	}
	return c.designRepo, nil
}

// FavoriteRepository returns the favorite repository based on database driver.
func (c *Container) FavoriteRepository() (catalogUsecase.FavoriteRepository, error) {
	c.favoriteRepoInit.Do(func() {
		favoriteRepo, err := c.initFavoriteRepository()
		if err != nil {
			c.initErrors["favoriteRepo"] = err
			return
		}
		c.favoriteRepo = favoriteRepo
	})
	if storedErr, exists := c.initErrors["favoriteRepo"]; exists {
		return nil, storedErr
	}
	return c.favoriteRepo, nil
}

// DesignUseCase returns the design use case instance.
func (c *Container) DesignUseCase() (catalogUsecase.DesignUseCase, error) {
	c.designUseCaseInit.Do(func() {
		designUseCase, err := c.initDesignUseCase()
		if err != nil {
			c.initErrors["designUseCase"] = err
			return
		}
		c.designUseCase = designUseCase
	})
	if storedErr, exists := c.initErrors["designUseCase"]; exists {
		return nil, storedErr
	}
	return c.designUseCase, nil
}

// FavoriteUseCase returns the favorite use case instance.
func (c *Container) FavoriteUseCase() (catalogUsecase.FavoriteUseCase, error) {
	c.favoriteUseCaseInit.Do(func() {
		favoriteUseCase, err := c.initFavoriteUseCase()
		if err != nil {
			c.initErrors["favoriteUseCase"] = err
			return
		}
		c.favoriteUseCase = favoriteUseCase
	})
	if storedErr, exists := c.initErrors["favoriteUseCase"]; exists {
		return nil, storedErr
	}
	return c.favoriteUseCase, nil
}

// DesignHandler returns the HTTP handler for catalog operations.
func (c *Container) DesignHandler() (*catalogHTTP.DesignHandler, error) {
	c.designHandlerInit.Do(func() {
		designHandler, err := c.initDesignHandler()
		if err != nil {
			c.initErrors["designHandler"] = err
			return
		}
		c.designHandler = designHandler
	})
	if storedErr, exists := c.initErrors["designHandler"]; exists {
		return nil, storedErr
	}
	return c.designHandler, nil
}

// FavoriteHandler returns the HTTP handler for favorite operations.
func (c *Container) FavoriteHandler() (*catalogHTTP.FavoriteHandler, error) {
	c.favoriteHandlerInit.Do(func() {
		favoriteHandler, err := c.initFavoriteHandler()
		if err != nil {
			c.initErrors["favoriteHandler"] = err
			return
		}
		c.favoriteHandler = favoriteHandler
	})
	if storedErr, exists := c.initErrors["favoriteHandler"]; exists {
		return nil, storedErr
	}
	return c.favoriteHandler, nil
}

// initDesignRepository creates the design repository based on the database driver.
func (c *Container) initDesignRepository() (catalogUsecase.DesignRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for design repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return catalogRepository.NewPostgreSQLDesignRepository(db), nil
	case "mysql":
		return catalogRepository.NewMySQLDesignRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initFavoriteRepository creates the favorite repository based on the database driver.
func (c *Container) initFavoriteRepository() (catalogUsecase.FavoriteRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for favorite repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return catalogRepository.NewPostgreSQLFavoriteRepository(db), nil
	case "mysql":
		return catalogRepository.NewMySQLFavoriteRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initDesignUseCase creates the design use case with all its dependencies.
func (c *Container) initDesignUseCase() (catalogUsecase.DesignUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for design use case: %w", err)
	}

	designRepo, err := c.DesignRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get design repository for design use case: %w", err)
	}

	favoriteRepo, err := c.FavoriteRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite repository for design use case: %w", err)
	}

	store, err := c.Store()
	if err != nil {
		return nil, fmt.Errorf("failed to get blob store for design use case: %w", err)
	}

	baseUseCase := catalogUsecase.NewDesignUseCase(txManager, designRepo, favoriteRepo, store, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for design use case: %w", err)
		}
		return catalogUsecase.NewDesignUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initFavoriteUseCase creates the favorite use case with all its dependencies.
func (c *Container) initFavoriteUseCase() (catalogUsecase.FavoriteUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for favorite use case: %w", err)
	}

	favoriteRepo, err := c.FavoriteRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite repository for favorite use case: %w", err)
	}

	designRepo, err := c.DesignRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get design repository for favorite use case: %w", err)
	}

	baseUseCase := catalogUsecase.NewFavoriteUseCase(txManager, favoriteRepo, designRepo, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for favorite use case: %w", err)
		}
		return catalogUsecase.NewFavoriteUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initDesignHandler creates the design HTTP handler with all its dependencies.
func (c *Container) initDesignHandler() (*catalogHTTP.DesignHandler, error) {
	designUseCase, err := c.DesignUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get design use case for design handler: %w", err)
	}

	return catalogHTTP.NewDesignHandler(
		designUseCase,
		c.config.PaginationDefaultPerPage,
		c.config.PaginationMaxPerPage,
		defaultFeaturedCount,
		c.Logger(),
	), nil
}

// initFavoriteHandler creates the favorite HTTP handler with all its dependencies.
func (c *Container) initFavoriteHandler() (*catalogHTTP.FavoriteHandler, error) {
	favoriteUseCase, err := c.FavoriteUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite use case for favorite handler: %w", err)
	}

	return catalogHTTP.NewFavoriteHandler(
		favoriteUseCase,
		c.config.PaginationDefaultPerPage,
		c.config.PaginationMaxPerPage,
		c.Logger(),
	), nil
}
